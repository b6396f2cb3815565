// Package service orchestrates discovery features over the catalog store.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kitaplik/kitaplik-server/internal/compat"
	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/errors"
	"github.com/kitaplik/kitaplik-server/internal/geo"
	"github.com/kitaplik/kitaplik-server/internal/search"
	"github.com/kitaplik/kitaplik-server/internal/store"
	"github.com/kitaplik/kitaplik-server/internal/validation"
)

// Suggestion limits mirroring the leaderboard conventions.
const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

// ReaderSuggestion pairs a candidate user with their compatibility result.
type ReaderSuggestion struct {
	UserID        string                     `json:"user_id"`
	DisplayName   string                     `json:"display_name"`
	City          string                     `json:"city,omitempty"`
	Compatibility domain.CompatibilityResult `json:"compatibility"`
}

// DiscoveryService provides book search and reader matching.
type DiscoveryService struct {
	catalog   store.Catalog
	ranker    *search.Ranker
	scorer    *compat.Scorer
	validator *validation.Validator
	logger    *slog.Logger
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(
	catalog store.Catalog,
	ranker *search.Ranker,
	scorer *compat.Scorer,
	validator *validation.Validator,
	logger *slog.Logger,
) *DiscoveryService {
	return &DiscoveryService{
		catalog:   catalog,
		ranker:    ranker,
		scorer:    scorer,
		validator: validator,
		logger:    logger,
	}
}

// SearchBooks runs a discovery search for the requesting user. When no
// coordinates are passed, the requester's profile coordinates are used if
// available.
func (s *DiscoveryService) SearchBooks(
	ctx context.Context,
	requestingUserID string,
	criteria domain.SearchCriteria,
	filters domain.SearchFilters,
	coords *geo.Coordinates,
) (*domain.SearchResults, error) {
	if requestingUserID == "" {
		return nil, errors.Validation("requesting user id is required")
	}
	if err := s.validator.Validate(criteria); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(filters); err != nil {
		return nil, err
	}

	if coords == nil {
		coords = s.profileCoordinates(ctx, requestingUserID)
	}

	books, err := s.catalog.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	users, err := s.catalog.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	results, err := s.ranker.Search(books, users, criteria, filters, requestingUserID, coords)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book search",
		"user_id", requestingUserID,
		"query", criteria.Query,
		"results", results.TotalResults,
	)
	return results, nil
}

// MatchProfiles scores two users against each other. A missing profile on
// either side yields the zero result rather than an error.
func (s *DiscoveryService) MatchProfiles(ctx context.Context, userA, userB string) (domain.CompatibilityResult, error) {
	profileA, err := s.loadProfile(ctx, userA)
	if err != nil {
		return domain.CompatibilityResult{}, err
	}
	profileB, err := s.loadProfile(ctx, userB)
	if err != nil {
		return domain.CompatibilityResult{}, err
	}

	return s.scorer.Score(profileA, profileB), nil
}

// SuggestReaders returns the most compatible readers for a user, best first.
// A user without a profile gets an empty list.
func (s *DiscoveryService) SuggestReaders(ctx context.Context, userID string, limit int) ([]ReaderSuggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	target, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		s.logger.Debug("no profile for suggestions", "user_id", userID)
		return []ReaderSuggestion{}, nil
	}

	profiles, err := s.catalog.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	candidates := make([]domain.ReaderProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID != userID {
			candidates = append(candidates, p)
		}
	}

	users, err := s.catalog.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	names := make(map[string]domain.User, len(users))
	for _, u := range users {
		names[u.ID] = u
	}

	ranked := s.scorer.Rank(target, candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	suggestions := make([]ReaderSuggestion, 0, len(ranked))
	for i := range ranked {
		suggestion := ReaderSuggestion{
			UserID:        ranked[i].UserID,
			DisplayName:   domain.UnknownUserName,
			Compatibility: s.scorer.Score(target, &ranked[i]),
		}
		if u, ok := names[ranked[i].UserID]; ok {
			suggestion.DisplayName = u.DisplayName
			suggestion.City = u.City
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

// loadProfile fetches a profile, mapping NotFound to nil.
func (s *DiscoveryService) loadProfile(ctx context.Context, userID string) (*domain.ReaderProfile, error) {
	profile, err := s.catalog.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}
	return profile, nil
}

// profileCoordinates resolves the requester's coordinates from their profile,
// if any.
func (s *DiscoveryService) profileCoordinates(ctx context.Context, userID string) *geo.Coordinates {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil || profile == nil {
		return nil
	}
	return profile.Coordinates
}
