// Package search implements the discovery pipeline that filters, geolocates,
// and ranks book copies offered by other members.
package search

import (
	"log/slog"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/errors"
	"github.com/kitaplik/kitaplik-server/internal/geo"
)

const (
	// defaultNearbyRadiusKm bounds the nearby list when the caller sets no
	// maximum distance.
	defaultNearbyRadiusKm = 50.0

	// nearbyLimit caps the nearby sub-list.
	nearbyLimit = 5

	// defaultMatchScore is carried on every result until fuzzy scoring
	// replaces the boolean filters.
	defaultMatchScore = 1.0
)

// Ranker runs discovery queries over caller-supplied catalogs. It holds only
// immutable configuration, so a single Ranker is safe for concurrent use and
// every call is a pure function of its inputs.
type Ranker struct {
	cities *geo.CityTable
	logger *slog.Logger
}

// NewRanker creates a ranker using the given city table for owner
// geolocation.
func NewRanker(cities *geo.CityTable, logger *slog.Logger) *Ranker {
	return &Ranker{
		cities: cities,
		logger: logger,
	}
}

// Search filters, geolocates, sorts, and ranks the catalog against the
// criteria. The requesting user's own books are always excluded. Coordinates
// are optional; without them no distances are computed and distance-based
// stages pass everything through.
//
// Nil catalogs are a caller bug and fail fast; empty catalogs are valid and
// yield an empty result set.
func (r *Ranker) Search(
	books []domain.UserBook,
	users []domain.User,
	criteria domain.SearchCriteria,
	filters domain.SearchFilters,
	requestingUserID string,
	coords *geo.Coordinates,
) (*domain.SearchResults, error) {
	if books == nil {
		return nil, errors.Validation("book catalog is required")
	}
	if users == nil {
		return nil, errors.Validation("user catalog is required")
	}

	matched := baseFilter(books, criteria, requestingUserID)
	items := attachOwners(matched, users)

	if coords != nil {
		r.computeDistances(items, *coords)
	}

	items = secondaryFilters(items, criteria, filters)
	sortResults(items, filters)
	nearby := nearbyResults(items, criteria)

	r.logger.Debug("discovery search completed",
		"candidates", len(books),
		"results", len(items),
		"nearby", len(nearby),
	)

	return &domain.SearchResults{
		Results:       items,
		TotalResults:  len(items),
		NearbyResults: nearby,
	}, nil
}

// baseFilter drops the requester's own books and applies the text and rating
// criteria.
func baseFilter(books []domain.UserBook, criteria domain.SearchCriteria, requestingUserID string) []domain.UserBook {
	out := make([]domain.UserBook, 0, len(books))

	for i := range books {
		book := &books[i]

		if book.UserID == requestingUserID {
			continue
		}
		if criteria.Query != "" && !matchesQuery(book, criteria.Query) {
			continue
		}
		if criteria.Author != "" && !anyAuthorContains(book.Authors, criteria.Author) {
			continue
		}
		if criteria.Title != "" && !containsFold(book.Title, criteria.Title) {
			continue
		}
		// An unrated book never passes a minimum-rating filter.
		if criteria.MinRating > 0 && (!book.Rated() || book.Rating < criteria.MinRating) {
			continue
		}

		out = append(out, *book)
	}

	return out
}

// matchesQuery reports whether the free-text query matches the title or any
// author name.
func matchesQuery(book *domain.UserBook, query string) bool {
	if containsFold(book.Title, query) {
		return true
	}
	return anyAuthorContains(book.Authors, query)
}

func anyAuthorContains(authors []string, substr string) bool {
	for _, a := range authors {
		if containsFold(a, substr) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// attachOwners joins each surviving record to its owner's public summary.
// Unresolvable owners get the placeholder summary, never an error.
func attachOwners(books []domain.UserBook, users []domain.User) []domain.SearchResultItem {
	byID := make(map[string]*domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	items := make([]domain.SearchResultItem, 0, len(books))
	for i := range books {
		owner := domain.UnknownOwner(books[i].UserID)
		if u, ok := byID[books[i].UserID]; ok {
			owner = u.Summary()
		}
		items = append(items, domain.SearchResultItem{
			Book:       books[i].Clone(),
			Owner:      owner,
			MatchScore: defaultMatchScore,
		})
	}

	return items
}

// computeDistances resolves each owner's city against the city table and
// fills in the haversine distance from the requester.
func (r *Ranker) computeDistances(items []domain.SearchResultItem, from geo.Coordinates) {
	for i := range items {
		ownerCoords := r.cities.Lookup(items[i].Owner.City)
		d := geo.DistanceKm(from, ownerCoords)
		items[i].DistanceKm = &d
	}
}

// secondaryFilters applies the distance, availability, city, and owner
// filters after owner attachment.
func secondaryFilters(items []domain.SearchResultItem, criteria domain.SearchCriteria, filters domain.SearchFilters) []domain.SearchResultItem {
	out := make([]domain.SearchResultItem, 0, len(items))

	nearbyRadius := criteria.MaxDistance
	if nearbyRadius <= 0 {
		nearbyRadius = defaultNearbyRadiusKm
	}

	for _, item := range items {
		// Results without a computed distance pass distance filters.
		if criteria.MaxDistance > 0 && item.DistanceKm != nil && float64(*item.DistanceKm) > criteria.MaxDistance {
			continue
		}
		if filters.NearbyOnly && (item.DistanceKm == nil || float64(*item.DistanceKm) > nearbyRadius) {
			continue
		}
		if filters.AvailableOnly && !item.Book.Status.Offerable() {
			continue
		}
		if criteria.City != "" && item.Owner.City != criteria.City {
			continue
		}
		if criteria.Owner != "" && !containsFold(item.Owner.DisplayName, criteria.Owner) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// sortResults orders the result list in place by the selected field. Title
// and author comparisons use Turkish collation. The sort is stable so equal
// keys keep their pipeline order.
func sortResults(items []domain.SearchResultItem, filters domain.SearchFilters) {
	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = domain.SortByTitle
	}

	// A collator buffers state across comparisons, so build one per call
	// instead of sharing it between goroutines.
	collator := collate.New(language.Turkish)

	compare := func(a, b domain.SearchResultItem) int {
		switch sortBy {
		case domain.SortByAuthor:
			return collator.CompareString(primaryAuthor(a.Book), primaryAuthor(b.Book))
		case domain.SortByRating:
			return a.Book.Rating - b.Book.Rating
		case domain.SortByDateAdded:
			return a.Book.AddedAt.Compare(b.Book.AddedAt)
		case domain.SortByDistance:
			return compareFloats(distanceOrInf(a), distanceOrInf(b))
		default:
			return collator.CompareString(a.Book.Title, b.Book.Title)
		}
	}

	slices.SortStableFunc(items, func(a, b domain.SearchResultItem) int {
		c := compare(a, b)
		if filters.SortOrder == domain.SortDesc {
			return -c
		}
		return c
	})
}

func primaryAuthor(b domain.UserBook) string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// distanceOrInf defaults missing distances to +Inf so undistanced results
// sort last ascending.
func distanceOrInf(item domain.SearchResultItem) float64 {
	if item.DistanceKm == nil {
		return math.Inf(1)
	}
	return float64(*item.DistanceKm)
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// nearbyResults derives the distance-sorted sub-list from the already
// filtered and sorted results. Books excluded by unrelated filters stay
// excluded here too.
func nearbyResults(items []domain.SearchResultItem, criteria domain.SearchCriteria) []domain.SearchResultItem {
	radius := criteria.MaxDistance
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}

	nearby := make([]domain.SearchResultItem, 0, nearbyLimit)
	for _, item := range items {
		if item.DistanceKm != nil && float64(*item.DistanceKm) <= radius {
			nearby = append(nearby, item)
		}
	}

	slices.SortStableFunc(nearby, func(a, b domain.SearchResultItem) int {
		return *a.DistanceKm - *b.DistanceKm
	})

	if len(nearby) > nearbyLimit {
		nearby = nearby[:nearbyLimit]
	}
	return nearby
}
