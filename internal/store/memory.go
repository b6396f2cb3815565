package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/errors"
	"github.com/kitaplik/kitaplik-server/internal/id"
)

// Memory is an in-memory Catalog backed by maps. Reads hand out deep copies,
// so callers can never alias store-internal state. Safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	books    map[string]domain.UserBook
	users    map[string]domain.User
	profiles map[string]domain.ReaderProfile
	order    []string // insertion order of book IDs for stable listings
	userIDs  []string
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		books:    make(map[string]domain.UserBook),
		users:    make(map[string]domain.User),
		profiles: make(map[string]domain.ReaderProfile),
	}
}

// AddBook inserts an owned-book record, assigning an ID when empty. Returns
// the stored record.
func (m *Memory) AddBook(_ context.Context, book domain.UserBook) (domain.UserBook, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if book.ID == "" {
		generated, err := id.Generate(id.PrefixUserBook)
		if err != nil {
			return domain.UserBook{}, fmt.Errorf("assign book id: %w", err)
		}
		book.ID = generated
	}
	if _, exists := m.books[book.ID]; exists {
		return domain.UserBook{}, errors.Conflict("book already exists: " + book.ID)
	}

	m.books[book.ID] = book.Clone()
	m.order = append(m.order, book.ID)
	return book, nil
}

// AddUser inserts a user, assigning an ID when empty.
func (m *Memory) AddUser(_ context.Context, user domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == "" {
		generated, err := id.Generate(id.PrefixUser)
		if err != nil {
			return domain.User{}, fmt.Errorf("assign user id: %w", err)
		}
		user.ID = generated
	}
	if _, exists := m.users[user.ID]; exists {
		return domain.User{}, errors.Conflict("user already exists: " + user.ID)
	}

	m.users[user.ID] = user
	m.userIDs = append(m.userIDs, user.ID)
	return user, nil
}

// SaveProfile inserts or replaces a reader profile keyed by its user ID.
func (m *Memory) SaveProfile(_ context.Context, profile domain.ReaderProfile) error {
	if profile.UserID == "" {
		return errors.Validation("profile requires a user id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.UserID] = profile.Clone()
	return nil
}

// ListBooks returns all records in insertion order.
func (m *Memory) ListBooks(_ context.Context) ([]domain.UserBook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.UserBook, 0, len(m.order))
	for _, bookID := range m.order {
		out = append(out, m.books[bookID].Clone())
	}
	return out, nil
}

// ListUsers returns all users in insertion order.
func (m *Memory) ListUsers(_ context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.User, 0, len(m.userIDs))
	for _, userID := range m.userIDs {
		out = append(out, m.users[userID])
	}
	return out, nil
}

// GetProfile returns the profile for a user.
func (m *Memory) GetProfile(_ context.Context, userID string) (*domain.ReaderProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, errors.NotFoundf("profile not found: %s", userID)
	}
	clone := profile.Clone()
	return &clone, nil
}

// ListProfiles returns every profile, ordered by their owner's insertion
// order where known.
func (m *Memory) ListProfiles(_ context.Context) ([]domain.ReaderProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ReaderProfile, 0, len(m.profiles))
	seen := make(map[string]bool, len(m.profiles))
	for _, userID := range m.userIDs {
		if profile, ok := m.profiles[userID]; ok {
			out = append(out, profile.Clone())
			seen[userID] = true
		}
	}
	// Profiles without a registered user still get listed.
	for userID, profile := range m.profiles {
		if !seen[userID] {
			out = append(out, profile.Clone())
		}
	}
	return out, nil
}

// fixtureFile is the JSON shape of a catalog fixture.
type fixtureFile struct {
	Books    []domain.UserBook      `json:"books"`
	Users    []domain.User          `json:"users"`
	Profiles []domain.ReaderProfile `json:"profiles"`
}

// LoadFixtures populates the store from a JSON fixture file.
func (m *Memory) LoadFixtures(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures fixtureFile
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	for _, user := range fixtures.Users {
		if _, err := m.AddUser(ctx, user); err != nil {
			return fmt.Errorf("load user %s: %w", user.ID, err)
		}
	}
	for _, book := range fixtures.Books {
		if _, err := m.AddBook(ctx, book); err != nil {
			return fmt.Errorf("load book %s: %w", book.ID, err)
		}
	}
	for _, profile := range fixtures.Profiles {
		if err := m.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("load profile %s: %w", profile.UserID, err)
		}
	}

	return nil
}
