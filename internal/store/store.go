// Package store defines the catalog access interface consumed by discovery
// features, replacing direct access to shared data arrays.
package store

import (
	"context"

	"github.com/kitaplik/kitaplik-server/internal/domain"
)

// Catalog supplies the book and user collections the discovery core operates
// on. Implementations must return data the caller may freely retain; the
// core never mutates what it receives.
type Catalog interface {
	// ListBooks returns every owned-book record on the platform.
	ListBooks(ctx context.Context) ([]domain.UserBook, error)

	// ListUsers returns every user visible to discovery.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetProfile returns a user's reader profile, or a NotFound error.
	GetProfile(ctx context.Context, userID string) (*domain.ReaderProfile, error)

	// ListProfiles returns every reader profile.
	ListProfiles(ctx context.Context) ([]domain.ReaderProfile, error)
}
