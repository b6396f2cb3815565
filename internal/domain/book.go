// Package domain contains the core entities and enumerations for the Kitaplık
// social reading platform.
package domain

import "time"

// ReadingState represents the lifecycle state of a user's copy of a book.
type ReadingState string

const (
	ReadingStateWantToRead ReadingState = "want-to-read"
	ReadingStateReading    ReadingState = "currently-reading"
	ReadingStateRead       ReadingState = "read"
)

// Valid checks if the reading state is valid.
func (s ReadingState) Valid() bool {
	switch s {
	case ReadingStateWantToRead, ReadingStateReading, ReadingStateRead:
		return true
	default:
		return false
	}
}

// Offerable reports whether a copy in this state can be offered for swapping.
// Books the owner is in the middle of reading are not offerable.
func (s ReadingState) Offerable() bool {
	return s == ReadingStateRead || s == ReadingStateWantToRead
}

// UserBook is one user's copy or claim of a catalog book. Title and authors
// are denormalized from the catalog for display and search.
type UserBook struct {
	ID         string       `json:"id"`
	BookID     string       `json:"book_id"`
	UserID     string       `json:"user_id"`
	Title      string       `json:"title"`
	Authors    []string     `json:"authors"`
	CoverURL   string       `json:"cover_url,omitempty"`
	Status     ReadingState `json:"status"`
	Rating     int          `json:"rating,omitempty"` // 1-5, zero means unrated
	Review     string       `json:"review,omitempty"`
	AddedAt    time.Time    `json:"added_at"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

// Rated reports whether the copy carries a rating.
func (b *UserBook) Rated() bool {
	return b.Rating > 0
}

// Clone returns a deep copy of the record. Result projections hold clones so
// callers can never reach back into catalog-owned slices.
func (b UserBook) Clone() UserBook {
	out := b
	out.Authors = append([]string(nil), b.Authors...)
	if b.StartedAt != nil {
		t := *b.StartedAt
		out.StartedAt = &t
	}
	if b.FinishedAt != nil {
		t := *b.FinishedAt
		out.FinishedAt = &t
	}
	return out
}
