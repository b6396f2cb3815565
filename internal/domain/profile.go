package domain

import "github.com/kitaplik/kitaplik-server/internal/geo"

// ReaderProfile holds a user's declared taste signals, independent of any one
// book. All list fields may be empty; scoring degrades to zero rather than
// failing.
type ReaderProfile struct {
	UserID          string           `json:"user_id"`
	City            string           `json:"city,omitempty"`
	Coordinates     *geo.Coordinates `json:"coordinates,omitempty"`
	FavoriteGenres  []string         `json:"favorite_genres,omitempty"`
	FavoriteAuthors []string         `json:"favorite_authors,omitempty"`
	Interests       []string         `json:"interests,omitempty"`
	Bio             string           `json:"bio,omitempty"`
}

// Clone returns a deep copy of the profile.
func (p ReaderProfile) Clone() ReaderProfile {
	out := p
	out.FavoriteGenres = append([]string(nil), p.FavoriteGenres...)
	out.FavoriteAuthors = append([]string(nil), p.FavoriteAuthors...)
	out.Interests = append([]string(nil), p.Interests...)
	if p.Coordinates != nil {
		c := *p.Coordinates
		out.Coordinates = &c
	}
	return out
}
