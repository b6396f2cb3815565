package domain

import "time"

// UnknownUserName is the display fallback when a book's owner cannot be
// resolved from the user directory.
const UnknownUserName = "Bilinmeyen Kullanıcı"

// User is a member of the platform as seen by discovery features.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	City        string    `json:"city,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OwnerSummary is the minimal public projection of a book's owner carried on
// search results.
type OwnerSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	City        string `json:"city,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Summary returns the public owner projection for a user.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		City:        u.City,
		AvatarURL:   u.AvatarURL,
	}
}

// UnknownOwner returns the placeholder summary used when the owning user is
// not found in the directory.
func UnknownOwner(userID string) OwnerSummary {
	return OwnerSummary{
		ID:          userID,
		DisplayName: UnknownUserName,
	}
}
