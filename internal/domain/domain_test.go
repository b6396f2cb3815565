package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadingState_Valid(t *testing.T) {
	assert.True(t, ReadingStateWantToRead.Valid())
	assert.True(t, ReadingStateReading.Valid())
	assert.True(t, ReadingStateRead.Valid())
	assert.False(t, ReadingState("finished").Valid())
	assert.False(t, ReadingState("").Valid())
}

func TestReadingState_Offerable(t *testing.T) {
	assert.True(t, ReadingStateRead.Offerable())
	assert.True(t, ReadingStateWantToRead.Offerable())
	assert.False(t, ReadingStateReading.Offerable())
}

func TestSortField_Valid(t *testing.T) {
	for _, f := range []SortField{SortByTitle, SortByAuthor, SortByRating, SortByDateAdded, SortByDistance} {
		assert.True(t, f.Valid(), "field %q", f)
	}
	assert.False(t, SortField("relevance").Valid())
}

func TestTierFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  RecommendationTier
	}{
		{1.0, TierHigh},
		{0.75, TierHigh},
		{0.74, TierMedium},
		{0.50, TierMedium},
		{0.49, TierLow},
		{0.0, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFromScore(tt.score), "score %v", tt.score)
	}
}

func TestUserBook_Clone(t *testing.T) {
	started := time.Now()
	book := UserBook{
		ID:        "ub-1",
		Authors:   []string{"Frank Herbert"},
		StartedAt: &started,
	}

	clone := book.Clone()
	clone.Authors[0] = "changed"
	*clone.StartedAt = started.Add(time.Hour)

	assert.Equal(t, "Frank Herbert", book.Authors[0])
	assert.Equal(t, started, *book.StartedAt)
}

func TestReaderProfile_Clone(t *testing.T) {
	p := ReaderProfile{
		UserID:         "u1",
		FavoriteGenres: []string{"Roman"},
	}
	clone := p.Clone()
	clone.FavoriteGenres[0] = "changed"
	assert.Equal(t, "Roman", p.FavoriteGenres[0])
}

func TestUnknownOwner(t *testing.T) {
	owner := UnknownOwner("ghost")
	assert.Equal(t, "ghost", owner.ID)
	assert.Equal(t, UnknownUserName, owner.DisplayName)
}

func TestZeroCompatibility(t *testing.T) {
	r := ZeroCompatibility()
	assert.Zero(t, r.OverallScore)
	assert.Equal(t, TierLow, r.Tier)
	assert.NotNil(t, r.MatchReasons)
	assert.Empty(t, r.MatchReasons)
}
