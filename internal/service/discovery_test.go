package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitaplik/kitaplik-server/internal/compat"
	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/errors"
	"github.com/kitaplik/kitaplik-server/internal/geo"
	"github.com/kitaplik/kitaplik-server/internal/ranking"
	"github.com/kitaplik/kitaplik-server/internal/search"
	"github.com/kitaplik/kitaplik-server/internal/store"
	"github.com/kitaplik/kitaplik-server/internal/validation"
)

func newTestService(t *testing.T) (*DiscoveryService, *store.Memory) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memory := store.NewMemory()
	ranker := search.NewRanker(geo.DefaultCityTable(), logger)
	scorer := compat.NewScorer(ranking.DefaultTables(), ranking.DefaultWeights(), logger)

	svc := NewDiscoveryService(memory, ranker, scorer, validation.New(), logger)
	return svc, memory
}

func seedUser(t *testing.T, memory *store.Memory, id, name, city string) {
	t.Helper()
	_, err := memory.AddUser(context.Background(), domain.User{
		ID:          id,
		DisplayName: name,
		City:        city,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

func seedBook(t *testing.T, memory *store.Memory, userID, title, author string, rating int) {
	t.Helper()
	_, err := memory.AddBook(context.Background(), domain.UserBook{
		BookID:  "bk-" + title,
		UserID:  userID,
		Title:   title,
		Authors: []string{author},
		Status:  domain.ReadingStateRead,
		Rating:  rating,
		AddedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestSearchBooks_RequiresUserID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SearchBooks(context.Background(), "", domain.SearchCriteria{}, domain.DefaultSearchFilters(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestSearchBooks_RejectsInvalidCriteria(t *testing.T) {
	svc, _ := newTestService(t)

	criteria := domain.SearchCriteria{MinRating: 9}
	_, err := svc.SearchBooks(context.Background(), "usr-1", criteria, domain.DefaultSearchFilters(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestSearchBooks_ExcludesRequesterAndRanks(t *testing.T) {
	svc, memory := newTestService(t)

	seedUser(t, memory, "usr-1", "Ayşe", "İstanbul")
	seedUser(t, memory, "usr-2", "Mehmet", "Ankara")
	seedBook(t, memory, "usr-1", "Tutunamayanlar", "Oğuz Atay", 5)
	seedBook(t, memory, "usr-2", "Saatleri Ayarlama Enstitüsü", "Ahmet Hamdi Tanpınar", 4)

	results, err := svc.SearchBooks(context.Background(), "usr-1", domain.SearchCriteria{}, domain.DefaultSearchFilters(), nil)
	require.NoError(t, err)

	require.Equal(t, 1, results.TotalResults)
	assert.Equal(t, "Saatleri Ayarlama Enstitüsü", results.Results[0].Book.Title)
	assert.Equal(t, "Mehmet", results.Results[0].Owner.DisplayName)
}

func TestSearchBooks_FallsBackToProfileCoordinates(t *testing.T) {
	svc, memory := newTestService(t)

	seedUser(t, memory, "usr-1", "Ayşe", "İstanbul")
	seedUser(t, memory, "usr-2", "Mehmet", "Ankara")
	seedBook(t, memory, "usr-2", "Kürk Mantolu Madonna", "Sabahattin Ali", 5)

	istanbul := geo.Coordinates{Latitude: 41.0082, Longitude: 28.9784}
	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:      "usr-1",
		City:        "İstanbul",
		Coordinates: &istanbul,
	}))

	results, err := svc.SearchBooks(context.Background(), "usr-1", domain.SearchCriteria{}, domain.DefaultSearchFilters(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, results.TotalResults)

	require.NotNil(t, results.Results[0].DistanceKm)
	assert.InDelta(t, 350, *results.Results[0].DistanceKm, 5)
}

func TestMatchProfiles_MissingProfileYieldsZero(t *testing.T) {
	svc, memory := newTestService(t)

	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:         "usr-1",
		FavoriteGenres: []string{"Roman"},
	}))

	result, err := svc.MatchProfiles(context.Background(), "usr-1", "usr-ghost")
	require.NoError(t, err)

	assert.Zero(t, result.OverallScore)
	assert.Equal(t, domain.TierLow, result.Tier)
	assert.Empty(t, result.MatchReasons)
}

func TestMatchProfiles_ScoresSharedTastes(t *testing.T) {
	svc, memory := newTestService(t)

	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:          "usr-1",
		FavoriteGenres:  []string{"Felsefi", "Roman"},
		FavoriteAuthors: []string{"Dostoyevski"},
	}))
	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:          "usr-2",
		FavoriteGenres:  []string{"Felsefi", "Tarih"},
		FavoriteAuthors: []string{"Dostoyevski"},
	}))

	result, err := svc.MatchProfiles(context.Background(), "usr-1", "usr-2")
	require.NoError(t, err)

	assert.Greater(t, result.OverallScore, 0.0)
	assert.Contains(t, result.MatchReasons, "1 ortak tür")
	assert.Contains(t, result.MatchReasons, "1 ortak yazar")
}

func TestSuggestReaders_NoProfile(t *testing.T) {
	svc, _ := newTestService(t)

	suggestions, err := svc.SuggestReaders(context.Background(), "usr-ghost", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestReaders_OrdersByCompatibility(t *testing.T) {
	svc, memory := newTestService(t)

	seedUser(t, memory, "usr-twin", "İkiz", "İstanbul")
	seedUser(t, memory, "usr-far", "Uzak", "Van")

	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:          "usr-1",
		FavoriteGenres:  []string{"Felsefi", "Şiir"},
		FavoriteAuthors: []string{"Dostoyevski", "Kafka"},
		Interests:       []string{"felsefe", "tarih"},
	}))
	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:          "usr-twin",
		FavoriteGenres:  []string{"Felsefi", "Şiir"},
		FavoriteAuthors: []string{"Dostoyevski", "Kafka"},
		Interests:       []string{"felsefe", "tarih"},
	}))
	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:         "usr-far",
		FavoriteGenres: []string{"Çizgi Roman"},
	}))

	suggestions, err := svc.SuggestReaders(context.Background(), "usr-1", 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "usr-twin", suggestions[0].UserID)
	assert.Equal(t, "İkiz", suggestions[0].DisplayName)
	assert.Equal(t, "İstanbul", suggestions[0].City)
	assert.Greater(t, suggestions[0].Compatibility.OverallScore, suggestions[1].Compatibility.OverallScore)
}

func TestSuggestReaders_RespectsLimit(t *testing.T) {
	svc, memory := newTestService(t)

	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:         "usr-1",
		FavoriteGenres: []string{"Roman"},
	}))
	for _, id := range []string{"usr-a", "usr-b", "usr-c"} {
		require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
			UserID:         id,
			FavoriteGenres: []string{"Roman"},
		}))
	}

	suggestions, err := svc.SuggestReaders(context.Background(), "usr-1", 2)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestSuggestReaders_UnknownNameFallback(t *testing.T) {
	svc, memory := newTestService(t)

	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:         "usr-1",
		FavoriteGenres: []string{"Roman"},
	}))
	// Profile exists but the user record is gone from the directory.
	require.NoError(t, memory.SaveProfile(context.Background(), domain.ReaderProfile{
		UserID:         "usr-orphan",
		FavoriteGenres: []string{"Roman"},
	}))

	suggestions, err := svc.SuggestReaders(context.Background(), "usr-1", 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, domain.UnknownUserName, suggestions[0].DisplayName)
}
