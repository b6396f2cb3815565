package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/errors"
)

func TestValidate_SearchCriteria(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		criteria domain.SearchCriteria
		wantErr  bool
	}{
		{"empty criteria is valid", domain.SearchCriteria{}, false},
		{"valid min rating", domain.SearchCriteria{MinRating: 4}, false},
		{"min rating too high", domain.SearchCriteria{MinRating: 6}, true},
		{"min rating negative", domain.SearchCriteria{MinRating: -1}, true},
		{"valid max distance", domain.SearchCriteria{MaxDistance: 120.5}, false},
		{"negative max distance", domain.SearchCriteria{MaxDistance: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.criteria)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SearchFilters(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(domain.SearchFilters{}))
	assert.NoError(t, v.Validate(domain.DefaultSearchFilters()))
	assert.NoError(t, v.Validate(domain.SearchFilters{SortBy: domain.SortByDistance, SortOrder: domain.SortDesc}))

	err := v.Validate(domain.SearchFilters{SortBy: "relevance"})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestValidate_ErrorCarriesFieldDetails(t *testing.T) {
	v := New()

	err := v.Validate(domain.SearchCriteria{MinRating: 9})
	require.Error(t, err)

	var domainErr *errors.Error
	require.True(t, errors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "min_rating")
}
