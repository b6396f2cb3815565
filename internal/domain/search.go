package domain

// SortField selects the search result ordering.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByAuthor    SortField = "author"
	SortByRating    SortField = "rating"
	SortByDateAdded SortField = "dateAdded"
	SortByDistance  SortField = "distance"
)

// Valid checks if the sort field is one of the known orderings.
func (f SortField) Valid() bool {
	switch f {
	case SortByTitle, SortByAuthor, SortByRating, SortByDateAdded, SortByDistance:
		return true
	default:
		return false
	}
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchCriteria is the free-form part of a discovery query. Zero values mean
// "not set"; no field is required.
type SearchCriteria struct {
	Query       string  `json:"query,omitempty"`
	Author      string  `json:"author,omitempty"`
	Title       string  `json:"title,omitempty"`
	City        string  `json:"city,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	MinRating   int     `json:"min_rating,omitempty" validate:"omitempty,min=1,max=5"`
	MaxDistance float64 `json:"max_distance,omitempty" validate:"omitempty,gt=0"`
}

// SearchFilters holds sort selection and boolean toggles.
type SearchFilters struct {
	SortBy        SortField `json:"sort_by,omitempty" validate:"omitempty,oneof=title author rating dateAdded distance"`
	SortOrder     SortOrder `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
	AvailableOnly bool      `json:"available_only,omitempty"`
	NearbyOnly    bool      `json:"nearby_only,omitempty"`
}

// DefaultSearchFilters returns the filter defaults: title ascending, no
// toggles.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		SortBy:    SortByTitle,
		SortOrder: SortAsc,
	}
}

// SearchResultItem is a read-only projection of one matched copy together
// with its owner. Constructed fresh per query, never persisted.
type SearchResultItem struct {
	Book       UserBook     `json:"book"`
	Owner      OwnerSummary `json:"owner"`
	DistanceKm *int         `json:"distance_km,omitempty"`
	MatchScore float64      `json:"match_score"`
}

// SearchResults is the full outcome of one discovery query.
type SearchResults struct {
	Results       []SearchResultItem `json:"results"`
	TotalResults  int                `json:"total_results"`
	NearbyResults []SearchResultItem `json:"nearby_results"`
}
