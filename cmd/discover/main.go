// Package main provides the entry point for the Kitaplık discovery tool.
//
// It loads the catalog from the configured fixtures file, runs a book search
// for a user, and prints the ranked results with their nearby subset. With
// --suggest it lists the most compatible readers instead.
//
// Usage:
//
//	FIXTURES_PATH=testdata/catalog.json go run ./cmd/discover --user usr-1 --query dune
//	go run ./cmd/discover --user usr-1 --suggest
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/di"
	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/geo"
	"github.com/kitaplik/kitaplik-server/internal/logger"
	"github.com/kitaplik/kitaplik-server/internal/service"
)

// Search flags. Config flags (env, log-level, fixtures-path, calibration-path)
// are registered by the config package and parsed together with these.
var (
	userID      = flag.String("user", "", "Requesting user ID (required)")
	query       = flag.String("query", "", "Free-text query over title and author")
	author      = flag.String("author", "", "Author filter")
	title       = flag.String("title", "", "Title filter")
	city        = flag.String("city", "", "Owner city filter")
	owner       = flag.String("owner", "", "Owner name filter")
	minRating   = flag.Int("min-rating", 0, "Minimum rating 1-5")
	maxDistance = flag.Float64("max-distance", 0, "Maximum distance in km")
	sortBy      = flag.String("sort", "title", "Sort field (title, author, rating, dateAdded, distance)")
	sortOrder   = flag.String("order", "asc", "Sort order (asc, desc)")
	available   = flag.Bool("available", false, "Only books offered for exchange")
	nearby      = flag.Bool("nearby", false, "Only nearby results")
	lat         = flag.Float64("lat", 0, "Requester latitude (0 = use profile)")
	lon         = flag.Float64("lon", 0, "Requester longitude (0 = use profile)")
	suggest     = flag.Bool("suggest", false, "Suggest compatible readers instead of searching books")
	limit       = flag.Int("limit", 10, "Suggestion count")
)

func main() {
	injector := di.NewContainer()

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*logger.Logger](injector)
	svc := do.MustInvoke[*service.DiscoveryService](injector)

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "--user is required")
		os.Exit(1)
	}

	ctx := context.Background()
	var err error
	if *suggest {
		err = runSuggest(ctx, svc)
	} else {
		err = runSearch(ctx, svc)
	}
	if err != nil {
		log.Error("discovery failed", "error", err)
		os.Exit(1)
	}

	if shutdownErr := injector.Shutdown(); shutdownErr != nil {
		log.Error("Shutdown error", "error", shutdownErr)
	}
}

func runSearch(ctx context.Context, svc *service.DiscoveryService) error {
	criteria := domain.SearchCriteria{
		Query:       *query,
		Author:      *author,
		Title:       *title,
		City:        *city,
		Owner:       *owner,
		MinRating:   *minRating,
		MaxDistance: *maxDistance,
	}
	filters := domain.SearchFilters{
		SortBy:        domain.SortField(*sortBy),
		SortOrder:     domain.SortOrder(*sortOrder),
		AvailableOnly: *available,
		NearbyOnly:    *nearby,
	}

	var coords *geo.Coordinates
	if *lat != 0 || *lon != 0 {
		coords = &geo.Coordinates{Latitude: *lat, Longitude: *lon}
	}

	results, err := svc.SearchBooks(ctx, *userID, criteria, filters, coords)
	if err != nil {
		return err
	}

	fmt.Printf("%d results\n", results.TotalResults)
	for _, item := range results.Results {
		fmt.Printf("  %-40s %-30s %s%s\n",
			item.Book.Title,
			strings.Join(item.Book.Authors, ", "),
			item.Owner.DisplayName,
			formatDistance(item.DistanceKm),
		)
	}

	fmt.Printf("\n%d nearby\n", len(results.NearbyResults))
	for _, item := range results.NearbyResults {
		fmt.Printf("  %-40s %s%s\n",
			item.Book.Title,
			item.Owner.DisplayName,
			formatDistance(item.DistanceKm),
		)
	}
	return nil
}

func runSuggest(ctx context.Context, svc *service.DiscoveryService) error {
	suggestions, err := svc.SuggestReaders(ctx, *userID, *limit)
	if err != nil {
		return err
	}

	fmt.Printf("%d suggestions\n", len(suggestions))
	for _, s := range suggestions {
		fmt.Printf("  %-25s %-15s %.2f %-6s %s\n",
			s.DisplayName,
			s.City,
			s.Compatibility.OverallScore,
			s.Compatibility.Tier,
			strings.Join(s.Compatibility.MatchReasons, "; "),
		)
	}
	return nil
}

func formatDistance(km *int) string {
	if km == nil {
		return ""
	}
	return fmt.Sprintf(" (%d km)", *km)
}
