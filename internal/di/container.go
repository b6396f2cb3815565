// Package di provides dependency injection configuration for the Kitaplık
// discovery server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/compat"
	"github.com/kitaplik/kitaplik-server/internal/config"
	"github.com/kitaplik/kitaplik-server/internal/di/providers"
	"github.com/kitaplik/kitaplik-server/internal/geo"
	"github.com/kitaplik/kitaplik-server/internal/logger"
	"github.com/kitaplik/kitaplik-server/internal/ranking"
	"github.com/kitaplik/kitaplik-server/internal/search"
	"github.com/kitaplik/kitaplik-server/internal/service"
	"github.com/kitaplik/kitaplik-server/internal/store"
	"github.com/kitaplik/kitaplik-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Catalog
	do.Provide(injector, providers.ProvideCatalog)

	// Ranking layer
	do.Provide(injector, providers.ProvideCityTable)
	do.Provide(injector, providers.ProvideTables)
	do.Provide(injector, providers.ProvideWeights)
	do.Provide(injector, providers.ProvideRanker)
	do.Provide(injector, providers.ProvideScorer)

	// Business services
	do.Provide(injector, providers.ProvideDiscoveryService)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*store.Memory](injector)
	_ = do.MustInvoke[*geo.CityTable](injector)
	_ = do.MustInvoke[*ranking.Tables](injector)
	_ = do.MustInvoke[*providers.WeightsHandle](injector)
	_ = do.MustInvoke[*search.Ranker](injector)
	_ = do.MustInvoke[*compat.Scorer](injector)
	_ = do.MustInvoke[*service.DiscoveryService](injector)

	return nil
}
