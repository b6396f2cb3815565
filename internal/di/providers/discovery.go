package providers

import (
	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/compat"
	"github.com/kitaplik/kitaplik-server/internal/geo"
	"github.com/kitaplik/kitaplik-server/internal/logger"
	"github.com/kitaplik/kitaplik-server/internal/ranking"
	"github.com/kitaplik/kitaplik-server/internal/search"
	"github.com/kitaplik/kitaplik-server/internal/service"
	"github.com/kitaplik/kitaplik-server/internal/store"
	"github.com/kitaplik/kitaplik-server/internal/validation"
)

// ProvideCityTable provides the Turkish city coordinate table.
func ProvideCityTable(i do.Injector) (*geo.CityTable, error) {
	return geo.DefaultCityTable(), nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideRanker provides the book search ranker.
func ProvideRanker(i do.Injector) (*search.Ranker, error) {
	cities := do.MustInvoke[*geo.CityTable](i)
	log := do.MustInvoke[*logger.Logger](i)

	return search.NewRanker(cities, log.Logger), nil
}

// ProvideScorer provides the reader compatibility scorer.
func ProvideScorer(i do.Injector) (*compat.Scorer, error) {
	tables := do.MustInvoke[*ranking.Tables](i)
	weights := do.MustInvoke[*WeightsHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return compat.NewScorer(tables, weights.Source, log.Logger), nil
}

// ProvideDiscoveryService provides the discovery service.
func ProvideDiscoveryService(i do.Injector) (*service.DiscoveryService, error) {
	catalog := do.MustInvoke[*store.Memory](i)
	ranker := do.MustInvoke[*search.Ranker](i)
	scorer := do.MustInvoke[*compat.Scorer](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDiscoveryService(catalog, ranker, scorer, validator, log.Logger), nil
}
