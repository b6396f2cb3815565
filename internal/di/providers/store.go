package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/config"
	"github.com/kitaplik/kitaplik-server/internal/logger"
	"github.com/kitaplik/kitaplik-server/internal/store"
)

// ProvideCatalog provides the in-memory catalog, seeded from the configured
// fixtures file when one is set.
func ProvideCatalog(i do.Injector) (*store.Memory, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	memory := store.NewMemory()

	if cfg.Data.FixturesPath != "" {
		if err := memory.LoadFixtures(context.Background(), cfg.Data.FixturesPath); err != nil {
			return nil, err
		}
		log.Info("catalog fixtures loaded", "path", cfg.Data.FixturesPath)
	}

	return memory, nil
}
