package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/compat"
	"github.com/kitaplik/kitaplik-server/internal/config"
	"github.com/kitaplik/kitaplik-server/internal/logger"
	"github.com/kitaplik/kitaplik-server/internal/ranking"
)

// WeightsHandle exposes the active compatibility weights. When calibration
// watching is enabled it owns the background watcher.
type WeightsHandle struct {
	Source  compat.WeightSource
	watcher *ranking.CalibrationWatcher
	cancel  context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *WeightsHandle) Shutdown() error {
	if h.cancel != nil {
		h.cancel()
	}
	if h.watcher != nil {
		return h.watcher.Close()
	}
	return nil
}

// ProvideWeights provides the compatibility weight source, optionally backed
// by a live-reloading calibration watcher.
func ProvideWeights(i do.Injector) (*WeightsHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Ranking.CalibrationPath == "" {
		return &WeightsHandle{Source: ranking.DefaultWeights()}, nil
	}

	if !cfg.Ranking.WatchCalibration {
		weights, err := ranking.LoadCalibration(cfg.Ranking.CalibrationPath)
		if err != nil {
			log.Warn("calibration load failed, using defaults",
				"path", cfg.Ranking.CalibrationPath,
				"error", err,
			)
		}
		return &WeightsHandle{Source: weights}, nil
	}

	watcher, err := ranking.NewCalibrationWatcher(cfg.Ranking.CalibrationPath, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error("calibration watcher stopped", "error", err)
		}
	}()

	log.Info("calibration watcher started", "path", cfg.Ranking.CalibrationPath)

	return &WeightsHandle{
		Source:  watcher,
		watcher: watcher,
		cancel:  cancel,
	}, nil
}

// ProvideTables provides the static taxonomy tables used by the scorer.
func ProvideTables(i do.Injector) (*ranking.Tables, error) {
	return ranking.DefaultTables(), nil
}
