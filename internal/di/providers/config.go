// Package providers contains dependency injection providers for the Kitaplık
// discovery server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/kitaplik/kitaplik-server/internal/config"
	"github.com/kitaplik/kitaplik-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Kitaplık discovery",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"calibration_path", cfg.Ranking.CalibrationPath,
		"fixtures_path", cfg.Data.FixturesPath,
	)

	return log, nil
}
