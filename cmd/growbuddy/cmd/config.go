package cmd

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/growbuddy/pkg/httpserver"
	"github.com/dmitrymomot/growbuddy/pkg/logger"
	"github.com/dmitrymomot/growbuddy/pkg/requestid"
)

// AppConfig is read from the environment and an optional .env file.
type AppConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Service   string `env:"APP_SERVICE" envDefault:"growbuddy" validate:"required"`
	LogLevel  string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" validate:"omitempty,oneof=text json"`

	HTTP httpserver.Config

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	LoadDemo       bool `env:"GARDEN_LOAD_DEMO" envDefault:"false"`
}

// newLogger builds the process logger. Environment defaults come first so
// LOG_LEVEL and LOG_FORMAT override them.
func newLogger(cfg AppConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...), nil
}
