// Package config loads typed configuration from the environment.
//
// Load parses a struct with github.com/caarlos0/env/v11 tags after reading an
// optional .env file through github.com/joho/godotenv, then validates it with
// github.com/go-playground/validator/v10 `validate` tags. Parsed values are
// cached per type for the lifetime of the process; ResetCache clears the
// cache in tests.
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors wrap ErrParsingConfig when the environment cannot be parsed and
// ErrInvalidConfig when a validate tag fails.
package config
