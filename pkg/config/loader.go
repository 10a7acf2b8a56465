package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type configCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cache = &configCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load fills v from the environment and validates it.
//
// The .env file in the working directory is read once per process if it
// exists. Fields are parsed with `env` tags and then checked against their
// `validate` tags. Each config type is parsed once; later calls for the same
// type copy the cached value.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %s", ErrInvalidConfigType, typ)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	cache.values[typ] = cfg
	*v = cfg
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no paths it reads .env.
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// ResetCache drops every cached config so the next Load parses again.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
