package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config interface {
	EnvConfig
	APIConfig
	StorageConfig
	LogConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	IsDev() bool
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
	GetUserAgent() string
}

type mainConfig struct {
	EnvVars
	API
	Storage
	Logging
}

// New loads an optional .env file and then reads the environment.
func New() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (Config, error) {
	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("[config.FromEnv] parse environment: %w", err)
	}
	c.Storage.sanitize()
	c.Logging.sanitize()
	return c, nil
}
