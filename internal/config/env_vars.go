package config

import (
	"strings"
	"time"
)

type EnvVars struct {
	AppName string `env:"APP_NAME" envDefault:"Storefront"`
	Env     string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

func (e EnvVars) IsDev() bool {
	return strings.EqualFold(e.Env, "DEV")
}

type API struct {
	BaseURL     string        `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"0s"`
	UserAgent   string        `env:"USER_AGENT" envDefault:"go-storefront-client"`
}

var _ APIConfig = API{}

// GetAPIBaseURL returns the remote API root without a trailing slash.
func (a API) GetAPIBaseURL() string {
	return strings.TrimRight(a.BaseURL, "/")
}

// GetHTTPTimeout returns zero when no client timeout is configured.
func (a API) GetHTTPTimeout() time.Duration {
	if a.HTTPTimeout < 0 {
		return 0
	}
	return a.HTTPTimeout
}

func (a API) GetUserAgent() string {
	return a.UserAgent
}
