// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Documented placeholder values shipped as compiled-in defaults. When the
// operator has not configured the corresponding environment variable, the
// placeholder signals that an interactive fallback is needed (API key) or
// that the default is being used verbatim (base URL).
const (
	// PlaceholderBaseURL is the compiled-in default gateway address.
	PlaceholderBaseURL = "http://API_URL"

	// PlaceholderAPIKey is the compiled-in default API key value.
	// Requests must never be sent with it.
	PlaceholderAPIKey = "API_KEY"
)

// Config is the top-level configuration container for the admin client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Gateway holds the connection settings for the gateway management API.
	Gateway Gateway `envPrefix:"MSGGW_"`
}

// Gateway groups the settings used by the HTTP transport layer.
type Gateway struct {
	// BaseURL is the root of the gateway management API. Trailing
	// slashes are stripped by the adapter before path concatenation.
	// Env: MSGGW_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the operator's API key, sent as the Basic-auth password
	// with the fixed username "apikey". Must be kept confidential.
	// Env: MSGGW_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the fixed timeout applied to every request.
	// Env: MSGGW_TIMEOUT
	RequestTimeout time.Duration `env:"TIMEOUT"`
}

// NeedsAPIKey reports whether the API key is unset or still the documented
// placeholder, in which case the operator must be prompted for it once
// before any request is sent.
func (g Gateway) NeedsAPIKey() bool {
	return g.APIKey == "" || g.APIKey == PlaceholderAPIKey
}

// GetConfig builds and validates the admin client configuration from the
// environment merged over compiled-in defaults.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

func defaults() *Config {
	return &Config{
		Gateway: Gateway{
			BaseURL:        PlaceholderBaseURL,
			APIKey:         PlaceholderAPIKey,
			RequestTimeout: 15 * time.Second,
		},
	}
}
