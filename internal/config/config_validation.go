// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [Config] satisfies the invariants
// the transport layer depends on.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Gateway.BaseURL == "" {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Gateway.RequestTimeout <= 0 {
		return ErrInvalidGatewayConfigs
	}

	return nil
}
