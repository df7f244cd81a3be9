package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidGatewayConfigs indicates invalid gateway connection
	// settings (for example, an empty base URL or a non-positive
	// request timeout).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
)
