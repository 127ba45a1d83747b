package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCookieConfigs indicates a negative lifetime or a cookie name
	// that would break the cookie string.
	ErrInvalidCookieConfigs = errors.New("invalid cookie configuration")
	// ErrInvalidWorkerConfigs indicates a negative sweep interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnsupportedConfigFile indicates a config file extension other than
	// .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
