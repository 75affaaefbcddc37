package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty recent-file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCatalogConfigs indicates invalid catalog settings
	// (for example, an empty DSN or a negative timeout).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
