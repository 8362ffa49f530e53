package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid book-service client settings
	// (for example, missing address or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty credentials path or in-memory history DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSearchConfigs indicates invalid search defaults
	// (for example, non-positive limit or empty format list).
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
	// ErrInvalidDownloadConfigs indicates invalid download settings
	// (for example, empty download directory).
	ErrInvalidDownloadConfigs = errors.New("invalid download configuration")
)
