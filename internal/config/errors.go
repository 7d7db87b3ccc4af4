package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// settings are missing or out of range.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied by any configuration source. The service refuses to start
	// rather than fall back to a hard-coded secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidBcryptCost indicates a bcrypt cost factor outside the
	// range supported by the bcrypt implementation (4..31).
	ErrInvalidBcryptCost = errors.New("bcrypt cost is out of range")
)
