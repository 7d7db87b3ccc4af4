// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallback values applied by applyDefaults when a setting is absent from
// every configuration source.
const (
	DefaultHTTPAddress   = ":3000"
	DefaultTokenIssuer   = "book-review-api"
	DefaultTokenDuration = 24 * time.Hour
	DefaultBcryptCost    = 10
	DefaultSearchDelay   = 100 * time.Millisecond
	DefaultExternalURL   = "https://jsonplaceholder.typicode.com"
	DefaultExternalLimit = 5 * time.Second
)

// applyDefaults fills zero-valued fields of the merged configuration with
// their documented defaults. The token sign key deliberately has no default:
// the secret must come from the environment.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.SearchDelay == 0 {
		cfg.App.SearchDelay = DefaultSearchDelay
	}
	if cfg.External.BaseURL == "" {
		cfg.External.BaseURL = DefaultExternalURL
	}
	if cfg.External.Timeout == 0 {
		cfg.External.Timeout = DefaultExternalLimit
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return ErrInvalidBcryptCost
	}

	return nil
}
