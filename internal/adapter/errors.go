package adapter

import "errors"

var (
	// ErrUpstreamFailure is returned when the external API answers with a
	// non-2xx status code.
	ErrUpstreamFailure = errors.New("external API request failed")
)
