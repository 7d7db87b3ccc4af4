package http

import "errors"

// Sentinel errors produced while extracting the bearer token from the
// Authorization header. All of them map to HTTP 401: the caller presented
// no usable token at all, as opposed to an invalid one.
var (
	ErrEmptyAuthorizationHeader   = errors.New("access token required")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrEmptyToken                 = errors.New("empty bearer token")
)
