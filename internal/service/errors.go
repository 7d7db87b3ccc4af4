package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so that login responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpired is reported when a presented token has passed its
	// expiry; ErrTokenInvalid covers every other parse or signature failure.
	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenInvalid   = errors.New("token is invalid")
)
