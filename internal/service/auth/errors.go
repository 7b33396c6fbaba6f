package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed, carries an
	// unexpected signing method, or its signature does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry instant has passed.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is the single error surfaced for every identity
	// failure during login or resolution: unknown email, wrong password,
	// invalid token, or a valid token whose subject no longer exists. The
	// causes are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
