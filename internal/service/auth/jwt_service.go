package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing signed identity tokens.
// Verification is stateless: no session record is kept server-side, so any
// instance holding the signing secret can validate a token. The flip side is
// that there is no revocation; a leaked token stays valid until it expires.
type JWTService interface {
	// GenerateToken creates a signed access token for the given subject
	// (the user's email). Returns the token string or an error if signing
	// fails.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken for expired tokens and ErrInvalidToken
	// for every other failure (malformed encoding, bad signature, wrong
	// signing method).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an identity token.
type Claims struct {
	// Subject is the email of the user the token was issued for.
	Subject string `json:"sub,omitempty"`

	// IssuedAt is the instant the token was created.
	IssuedAt time.Time `json:"iat,omitempty"`

	// ExpiresAt is the instant after which the token no longer validates.
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is a unique identifier for this token.
	ID string `json:"jti,omitempty"`
}
