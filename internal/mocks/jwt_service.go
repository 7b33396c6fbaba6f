package mocks

import (
	"context"

	"github.com/rfoley/taskward-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, subject string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTService creates a MockJWTService using the default fake token
// scheme.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{}
}

// GenerateToken implements auth.JWTService. Without an override it returns
// a deterministic fake token derived from the subject.
func (m *MockJWTService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject)
	}
	return "token-for-" + subject, nil
}

// ValidateToken implements auth.JWTService. Without an override it accepts
// tokens produced by the default GenerateToken and rejects everything else.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}

	const prefix = "token-for-"
	if len(tokenString) <= len(prefix) || tokenString[:len(prefix)] != prefix {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Subject: tokenString[len(prefix):]}, nil
}
