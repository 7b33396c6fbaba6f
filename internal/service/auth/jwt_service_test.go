package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfoley/taskward-api/internal/config"
)

const (
	testSecret      = "test-secret-that-is-long-enough-for-testing"
	testWrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()

		_, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 30,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 30,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 30 * time.Minute
	svc := newJWTServiceWithClock(testSecret, lifetime, fixedClock(issuedAt))

	token, err := svc.GenerateToken(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 30 * time.Minute

	issue := newJWTServiceWithClock(testSecret, lifetime, fixedClock(issuedAt))
	token, err := issue.GenerateToken(context.Background(), "alice@example.com")
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		t.Parallel()

		verify := newJWTServiceWithClock(testSecret, lifetime,
			fixedClock(issuedAt.Add(lifetime-time.Second)))
		claims, err := verify.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Subject)
	})

	t.Run("expired just after expiry", func(t *testing.T) {
		t.Parallel()

		verify := newJWTServiceWithClock(testSecret, lifetime,
			fixedClock(issuedAt.Add(lifetime+time.Second)))
		_, err := verify.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 30 * time.Minute
	svc := newJWTServiceWithClock(testSecret, lifetime, fixedClock(now))

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong signing secret",
			token: func(t *testing.T) string {
				other := newJWTServiceWithClock(testWrongSecret, lifetime, fixedClock(now))
				token, err := other.GenerateToken(context.Background(), "alice@example.com")
				require.NoError(t, err)
				return token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				token, err := svc.GenerateToken(context.Background(), "alice@example.com")
				require.NoError(t, err)
				// Flip a character in the payload segment.
				b := []byte(token)
				mid := len(b) / 2
				if b[mid] == 'a' {
					b[mid] = 'b'
				} else {
					b[mid] = 'a'
				}
				return string(b)
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ValidateToken(context.Background(), tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTokenDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newJWTServiceWithClock(testSecret, 30*time.Minute, fixedClock(now))

	token, err := svc.GenerateToken(context.Background(), "alice@example.com")
	require.NoError(t, err)

	// Verification never mutates state: repeated calls agree.
	for i := 0; i < 3; i++ {
		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Subject)
	}
}
