package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfoley/taskward-api/internal/domain"
	"github.com/rfoley/taskward-api/internal/mocks"
	"github.com/rfoley/taskward-api/internal/service/auth"
	"github.com/rfoley/taskward-api/internal/store"
)

func TestResolveBypassMode(t *testing.T) {
	t.Parallel()

	resolver := auth.NewIdentityResolver(auth.ModeBypass, nil, nil)

	t.Run("returns synthetic identity without credentials", func(t *testing.T) {
		t.Parallel()

		user, err := resolver.Resolve(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, auth.BypassEmail, user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Empty(t, user.HashedPassword)
	})

	t.Run("identity is fresh per call", func(t *testing.T) {
		t.Parallel()

		first, err := resolver.Resolve(context.Background(), "")
		require.NoError(t, err)
		second, err := resolver.Resolve(context.Background(), "")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Email, second.Email)
	})
}

func TestResolveTokenMode(t *testing.T) {
	t.Parallel()

	alice := &domain.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$stub",
	}

	newResolver := func(userStore store.UserStore) *auth.IdentityResolver {
		return auth.NewIdentityResolver(auth.ModeToken, &mocks.MockJWTService{}, userStore)
	}

	t.Run("resolves known subject", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.AddUser(alice)
		resolver := newResolver(userStore)

		user, err := resolver.Resolve(context.Background(), "token-for-alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, alice.Email, user.Email)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		resolver := newResolver(mocks.NewMockUserStore())

		_, err := resolver.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})

	t.Run("invalid token and deleted user are indistinguishable", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.AddUser(alice)
		resolver := newResolver(userStore)

		// Token fails validation.
		_, errBadToken := resolver.Resolve(context.Background(), "garbage")

		// Token is valid but its subject no longer exists.
		_, errGone := resolver.Resolve(context.Background(), "token-for-ghost@example.com")

		assert.ErrorIs(t, errBadToken, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, errGone, auth.ErrInvalidCredentials)
		assert.Equal(t, errBadToken.Error(), errGone.Error())
	})

	t.Run("storage failure is not an identity failure", func(t *testing.T) {
		t.Parallel()

		storageErr := errors.New("connection refused")
		userStore := mocks.NewMockUserStore()
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, storageErr
		}
		resolver := newResolver(userStore)

		_, err := resolver.Resolve(context.Background(), "token-for-alice@example.com")
		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestNewIdentityResolverPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		auth.NewIdentityResolver(auth.ModeToken, nil, nil)
	})
}
