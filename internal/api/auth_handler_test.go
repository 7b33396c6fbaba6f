package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rfoley/taskward-api/internal/domain"
	"github.com/rfoley/taskward-api/internal/mocks"
	"github.com/rfoley/taskward-api/internal/service/auth"
)

func postJSON(t *testing.T, path string, payload map[string]interface{}) *http.Request {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid signup",
			payload: map[string]interface{}{
				"email":    "new@example.com",
				"password": "long-enough-password",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "not-an-email",
				"password": "long-enough-password",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "short@example.com",
				"password": "seven77",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "long-enough-password",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "nopass@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			handler := NewAuthHandler(userStore, mocks.NewMockJWTService(), auth.NewBcryptHasher(bcrypt.MinCost))

			recorder := httptest.NewRecorder()
			handler.Signup(recorder, postJSON(t, "/auth/signup", tt.payload))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEmpty(t, resp.ID)
				assert.Equal(t, tt.payload["email"], resp.Email)
			}
		})
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := NewAuthHandler(userStore, mocks.NewMockJWTService(), auth.NewBcryptHasher(bcrypt.MinCost))

		payload := map[string]interface{}{
			"email":    "taken@example.com",
			"password": "long-enough-password",
		}

		first := httptest.NewRecorder()
		handler.Signup(first, postJSON(t, "/auth/signup", payload))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.Signup(second, postJSON(t, "/auth/signup", payload))
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Contains(t, second.Body.String(), "Email already exists")
	})

	t.Run("response never contains password material", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := NewAuthHandler(userStore, mocks.NewMockJWTService(), auth.NewBcryptHasher(bcrypt.MinCost))

		recorder := httptest.NewRecorder()
		handler.Signup(recorder, postJSON(t, "/auth/signup", map[string]interface{}{
			"email":    "safe@example.com",
			"password": "super-secret-password",
		}))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "password")
		assert.NotContains(t, recorder.Body.String(), "super-secret-password")
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	const (
		knownEmail    = "alice@example.com"
		knownPassword = "correct-horse-battery"
	)

	newHandler := func(t *testing.T) (*AuthHandler, *mocks.MockUserStore) {
		t.Helper()

		hashed, err := bcrypt.GenerateFromPassword([]byte(knownPassword), bcrypt.MinCost)
		require.NoError(t, err)

		userStore := mocks.NewMockUserStore()
		userStore.AddUser(&domain.User{
			Email:          knownEmail,
			HashedPassword: string(hashed),
		})

		return NewAuthHandler(userStore, mocks.NewMockJWTService(), auth.NewBcryptHasher(bcrypt.MinCost)), userStore
	}

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(t)
		recorder := httptest.NewRecorder()
		handler.Login(recorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    knownEmail,
			"password": knownPassword,
		}))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp TokenResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(t)

		unknownEmail := httptest.NewRecorder()
		handler.Login(unknownEmail, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": knownPassword,
		}))

		wrongPassword := httptest.NewRecorder()
		handler.Login(wrongPassword, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    knownEmail,
			"password": "not-the-password",
		}))

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

		var a, b errorMessageOnly
		require.NoError(t, json.Unmarshal(unknownEmail.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &b))
		assert.Equal(t, a.Error, b.Error)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{not json"))
		recorder := httptest.NewRecorder()

		handler.Login(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("storage failure is a server error, not unauthorized", func(t *testing.T) {
		t.Parallel()

		handler, userStore := newHandler(t)
		userStore.GetByEmailFn = func(_ context.Context, _ string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		}

		recorder := httptest.NewRecorder()
		handler.Login(recorder, postJSON(t, "/auth/login", map[string]interface{}{
			"email":    knownEmail,
			"password": knownPassword,
		}))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

// errorMessageOnly decodes just the error field of an error response.
type errorMessageOnly struct {
	Error string `json:"error"`
}
