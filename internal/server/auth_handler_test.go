package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/types"
)

func newTestAuthHandler(mock *mockDB) *AuthHandler {
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	userService := NewUserService(mock, passwordConfig)
	return NewAuthHandler(userService, testJWTService())
}

func TestRegister_Success(t *testing.T) {
	userID := uuid.New()
	now := time.Now()
	mock := &mockDB{
		checkEmailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		createUserFn: func(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
			assert.Equal(t, "Alice", name)
			assert.Equal(t, "alice@example.com", email)
			assert.NotEqual(t, "supersecret", passwordHash, "password must be stored hashed")
			return userID, nil
		},
		getUserFn: func(ctx context.Context, id uuid.UUID) (*db.User, error) {
			return &db.User{
				ID:        id,
				Name:      "Alice",
				Email:     "alice@example.com",
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	handler := newTestAuthHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, userID, resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	// The issued token must validate against the same service
	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mock := &mockDB{
		checkEmailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	handler := newTestAuthHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"alice@example.com","password":"supersecret"}`},
		{"invalid email", `{"name":"Alice","email":"not-an-email","password":"supersecret"}`},
		{"short password", `{"name":"Alice","email":"alice@example.com","password":"short"}`},
		{"bad json", `{`},
	}

	handler := newTestAuthHandler(&mockDB{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwordConfig.HashPassword("supersecret")
	require.NoError(t, err)

	userID := uuid.New()
	mock := &mockDB{
		getUserByEmailFn: func(ctx context.Context, email string) (*db.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return &db.User{
				ID:           userID,
				Name:         "Alice",
				Email:        "alice@example.com",
				PasswordHash: hash,
			}, nil
		},
	}
	handler := newTestAuthHandler(mock)

	body := `{"email":"alice@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, userID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwordConfig.HashPassword("supersecret")
	require.NoError(t, err)

	mock := &mockDB{
		getUserByEmailFn: func(ctx context.Context, email string) (*db.User, error) {
			return &db.User{ID: uuid.New(), Email: email, PasswordHash: hash}, nil
		},
	}
	handler := newTestAuthHandler(mock)

	body := `{"email":"alice@example.com","password":"wrongpassword"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mock := &mockDB{
		getUserByEmailFn: func(ctx context.Context, email string) (*db.User, error) {
			return nil, nil
		},
	}
	handler := newTestAuthHandler(mock)

	body := `{"email":"nobody@example.com","password":"supersecret"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	// Same generic error as a wrong password, by construction
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
