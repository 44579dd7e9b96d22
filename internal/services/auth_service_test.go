// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/config"
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	users, err := store.NewUserStore(store.SeedUsers())
	require.NoError(t, err)
	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	return NewAuthService(users, cfg)
}

func TestAuthServiceLoginDemoAccount(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(&LoginRequest{Email: "demo@carunity.com", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, "user1", resp.User.ID)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "Demo User", claims.Name)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{Email: "demo@carunity.com", Password: "nope"})
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestAuthServiceLoginValidation(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{Email: "not-an-email", Password: "demo123"})
	assert.Error(t, err)
}

func TestAuthServiceRegister(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Register(&RegisterRequest{
		Name:     "Nina Weber",
		Email:    "nina@carunity.com",
		Password: "nina1234",
		Phone:    "+41 79 000 11 22",
		Location: "Lucerne, Switzerland",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)

	// the fresh account can log in with its own credentials
	again, err := svc.Login(&LoginRequest{Email: "nina@carunity.com", Password: "nina1234"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Register(&RegisterRequest{
		Name:     "Imposter",
		Email:    "demo@carunity.com",
		Password: "other123",
		Phone:    "+41 79 999 88 77",
		Location: "Zurich, Switzerland",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestAuthServiceUpdateProfile(t *testing.T) {
	svc := newAuthFixture(t)

	name := "Demo Renamed"
	user, err := svc.UpdateProfile("user1", models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Demo Renamed", user.Name)

	got, err := svc.GetUser("user1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Renamed", got.Name)
}
