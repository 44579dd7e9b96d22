// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/config"
	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/store"
)

func newAuthHandlerFixture(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users, err := store.NewUserStore(store.SeedUsers())
	require.NoError(t, err)
	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
	}
	authService := services.NewAuthService(users, cfg)
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.PUT("/auth/profile", authAs("user1"), handler.UpdateProfile)
	return r, authService
}

func TestUpdateProfileRejectsOutOfDomainPatch(t *testing.T) {
	r, authService := newAuthHandlerFixture(t)

	body := `{"name": "x", "avatar": "not-a-url"}`
	req := httptest.NewRequest(http.MethodPut, "/auth/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	user, err := authService.GetUser("user1")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)
}

func TestUpdateProfileAcceptsValidPatch(t *testing.T) {
	r, authService := newAuthHandlerFixture(t)

	body := `{"name": "Demo Tester"}`
	req := httptest.NewRequest(http.MethodPut, "/auth/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	user, err := authService.GetUser("user1")
	require.NoError(t, err)
	assert.Equal(t, "Demo Tester", user.Name)
}
