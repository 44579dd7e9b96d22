// internal/handlers/wheel_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/services"
	"github.com/stefanninkovic/carunity/internal/store"
)

func newWheelHandlerFixture(t *testing.T) (*gin.Engine, *services.WheelService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	wheelService := services.NewWheelService(store.NewWheelStore(store.SeedWheels()))
	handler := NewWheelHandler(wheelService, nil)

	r := gin.New()
	r.PUT("/wheels/:id", authAs("seller1"), handler.UpdateWheel)
	return r, wheelService
}

func TestUpdateWheelRejectsOutOfDomainPatch(t *testing.T) {
	r, wheelService := newWheelHandlerFixture(t)

	body := `{"video_url": "not-a-url", "title": ""}`
	req := httptest.NewRequest(http.MethodPut, "/wheels/wheel1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	wheel, err := wheelService.Get("wheel1", "seller1")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.carunity.com/wheels/porsche-launch.mp4", wheel.VideoURL)
	assert.Equal(t, "911 launch control", wheel.Title)
}

func TestUpdateWheelAcceptsValidPatch(t *testing.T) {
	r, wheelService := newWheelHandlerFixture(t)

	body := `{"title": "Launch control, sound on"}`
	req := httptest.NewRequest(http.MethodPut, "/wheels/wheel1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	wheel, err := wheelService.Get("wheel1", "seller1")
	require.NoError(t, err)
	assert.Equal(t, "Launch control, sound on", wheel.Title)
}
