// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/stefanninkovic/carunity/internal/config"
	"github.com/stefanninkovic/carunity/internal/store"
)

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	stores, err := store.NewSeededStores()
	require.NoError(s.T(), err)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
	s.router = Initialize(stores, cfg)

	// log in as the demo account once; the token is shared by the tests
	w := s.do("POST", "/v1/auth/login", map[string]string{
		"email":    "demo@carunity.com",
		"password": "demo123",
	}, "")
	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(s.T(), resp.Success)
	require.NotEmpty(s.T(), resp.Data.Token)
	s.token = resp.Data.Token
}

func (s *RouterTestSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *RouterTestSuite) TestHealth() {
	w := s.do("GET", "/health", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestBrowseOffersPublic() {
	w := s.do("GET", "/v1/offers", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)
	resp := s.decode(w)
	assert.True(s.T(), resp["success"].(bool))

	// car5 is unlisted; anonymous viewers get a 404
	w = s.do("GET", "/v1/offers/car5", nil, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *RouterTestSuite) TestProtectedRoutesRequireToken() {
	w := s.do("GET", "/v1/my/offers", nil, "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.do("GET", "/v1/feed", nil, "invalid.token.here")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestProfileWithToken() {
	w := s.do("GET", "/v1/auth/me", nil, s.token)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(s.T(), "user1", user["id"])
	assert.Equal(s.T(), "demo@carunity.com", user["email"])
}

func (s *RouterTestSuite) TestFollowAndFeedFlow() {
	w := s.do("POST", "/v1/follow/seller1", nil, s.token)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do("GET", "/v1/feed", nil, s.token)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	feed := data["feed"].(map[string]interface{})
	cars := feed["cars"].([]interface{})
	assert.NotEmpty(s.T(), cars)
}

func (s *RouterTestSuite) TestReportFlow() {
	w := s.do("GET", "/v1/reports/reasons/wheel", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do("POST", "/v1/reports", map[string]string{
		"type":        "offer",
		"target_id":   "car1",
		"target_name": "Porsche 911",
		"reason":      "Scam or fraud",
	}, s.token)
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.do("GET", "/v1/reports/mine", nil, s.token)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(s.T(), float64(1), data["total"])
}

func (s *RouterTestSuite) TestLookup() {
	w := s.do("GET", "/v1/lookup/vehicle?make=Tesla&model=Model+S&body_type=Sedan&year=2024", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.do("GET", "/v1/lookup/stammnummer/0000-AAA", nil, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
