package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"portfolio-monitor/market"
	"portfolio-monitor/middleware"
	"portfolio-monitor/news"
)

const testSecret = "test-secret"

type testEnv struct {
	router     *gin.Engine
	users      *memUserStore
	portfolios *memPortfolioStore
	alerts     *memAlertStore
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	users := &memUserStore{}
	portfolios := newMemPortfolioStore()
	alerts := newMemAlertStore()

	secret := []byte(testSecret)
	authHandler := &AuthHandler{Users: users, Secret: secret, TokenTTL: 30 * time.Minute}
	portfolioHandler := &PortfolioHandler{Portfolios: portfolios}
	alertHandler := &AlertHandler{Alerts: alerts}
	marketHandler := &MarketHandler{Provider: market.NewMockProvider(rand.New(rand.NewSource(1)))}
	newsHandler := &NewsHandler{Provider: news.NewStaticProvider()}

	router := gin.New()
	api := router.Group("/api")

	api.POST("/users", authHandler.Register)
	api.POST("/token", authHandler.Token)
	api.GET("/market/stock/:symbol", marketHandler.Quote)
	api.GET("/market/watchlist", marketHandler.Watchlist)

	auth := api.Group("/")
	auth.Use(middleware.RequireUser(users, secret))
	{
		auth.GET("/users/me", authHandler.Me)
		auth.POST("/portfolios", portfolioHandler.Create)
		auth.GET("/portfolios", portfolioHandler.List)
		auth.GET("/portfolios/:id", portfolioHandler.Get)
		auth.PUT("/portfolios/:id", portfolioHandler.Update)
		auth.DELETE("/portfolios/:id", portfolioHandler.Delete)
		auth.POST("/portfolios/:id/assets", portfolioHandler.AddAsset)
		auth.GET("/portfolios/:id/assets", portfolioHandler.ListAssets)
		auth.GET("/news", newsHandler.List)
		auth.POST("/alerts", alertHandler.Create)
		auth.GET("/alerts", alertHandler.List)
		auth.DELETE("/alerts/:id", alertHandler.Delete)
	}

	return &testEnv{router: router, users: users, portfolios: portfolios, alerts: alerts}
}

// do sends a JSON request, attaching the bearer token when given.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, username, email, password string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/users", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.postForm(t, "/api/token", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func signToken(t *testing.T, secret, username string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
