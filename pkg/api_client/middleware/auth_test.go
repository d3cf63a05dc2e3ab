package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(middleware.ContextUserID),
			"admin":  c.GetBool(middleware.ContextIsAdmin),
		})
	})
	return g
}

func request(g *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestRequireUser(t *testing.T) {
	g := newEngine(middleware.RequireUser(secret))

	token := signToken(t, jwt.MapClaims{
		"sub":      "user-1",
		"username": "alice",
		"admin":    false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	w := request(g, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireUser_MissingHeader(t *testing.T) {
	g := newEngine(middleware.RequireUser(secret))
	w := request(g, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_ExpiredToken(t *testing.T) {
	g := newEngine(middleware.RequireUser(secret))

	token := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := request(g, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUser_WrongSecret(t *testing.T) {
	g := newEngine(middleware.RequireUser(secret))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("ander-geheim"))
	require.NoError(t, err)

	w := request(g, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	g := newEngine(middleware.RequireAdmin(secret))

	admin := signToken(t, jwt.MapClaims{
		"sub":   "admin-1",
		"admin": true,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := request(g, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	user := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"admin": false,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w = request(g, user)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_NonAdminNeverReachesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handlerRan := false
	g := gin.New()
	g.GET("/protected", middleware.RequireAdmin(secret), func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	user := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"admin": false,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := request(g, user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan, "handler mag niet draaien voor een niet-admin")
}
