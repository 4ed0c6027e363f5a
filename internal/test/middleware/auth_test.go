package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"artify-backend/internal/config"
	"artify-backend/internal/middleware"
)

func adminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(cfg))
	router.POST("/admin-op", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAdminAuthMiddleware_NoToken(t *testing.T) {
	router := adminRouter(&config.Config{AdminJWTSecret: "test-secret"})

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_MalformedHeader(t *testing.T) {
	router := adminRouter(&config.Config{AdminJWTSecret: "test-secret"})

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	router := adminRouter(&config.Config{AdminJWTSecret: "test-secret"})

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_WrongSecret(t *testing.T) {
	router := adminRouter(&config.Config{AdminJWTSecret: "right-secret"})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops"})
	tokenString, _ := token.SignedString([]byte("wrong-secret"))

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_ExpiredToken(t *testing.T) {
	secret := "test-secret-key-for-jwt-signing-must-be-long-enough"
	router := adminRouter(&config.Config{AdminJWTSecret: secret})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte(secret))

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	secret := "test-secret-key-for-jwt-signing-must-be-long-enough"
	cfg := &config.Config{AdminJWTSecret: secret}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AdminAuthMiddleware(cfg))
	router.POST("/admin-op", func(c *gin.Context) {
		subject, exists := c.Get(middleware.AdminSubjectKey)
		assert.True(t, exists)
		assert.Equal(t, "ops-team", subject)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops-team"})
	tokenString, _ := token.SignedString([]byte(secret))

	req, _ := http.NewRequest("POST", "/admin-op", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
