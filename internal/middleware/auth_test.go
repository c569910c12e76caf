package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tconnect_backend/internal/auth"
	"tconnect_backend/internal/config"
	"tconnect_backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTL = 60
	cfg.JWT.RefreshTTL = 7
	config.AppConfig = cfg
}

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	r.GET("/recruiter-only", AuthMiddleware(), RequireRoles(models.UserRoleRecruiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddlewareCookie(t *testing.T) {
	r := authTestRouter()

	token, err := auth.GenerateToken("user-1", string(models.UserRoleCandidate))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	r := authTestRouter()

	token, err := auth.GenerateToken("user-2", string(models.UserRoleCandidate))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-2")
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := authTestRouter()

	candidate, err := auth.GenerateToken("user-3", string(models.UserRoleCandidate))
	require.NoError(t, err)
	recruiter, err := auth.GenerateToken("user-4", string(models.UserRoleRecruiter))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/recruiter-only", nil)
	req.Header.Set("Authorization", "Bearer "+candidate)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/recruiter-only", nil)
	req.Header.Set("Authorization", "Bearer "+recruiter)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
