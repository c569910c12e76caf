package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tconnect_backend/database"
	"tconnect_backend/internal/app"
	"tconnect_backend/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTL = 60
	cfg.JWT.RefreshTTL = 7
	config.AppConfig = cfg
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:handlers_"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return app.SetupRouter(config.AppConfig, db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieByName(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "flow@example.com",
		"password":  "password123",
		"full_name": "Flow User",
		"role":      "candidate",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	access := cookieByName(w.Result(), "access")
	refresh := cookieByName(w.Result(), "refresh")
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.True(t, access.HttpOnly)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", nil, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "flow@example.com")

	// Wrong password is a 401 with the error envelope.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "flow@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "flow@example.com",
		"password": "password123",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "not-an-email",
		"password":  "password123",
		"full_name": "X",
		"role":      "candidate",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "someone@example.com",
		"password":  "password123",
		"full_name": "X",
		"role":      "admin",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshAndLogoutFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "session@example.com",
		"password":  "password123",
		"full_name": "S",
		"role":      "candidate",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	refresh := cookieByName(w.Result(), "refresh")
	require.NotNil(t, refresh)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", nil, []*http.Cookie{refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := cookieByName(w.Result(), "refresh")
	require.NotNil(t, rotated)
	assert.NotEqual(t, refresh.Value, rotated.Value)

	// Missing token is a 401.
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", nil, []*http.Cookie{rotated})
	require.Equal(t, http.StatusOK, w.Code)
	cleared := cookieByName(w.Result(), "refresh")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestRecruiterOnlyRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "candidate@example.com",
		"password":  "password123",
		"full_name": "C",
		"role":      "candidate",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	candidateCookie := cookieByName(w.Result(), "access")

	w = doJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
		"title":        "Backend Engineer",
		"company_name": "Acme Corp",
	}, []*http.Cookie{candidateCookie})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "hr@acme.io",
		"password":  "password123",
		"full_name": "R",
		"role":      "recruiter",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	recruiterCookie := cookieByName(w.Result(), "access")

	w = doJSON(t, r, http.MethodPost, "/api/v1/jobs", gin.H{
		"title":        "Backend Engineer",
		"company_name": "Acme Corp",
	}, []*http.Cookie{recruiterCookie})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The listing is publicly readable.
	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Engineer")
}
