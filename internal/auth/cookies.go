package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/config"
)

const (
	AccessCookieName  = "access"
	RefreshCookieName = "refresh"
)

// SetAuthCookies attaches the access/refresh pair as HttpOnly cookies.
// Cross-site frontends need Secure + SameSite=None; development stays on
// Lax so plain http still works.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	cfg := config.GetConfig()

	sameSite := http.SameSiteLaxMode
	if cfg.Cookie.Secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)

	accessMaxAge := cfg.JWT.AccessTTL * 60
	refreshMaxAge := cfg.JWT.RefreshTTL * 24 * 3600

	c.SetCookie(AccessCookieName, accessToken, accessMaxAge, "/", cfg.Cookie.Domain, cfg.Cookie.Secure, true)
	c.SetCookie(RefreshCookieName, refreshToken, refreshMaxAge, "/", cfg.Cookie.Domain, cfg.Cookie.Secure, true)
}

// ClearAuthCookies removes both cookies with matching attributes, otherwise
// browsers keep the originals.
func ClearAuthCookies(c *gin.Context) {
	cfg := config.GetConfig()

	sameSite := http.SameSiteLaxMode
	if cfg.Cookie.Secure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)

	c.SetCookie(AccessCookieName, "", -1, "/", cfg.Cookie.Domain, cfg.Cookie.Secure, true)
	c.SetCookie(RefreshCookieName, "", -1, "/", cfg.Cookie.Domain, cfg.Cookie.Secure, true)
}
