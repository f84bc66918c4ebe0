package cookie

import (
	"net/http"
	"time"

	"carhaul-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "portal_session"
	VisitorCookieName = "visitor_id"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

// Visitor cookie keys the wizard state of users who requested a quote
// before authenticating. Not HttpOnly-sensitive, but kept HttpOnly anyway.
func SetVisitorCookie(c *gin.Context, cfg config.CookieConfig, visitorID string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		VisitorCookieName,
		visitorID,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetVisitorID(c *gin.Context) string {
	id, _ := c.Cookie(VisitorCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
