package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"carhaul-portal/internal/domain/session"
	"carhaul-portal/internal/domain/user"
	"carhaul-portal/internal/pkg/clock"
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/cookie"
	"carhaul-portal/internal/pkg/jwt"
	"carhaul-portal/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
	ctxUserRoleKey  = "user_role"
	ctxFlowKeyKey   = "flow_key"
)

// AuthMiddleware resolves the portal token into the server-side session it
// references. The token itself proves nothing beyond the reference; the
// session row is the authority, so logout and sweeps take effect immediately.
type AuthMiddleware struct {
	jwtSvc    *jwt.Service
	sessions  shared.SessionStore
	clk       clock.Clock
	cookieCfg config.CookieConfig
}

func NewAuthMiddleware(jwtSvc *jwt.Service, sessions shared.SessionStore, clk clock.Clock, cookieCfg config.CookieConfig) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc:    jwtSvc,
		sessions:  sessions,
		clk:       clk,
		cookieCfg: cookieCfg,
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) resolve(c *gin.Context, token string) (*session.Session, bool) {
	claims, err := m.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	sess, err := m.sessions.Find(c.Request.Context(), claims.SessionID)
	if err != nil {
		slog.Warn("session lookup failed in auth middleware", "error", err.Error())
		return nil, false
	}
	if !sess.Authenticated() || sess.Expired(m.clk.Now()) {
		return nil, false
	}
	return sess, true
}

func (m *AuthMiddleware) attach(c *gin.Context, sess *session.Session) {
	c.Set(ctxSessionKey, sess)
	c.Set(ctxSessionIDKey, sess.ID())
	c.Set(ctxUserRoleKey, sess.Role())
	// Flow state follows the session once authenticated.
	c.Set(ctxFlowKeyKey, sess.ID().String())
	c.Set("auth_claims", map[string]any{
		"session_id": sess.ID().String(),
		"role":       sess.Role().String(),
	})
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		sess, ok := m.resolve(c, token)
		if !ok {
			cookie.ClearSessionCookie(c, m.cookieCfg)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		m.attach(c, sess)
		c.Next()
	}
}

// OptionalAuth attaches the session if a valid token is present, but never
// aborts. Anonymous flow routes use it so the flow key can fall back to the
// visitor cookie.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		if sess, ok := m.resolve(c, token); ok {
			m.attach(c, sess)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}
		if role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

// GetFlowKey returns the key addressing the caller's reservation-flow state:
// the session ID when authenticated, the visitor cookie otherwise.
func GetFlowKey(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxFlowKeyKey)
	if !exists {
		return "", false
	}
	key, ok := v.(string)
	return key, ok && key != ""
}
