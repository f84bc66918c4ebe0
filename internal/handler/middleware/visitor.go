package middleware

import (
	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxVisitorIDKey = "visitor_id"

// VisitorMiddleware guarantees every caller has a flow key. Anonymous callers
// get a random visitor ID cookie minted on first contact; authenticated
// callers already carry the session ID set by OptionalAuth, which wins.
type VisitorMiddleware struct {
	cookieCfg  config.CookieConfig
	sessionCfg config.SessionConfig
}

func NewVisitorMiddleware(cookieCfg config.CookieConfig, sessionCfg config.SessionConfig) *VisitorMiddleware {
	return &VisitorMiddleware{cookieCfg: cookieCfg, sessionCfg: sessionCfg}
}

func (m *VisitorMiddleware) EnsureVisitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := cookie.GetVisitorID(c)
		if visitorID == "" {
			visitorID = uuid.New().String()
			cookie.SetVisitorCookie(c, m.cookieCfg, visitorID, m.sessionCfg.TTL)
		}
		c.Set(ctxVisitorIDKey, visitorID)

		if _, ok := GetFlowKey(c); !ok {
			c.Set(ctxFlowKeyKey, visitorID)
		}
		c.Next()
	}
}

func GetVisitorID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxVisitorIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
