package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/autohandel/backoffice/internal/access"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/autohandel/backoffice/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the resolved *sessions.Session.
const SessionKey = "session"

// SessionResolver is the minimal interface the middleware depends on.
type SessionResolver interface {
	Resolve(ctx context.Context, rawToken string) (*sessions.Session, error)
}

// bearerToken extracts the token of an `Authorization: Bearer <token>` header.
func bearerToken(c *gin.Context) string {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// SessionMiddleware resolves the active session and stores it under
// SessionKey. Requests without a session are rejected with 401.
func SessionMiddleware(res SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := res.Resolve(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session", "details": err.Error()})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stored by SessionMiddleware, or nil.
func SessionFrom(c *gin.Context) *sessions.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*sessions.Session)
	return sess
}

// RequireModule rejects requests whose session role may not open module.
// The rejection carries the user-visible denial notice and changes nothing.
func RequireModule(module access.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).CanOpen(module) {
			metrics.AccessDenied.WithLabelValues(string(module)).Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": access.DeniedMessage})
			return
		}
		c.Next()
	}
}

// RequireRole restricts an action inside module to the listed roles. Denials
// are counted under module, like RequireModule.
func RequireRole(module access.Module, roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := SessionFrom(c); sess != nil {
			for _, r := range roles {
				if sess.Role == r {
					c.Next()
					return
				}
			}
		}
		metrics.AccessDenied.WithLabelValues(string(module)).Inc()
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": access.DeniedMessage})
	}
}
