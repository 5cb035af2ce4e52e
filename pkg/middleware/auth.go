package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apaudel/folio/internal/sessions"
)

// SessionResolver is the minimal surface the auth gate needs from the
// session service.
type SessionResolver interface {
	Resolve(ctx context.Context, value string) (string, error)
}

// ContextTokenKey is where the resolved session token is stored on the
// gin context for downstream handlers.
const ContextTokenKey = "sessionToken"

// RequireAdmin gates admin routes on a valid session cookie. A
// missing, malformed, forged or expired cookie all produce the same
// generic 401 so nothing is leaked about why. The gate runs strictly
// before any store access.
func RequireAdmin(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(sessions.CookieName)
		if err != nil {
			unauthorized(c)
			return
		}
		token, err := resolver.Resolve(c.Request.Context(), value)
		if err != nil || token == "" {
			unauthorized(c)
			return
		}
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Unauthorized"})
}
