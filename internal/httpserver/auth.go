package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/token"
)

type ctxKey string

const subjectCtxKey ctxKey = "authSubject"

type tokenVerifier interface {
	Verify(raw string) (token.Subject, error)
}

// bearerAuth is the sole gate for protected routes. A missing token is
// rejected with 401, an unverifiable or expired one with 403; on success the
// resolved subject is attached to the request context.
func bearerAuth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "access token required"})
			return
		}
		subject, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), subjectCtxKey, subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func subjectFromContext(ctx context.Context) (token.Subject, bool) {
	s, ok := ctx.Value(subjectCtxKey).(token.Subject)
	return s, ok
}
