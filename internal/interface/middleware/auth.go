package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainsvc "github.com/oksasatya/go-twitter-clone/internal/domain/service"
	"github.com/oksasatya/go-twitter-clone/pkg/response"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "userID"

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth requires a valid bearer token and sets userID in the Gin context.
// Every token failure takes the same unauthenticated path; the auth service
// never reports why validation failed.
func Auth(auth *domainsvc.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := auth.ValidateToken(bearerToken(c))
		if !ok {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or missing token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(ContextUserID, uid.String())
		c.Next()
	}
}

// OptionalAuth sets userID when a valid token is presented but lets anonymous
// requests through. Used on public listings that annotate results for a
// logged-in caller.
func OptionalAuth(auth *domainsvc.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := auth.ValidateToken(bearerToken(c)); ok {
			c.Set(ContextUserID, uid.String())
		}
		c.Next()
	}
}
