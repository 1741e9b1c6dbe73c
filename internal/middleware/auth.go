package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autohub/internal/domain"
	"autohub/internal/pkg/jwt"
	"autohub/internal/pkg/response"
)

// Context keys set by RequireAuth.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// RequireAuth verifies the bearer token. Every failure mode (missing header,
// malformed token, expired, wrong signature) produces the same response; the
// caller learns nothing about why verification failed.
func RequireAuth(svc *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
		if token == "" {
			unauthorized(c)
			return
		}

		claims, err := svc.ValidateToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates a route to the admin role. The check is plain equality;
// editors and viewers are rejected alike.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != string(domain.RoleAdmin) {
			response.Error(c, http.StatusForbidden, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
	c.Abort()
}
