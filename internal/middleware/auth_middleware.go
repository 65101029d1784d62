package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"premstore/internal/models"
	"premstore/internal/utils"
)

// Context keys set by AuthRequired.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// AuthRequired validates the bearer token and sets the caller's identity on
// the request context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			utils.ErrorResponse(c, 401, "INVALID_TOKEN", utils.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// AdminRequired rejects callers whose token does not carry the admin role.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		userRole, ok := role.(models.UserRole)
		if !ok || userRole != models.UserRoleAdmin {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
