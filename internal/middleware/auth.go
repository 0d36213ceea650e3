package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-scheduler-server/internal/models"
	"clinic-scheduler-server/internal/services"
	"clinic-scheduler-server/internal/utils"
)

const tokenKey = "token"

// RequireRole gates a route on a bearer token carried as the :token path
// segment. The token's identifier must exist in the store of the expected
// role; a valid token of another role is rejected.
func RequireRole(clinic *services.ClinicService, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		if token == "" {
			utils.Unauthorized(c, "Missing token")
			c.Abort()
			return
		}

		if err := clinic.ValidateToken(token, role); err != nil {
			switch {
			case errors.Is(err, services.ErrMissingToken):
				utils.Unauthorized(c, "Missing token")
			case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrUnauthorized):
				utils.Unauthorized(c, "Invalid or expired token")
			default:
				utils.InternalServerError(c, "Failed to validate token")
			}
			c.Abort()
			return
		}

		c.Set(tokenKey, token)
		c.Next()
	}
}

// TokenFromContext returns the validated bearer token set by RequireRole.
func TokenFromContext(c *gin.Context) string {
	if token, exists := c.Get(tokenKey); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return c.Param("token")
}
