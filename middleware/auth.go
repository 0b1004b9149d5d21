package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/errors"
	"hotelbooking/response"
	"hotelbooking/services"
)

// AuthMiddleware verifies the bearer token and, when roles are given,
// requires one of them.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// ErrorHandler maps errors attached to the context onto the envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr := errors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c)
		}
	}
}
