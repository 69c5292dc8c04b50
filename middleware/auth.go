package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"savanna/response"
	"savanna/services"
)

// ExtractToken pulls the bearer credential from the Authorization header or,
// for same-tab navigation like invoice links, the token query parameter.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware verifies the credential and attaches the identity to the
// request context. Every failure is the same 401; no hint which check broke.
// Pass roles to additionally gate by role.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userInfo, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userInfo.Role {
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

		c.Set("userID", userInfo.UserID)
		c.Set("userEmail", userInfo.Email)
		c.Set("userRole", userInfo.Role)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present but lets
// anonymous requests through. Used by public booking creation.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString != "" {
			if userInfo, err := services.ParseToken(tokenString); err == nil {
				c.Set("userID", userInfo.UserID)
				c.Set("userEmail", userInfo.Email)
				c.Set("userRole", userInfo.Role)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id on the context, if any.
func CurrentUserID(c *gin.Context) *uint {
	v, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
