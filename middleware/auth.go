package middleware

import (
	"strings"

	"blog-platform/helper"
	"blog-platform/models"
	"blog-platform/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = &helper.HTTPHelper{}

// RequireRole permits the request only when the bearer token carries one of
// the given roles. An empty role set always permits.
func RequireRole(roles ...models.RoleValue) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendForbiddenError(c, "Bearer token is required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendForbiddenError(c, "User is not authorized", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := services.ParseToken(tokenString)
		if err != nil {
			HTTPHelper.SendForbiddenError(c, "Invalid token", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Set("user_id", claims.UserID)
				c.Set("role", string(claims.Role))
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, "Insufficient permissions", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}

// ResolveUser attaches the identity from the token when one is present and
// the anonymous identity otherwise. It never rejects a missing token; the
// downstream operation decides access.
func ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Set("user_id", "")
			c.Set("role", "")
			c.Next()
			return
		}

		claims, err := services.ParseToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "User is not authorized", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// CurrentUser reads the identity resolved by RequireRole or ResolveUser.
func CurrentUser(c *gin.Context) models.AuthUser {
	return models.AuthUser{
		ID:   c.GetString("user_id"),
		Role: models.RoleValue(c.GetString("role")),
	}
}
