package middleware

import (
	"strings"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stashes the claims on
// the context for downstream handlers.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			util.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			util.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("player", claims)
		c.Next()
	}
}

// InstructorMiddleware gates the content management surface. It must
// run after AuthMiddleware.
func InstructorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetPlayerFromContext(c)
		if claims == nil || claims.PlayerName != util.InstructorName {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
