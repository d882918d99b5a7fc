package middleware

import (
	"net/http"
	"strings"

	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a valid bearer token. No route
// mounts it today — tokens are issued by /login but nothing enforces
// them yet — so it is exported for deployments that want to opt
// endpoints in.
func RequireAuth(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
				"code":  "MISSING_TOKEN",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(token)
		if err != nil {
			utils.Logger.Info().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid token",
				"code":  "INVALID_TOKEN",
			})
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("subject", sub)
		}

		c.Next()
	}
}
