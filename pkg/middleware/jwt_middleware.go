package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "aitrip/pkg/memcache"
	"aitrip/pkg/utils"
)

const (
	ContextUserID = "user_id"
	ContextToken  = "access_token"
	ContextClaims = "claims"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer, denylist mem.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if denylist.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextToken, tokenString)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
