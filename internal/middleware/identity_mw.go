package middleware

import (
	"strings"

	"lifekey_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const AuthUserKey = "authUser"

// IdentityMiddleware resolves the caller from an "Authorization: Bearer <token>"
// header and stores the user ID in the context. Requests without a usable
// token pass through anonymously; nothing is enforced here.
func IdentityMiddleware(tokens utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		userID, err := tokens.ResolveUserID(parts[1])
		if err == nil {
			c.Set(AuthUserKey, userID)
		}

		c.Next()
	}
}

// AuthUserID returns the resolved caller, if any
func AuthUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(AuthUserKey)
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	return userID, ok && userID != ""
}
