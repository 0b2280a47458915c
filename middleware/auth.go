package middleware

import (
	"net/http"
	"strings"

	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores the verified phone number
// in the request context for handlers to use as the booking owner.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		phone, err := utils.PhoneFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("phone", phone)
		c.Next()
	}
}
