package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nelsonbong/Tien-Hiong-Backend/auth"
)

// ValidateToken guards cart routes. The storefront sends the token in the
// auth-token header rather than Authorization.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("auth-token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Please authenticate using a valid token"})
		c.Abort()
		return
	}

	userID, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Please authenticate using a valid token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}
