package middlewares

import (
	"net/http"
	"strings"

	"github.com/Om-Rawte/AIMenuAssistant/utils"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware validates the table-session token and puts the table and
// participant identity into the request context. An expired token means the
// dining session timed out and the customer has to re-scan the table QR.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseSessionToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "session expired, please re-scan the table QR code"})
			c.Abort()
			return
		}

		c.Set("tableId", claims.TableID)
		c.Set("userId", claims.UserID)
		c.Set("aiProvider", claims.AIProvider)

		c.Next()
	}
}
