package utils

import "github.com/gin-gonic/gin"

func CurrentTableID(c *gin.Context) uint {
	v, _ := c.Get("tableId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentAIProvider(c *gin.Context) string {
	if v, ok := c.Get("aiProvider"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
