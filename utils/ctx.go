package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
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

func CurrentRoles(c *gin.Context) []string {
	if v, ok := c.Get("roles"); ok {
		if rs, ok := v.([]string); ok {
			return rs
		}
	}
	return nil
}

func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func HasRole(c *gin.Context, name string) bool {
	for _, r := range CurrentRoles(c) {
		if r == name {
			return true
		}
	}
	return false
}
