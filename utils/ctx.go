package utils

import "github.com/gin-gonic/gin"

// Keys set by the session middleware.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

func IsAdmin(c *gin.Context) bool { return CurrentRole(c) == "admin" }
