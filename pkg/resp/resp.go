// Package resp writes the {"success": ..., "message": ...} JSON envelope the
// web client expects. Payload keys sit next to success, not under a data key.
package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func body(ok bool, msg string, data gin.H) gin.H {
	out := gin.H{"success": ok}
	if msg != "" {
		out["message"] = msg
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, body(true, "", data))
}

func Message(c *gin.Context, msg string, data gin.H) {
	c.JSON(http.StatusOK, body(true, msg, data))
}

func Created(c *gin.Context, msg string, data gin.H) {
	c.JSON(http.StatusCreated, body(true, msg, data))
}

func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, body(false, msg, nil))
}

func BadRequest(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context, msg string) { Error(c, http.StatusUnauthorized, msg) }
func Forbidden(c *gin.Context, msg string)    { Error(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)     { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)     { Error(c, http.StatusConflict, msg) }

// ServerError records err on the context for the request logger and returns
// a generic message.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "Something went wrong")
}
