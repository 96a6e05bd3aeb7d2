package controllers

import (
	"errors"
	"strconv"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail writes the response for a service error. Anything that is not a known
// sentinel is a 500 and only reaches the log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "Cart is empty")
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, services.Detail(err, services.ErrValidation))
	case errors.Is(err, services.ErrUnauthorized):
		resp.Unauthorized(c, services.Detail(err, services.ErrUnauthorized))
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, services.Detail(err, services.ErrForbidden))
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, services.Detail(err, services.ErrNotFound))
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "Not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, services.Detail(err, services.ErrConflict))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		resp.Conflict(c, "Already exists")
	default:
		resp.ServerError(c, err)
	}
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return n
}
