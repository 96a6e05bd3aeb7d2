package middlewares

import (
	"errors"
	"slices"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAuth lets logged-in users through and, when roles are given, only
// those holding one of them.
func RequireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CurrentUserID(c) == 0 {
			resp.Unauthorized(c, "Please login first")
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, utils.CurrentRole(c)) {
			resp.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// RoleLookup returns the stored role of a user, or gorm.ErrRecordNotFound.
type RoleLookup func(userID uint) (string, error)

// LiveRole replaces the role carried by the token with the stored one, so a
// role change applies to tokens issued before it. A token whose user is gone
// is treated as anonymous.
func LiveRole(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.CurrentUserID(c)
		if id == 0 {
			c.Next()
			return
		}
		role, err := lookup(id)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.Set(utils.CtxUserID, uint(0))
			c.Set(utils.CtxRole, "")
		case err != nil:
			resp.ServerError(c, err)
			return
		default:
			c.Set(utils.CtxRole, role)
		}
		c.Next()
	}
}
