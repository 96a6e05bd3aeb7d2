package controllers

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?category=
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// GET /api/menu/:item_id
func (h *MenuController) Get(c *gin.Context) {
	m, err := h.Svc.Get(c.Param("item_id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"item": m})
}

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants?category=
func (h *RestaurantController) List(c *gin.Context) {
	list, err := h.Svc.List(c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []entity.Restaurant{}
	}
	resp.OK(c, gin.H{"restaurants": list, "count": len(list)})
}

// GET /api/restaurants/:id
// The id may be the numeric id or the restaurant name.
func (h *RestaurantController) Get(c *gin.Context) {
	r, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": r})
}
