package controllers

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type CartController struct {
	Svc   *services.CartService
	Rules services.RulesSource
}

func NewCartController(s *services.CartService, rules services.RulesSource) *CartController {
	return &CartController{Svc: s, Rules: rules}
}

// cartBody is the items plus a price preview without any promo.
func (h *CartController) cartBody(c *gin.Context, items []entity.LineItem) (gin.H, bool) {
	rules, err := h.Rules.Rules()
	if err != nil {
		resp.ServerError(c, err)
		return nil, false
	}
	lines := make([]pricing.Line, 0, len(items))
	count := 0
	for _, it := range items {
		lines = append(lines, pricing.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
		count += it.Quantity
	}
	if items == nil {
		items = []entity.LineItem{}
	}
	return gin.H{
		"items":  items,
		"count":  count,
		"totals": rules.ComputeTotals(lines, decimal.Zero),
	}, true
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	items, err := h.Svc.Get(middlewares.Actor(c))
	if err != nil {
		fail(c, err)
		return
	}
	if body, ok := h.cartBody(c, items); ok {
		resp.OK(c, body)
	}
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req CartItemRequest
	if !bind(c, &req) {
		return
	}
	items, err := h.Svc.AddFromCatalog(middlewares.Actor(c), req.ID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	name := "Item"
	for _, it := range items {
		if it.ItemID == req.ID {
			name = it.Name
		}
	}
	if body, ok := h.cartBody(c, items); ok {
		resp.Message(c, name+" added to cart!", body)
	}
}

// PUT /api/cart/update
func (h *CartController) Update(c *gin.Context) {
	var req CartItemRequest
	if !bind(c, &req) {
		return
	}
	items, err := h.Svc.SetQuantity(middlewares.Actor(c), req.ID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	if body, ok := h.cartBody(c, items); ok {
		resp.OK(c, body)
	}
}

// DELETE /api/cart/remove/:item_id
func (h *CartController) Remove(c *gin.Context) {
	items, err := h.Svc.Remove(middlewares.Actor(c), c.Param("item_id"))
	if err != nil {
		fail(c, err)
		return
	}
	if body, ok := h.cartBody(c, items); ok {
		resp.Message(c, "Item removed", body)
	}
}

// DELETE /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(middlewares.Actor(c)); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Cart cleared", nil)
}
