package controllers

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/gin-gonic/gin"
)

type OfferController struct {
	Svc   *services.PromotionService
	Carts *services.CartService
}

func NewOfferController(s *services.PromotionService, carts *services.CartService) *OfferController {
	return &OfferController{Svc: s, Carts: carts}
}

// GET /api/offers
func (h *OfferController) List(c *gin.Context) {
	offers, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	if offers == nil {
		offers = []entity.Offer{}
	}
	resp.OK(c, gin.H{"offers": offers})
}

// POST /api/offers/validate
// Quotes the code against the caller's current cart.
func (h *OfferController) Validate(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if !bind(c, &req) {
		return
	}
	items, err := h.Carts.Get(middlewares.Actor(c))
	if err != nil {
		fail(c, err)
		return
	}
	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}

	q, err := h.Svc.Validate(req.Code, pricing.Subtotal(lines))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Promo applied: "+q.Title, gin.H{
		"code":            q.Code,
		"discount_type":   q.Kind,
		"discount_value":  q.Value,
		"discount_amount": q.DiscountAmount,
		"label":           q.Title,
	})
}
