package controllers

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/ws"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
	Hub *ws.OrderHub
}

func NewOrderController(s *services.OrderService, hub *ws.OrderHub) *OrderController {
	return &OrderController{Svc: s, Hub: hub}
}

// POST /api/orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.DeliveryDetails
	if !bind(c, &req) {
		return
	}
	o, err := h.Svc.Checkout(middlewares.Actor(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Order placed successfully! 🎉", gin.H{"order": o})
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListForActor(middlewares.Actor(c))
	if err != nil {
		fail(c, err)
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:order_id
func (h *OrderController) Detail(c *gin.Context) {
	o, err := h.Svc.Detail(middlewares.Actor(c), c.Param("order_id"), utils.IsAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o})
}

// GET /api/orders/:order_id/ws
func (h *OrderController) Watch(c *gin.Context) {
	o, err := h.Svc.Detail(middlewares.Actor(c), c.Param("order_id"), utils.IsAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	h.Hub.Serve(c, o.OrderID)
}
