package controllers

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/resp"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/gin-gonic/gin"
)

// AdminController serves /api/admin. Every route requires the admin role.
type AdminController struct {
	Admin       *services.AdminService
	Orders      *services.OrderService
	Menu        *services.MenuService
	Restaurants *services.RestaurantService
	Offers      *services.PromotionService
	Settings    *services.SettingsService
}

// GET /api/admin/stats
func (h *AdminController) Stats(c *gin.Context) {
	st, err := h.Admin.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	recent := st.RecentOrders
	if recent == nil {
		recent = []entity.Order{}
	}
	resp.OK(c, gin.H{"stats": st, "recent_orders": recent})
}

// GET /api/admin/analytics
func (h *AdminController) Analytics(c *gin.Context) {
	a, err := h.Admin.Analytics()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"daily_data":       a.DailyData,
		"status_breakdown": a.StatusBreakdown,
		"top_items":        a.TopItems,
	})
}

// ----- orders -----

// GET /api/admin/orders?page=&per_page=&status=&search=
func (h *AdminController) ListOrders(c *gin.Context) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "per_page", 20),
	}
	orders, total, err := h.Admin.ListOrders(f)
	if err != nil {
		fail(c, err)
		return
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	resp.OK(c, gin.H{"orders": orders, "total": total, "page": max(f.Page, 1)})
}

// PUT /api/admin/orders/:order_id
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status"`
	}
	if !bind(c, &req) {
		return
	}
	o, err := h.Orders.UpdateStatus(c.Param("order_id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Order status updated to "+string(o.Status), gin.H{"order": o})
}

// ----- menu -----

// GET /api/admin/menu
func (h *AdminController) ListMenu(c *gin.Context) {
	items, err := h.Menu.List(c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// POST /api/admin/menu
func (h *AdminController) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if !bind(c, &req) {
		return
	}
	m, err := h.Menu.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Menu item created", gin.H{"item": m})
}

// PUT /api/admin/menu/:id
func (h *AdminController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.MenuItemIn
	if !bind(c, &req) {
		return
	}
	m, err := h.Menu.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Menu item updated", gin.H{"item": m})
}

// DELETE /api/admin/menu/:id
func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Menu.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Menu item deleted", nil)
}

// ----- restaurants -----

// GET /api/admin/restaurants
func (h *AdminController) ListRestaurants(c *gin.Context) {
	list, err := h.Restaurants.List("")
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []entity.Restaurant{}
	}
	resp.OK(c, gin.H{"restaurants": list, "count": len(list)})
}

// POST /api/admin/restaurants
func (h *AdminController) CreateRestaurant(c *gin.Context) {
	var req services.RestaurantIn
	if !bind(c, &req) {
		return
	}
	r, err := h.Restaurants.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Restaurant created", gin.H{"restaurant": r})
}

// PUT /api/admin/restaurants/:id
func (h *AdminController) UpdateRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.RestaurantIn
	if !bind(c, &req) {
		return
	}
	r, err := h.Restaurants.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Restaurant updated", gin.H{"restaurant": r})
}

// DELETE /api/admin/restaurants/:id
func (h *AdminController) DeleteRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Restaurants.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Restaurant deleted", nil)
}

// ----- offers -----

// GET /api/admin/offers
func (h *AdminController) ListOffers(c *gin.Context) {
	offers, err := h.Offers.List()
	if err != nil {
		fail(c, err)
		return
	}
	if offers == nil {
		offers = []entity.Offer{}
	}
	resp.OK(c, gin.H{"offers": offers, "count": len(offers)})
}

// POST /api/admin/offers
func (h *AdminController) CreateOffer(c *gin.Context) {
	var req services.OfferIn
	if !bind(c, &req) {
		return
	}
	o, err := h.Offers.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, "Offer created", gin.H{"offer": o})
}

// PUT /api/admin/offers/:id
func (h *AdminController) UpdateOffer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.OfferIn
	if !bind(c, &req) {
		return
	}
	o, err := h.Offers.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Offer updated", gin.H{"offer": o})
}

// DELETE /api/admin/offers/:id
func (h *AdminController) DeleteOffer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Offers.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Offer deleted", nil)
}

// ----- users -----

// GET /api/admin/users?page=&per_page=&search=
func (h *AdminController) ListUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	users, total, err := h.Admin.ListUsers(c.Query("search"), page, queryInt(c, "per_page", 20))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users, "total": total, "page": max(page, 1)})
}

// PUT /api/admin/users/:id/role
func (h *AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if !bind(c, &req) {
		return
	}
	u, err := h.Admin.UpdateUserRole(utils.CurrentUserID(c), id, req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "User role updated", gin.H{"user": u})
}

// ----- settings -----

// GET /api/admin/settings
func (h *AdminController) GetSettings(c *gin.Context) {
	st, err := h.Settings.Get()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"settings": st})
}

// PUT /api/admin/settings
func (h *AdminController) UpdateSettings(c *gin.Context) {
	var req services.SettingsIn
	if !bind(c, &req) {
		return
	}
	st, err := h.Settings.Update(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Settings saved", gin.H{"settings": st})
}
