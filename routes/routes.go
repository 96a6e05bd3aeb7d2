package routes

import (
	"net/http"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/configs"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/controllers"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/mailer"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/ws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators the routes are built from.
type Deps struct {
	DB     *gorm.DB
	Config *configs.Config
	Log    *zap.Logger
	Mailer mailer.Sender
	Hub    *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	cartRepo := repository.NewCartRepository(d.DB)
	menuRepo := repository.NewMenuRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	restRepo := repository.NewRestaurantRepository(d.DB)

	// Services
	settingsSvc := services.NewSettingsService(repository.NewSettingsRepository(d.DB))
	cartSvc := services.NewCartService(d.DB, cartRepo, menuRepo, d.Log)
	promoSvc := services.NewPromotionService(repository.NewOfferRepository(d.DB), settingsSvc, d.Log)
	orderSvc := services.NewOrderService(d.DB, orderRepo, cartRepo, userRepo, promoSvc, settingsSvc, d.Mailer, d.Log)
	orderSvc.Notifier = d.Hub
	authSvc := services.NewAuthService(d.DB, userRepo, repository.NewResetTokenRepository(d.DB), cartSvc, d.Mailer, d.Config.UploadDir, d.Log)
	menuSvc := services.NewMenuService(menuRepo)
	restSvc := services.NewRestaurantService(restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc, settingsSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, d.Hub)
	offerCtrl := controllers.NewOfferController(promoSvc, cartSvc)
	adminCtrl := &controllers.AdminController{
		Admin:       services.NewAdminService(orderRepo, userRepo, menuRepo, restRepo, d.Log),
		Orders:      orderSvc,
		Menu:        menuSvc,
		Restaurants: restSvc,
		Offers:      promoSvc,
		Settings:    settingsSvc,
	}

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/profile", authCtrl.Profile)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}
	aAuth := a.Group("", middlewares.RequireAuth())
	{
		aAuth.PUT("/profile", authCtrl.UpdateProfile)
		aAuth.POST("/avatar", authCtrl.UploadAvatar)
	}

	// Catalog (public)
	api.GET("/menu", menuCtrl.List)
	api.GET("/menu/:item_id", menuCtrl.Get)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Get)

	// Cart and orders work for guests too
	cart := api.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.PUT("/update", cartCtrl.Update)
		cart.DELETE("/remove/:item_id", cartCtrl.Remove)
		cart.DELETE("/clear", cartCtrl.Clear)
	}
	orders := api.Group("/orders")
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.List)
		orders.GET("/:order_id", orderCtrl.Detail)
		orders.GET("/:order_id/ws", orderCtrl.Watch)
	}

	api.GET("/offers", offerCtrl.List)
	api.POST("/offers/validate", offerCtrl.Validate)

	// Admin (admin only)
	storedRole := func(id uint) (string, error) {
		u, err := userRepo.FindByID(id)
		if err != nil {
			return "", err
		}
		return u.Role, nil
	}
	admin := api.Group("/admin", middlewares.LiveRole(storedRole), middlewares.RequireAuth(entity.RoleAdmin))
	{
		admin.GET("/stats", adminCtrl.Stats)
		admin.GET("/analytics", adminCtrl.Analytics)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PUT("/orders/:order_id", adminCtrl.UpdateOrderStatus)

		admin.GET("/menu", adminCtrl.ListMenu)
		admin.POST("/menu", adminCtrl.CreateMenuItem)
		admin.PUT("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)

		admin.GET("/restaurants", adminCtrl.ListRestaurants)
		admin.POST("/restaurants", adminCtrl.CreateRestaurant)
		admin.PUT("/restaurants/:id", adminCtrl.UpdateRestaurant)
		admin.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)

		admin.GET("/offers", adminCtrl.ListOffers)
		admin.POST("/offers", adminCtrl.CreateOffer)
		admin.PUT("/offers/:id", adminCtrl.UpdateOffer)
		admin.DELETE("/offers/:id", adminCtrl.DeleteOffer)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PUT("/users/:id/role", adminCtrl.UpdateUserRole)

		admin.GET("/settings", adminCtrl.GetSettings)
		admin.PUT("/settings", adminCtrl.UpdateSettings)
	}
}
