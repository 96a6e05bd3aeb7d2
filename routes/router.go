package routes

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/middlewares"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/logger"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the global middleware stack and all routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Gin(d.Log))
	r.Use(middlewares.CORSMiddleware(d.Config.CORSOrigins))
	r.Use(middlewares.SessionMiddleware(d.Config))

	// Serve uploaded avatars
	r.Static("/uploads", d.Config.UploadDir)

	RegisterRoutes(r, d)
	return r
}
