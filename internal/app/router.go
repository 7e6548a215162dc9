// internal/app/router.go
package app

import (
	authHandler "lionscars-service/internal/handlers/auth"
	lookupHandler "lionscars-service/internal/handlers/lookup"
	mediaHandler "lionscars-service/internal/handlers/media"
	vehicleHandler "lionscars-service/internal/handlers/vehicle"
	wsHandler "lionscars-service/internal/handlers/ws"
	"lionscars-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	VehicleHandler *vehicleHandler.VehicleHandler
	LookupHandler  *lookupHandler.LookupHandler
	UploadHandler  *mediaHandler.UploadHandler
	WSHandler      *wsHandler.WSHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Auth ====================
	api.POST("/login", h.AuthHandler.Login)
	r.POST("/login", h.AuthHandler.Login) // the console posts here without the prefix

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
	}

	// ==================== WebSocket ====================
	ws := r.Group("/ws")
	ws.Use(h.AuthMiddleware.Auth())
	{
		ws.GET("", h.WSHandler.HandleConnection)
	}

	// ==================== Catalog (public) ====================
	api.GET("/autos", h.VehicleHandler.List)
	api.GET("/autos/:id", h.VehicleHandler.Get)
	api.POST("/autos/:id/view", h.VehicleHandler.RecordView)
	api.POST("/autos/:id/lead", h.VehicleHandler.RecordLead)

	// ==================== Catalog (sellers) ====================
	autos := api.Group("/autos")
	autos.Use(h.AuthMiddleware.Auth())
	{
		autos.POST("", h.VehicleHandler.Create)
		autos.PUT("/:id", h.VehicleHandler.Update)
		autos.DELETE("/:id", h.VehicleHandler.Delete)
		autos.POST("/:id/hotspots", h.VehicleHandler.AddHotspot)
		autos.DELETE("/:id/hotspots/:hotspot_id", h.VehicleHandler.DeleteHotspot)
		autos.DELETE("/:id/images/:index", h.VehicleHandler.RemoveImage)
	}

	// ==================== Dashboard ====================
	dashboard := api.Group("/dashboard")
	dashboard.Use(h.AuthMiddleware.Auth())
	{
		dashboard.GET("/stats", h.VehicleHandler.Dashboard)
	}

	// ==================== Uploads ====================
	uploads := api.Group("/upload")
	uploads.Use(h.AuthMiddleware.Auth())
	{
		uploads.POST("", h.UploadHandler.Upload)
	}

	// ==================== Lookups ====================
	api.GET("/brands", h.LookupHandler.ListBrands)
	api.GET("/colors", h.LookupHandler.ListColors)

	lookups := api.Group("")
	lookups.Use(h.AuthMiddleware.Auth())
	{
		lookups.POST("/brands", h.LookupHandler.CreateBrand)
		lookups.DELETE("/brands/:id", h.LookupHandler.DeleteBrand)
		lookups.POST("/colors", h.LookupHandler.CreateColor)
		lookups.DELETE("/colors/:id", h.LookupHandler.DeleteColor)
	}

	// ==================== ADMIN ROUTES ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/users", h.AuthHandler.ListUsers)
		admin.POST("/users", h.AuthHandler.CreateUser)
		admin.DELETE("/users/:id", h.AuthHandler.DeleteUser)

		admin.POST("/metrics/simulate", h.VehicleHandler.SimulateMetrics)
		admin.POST("/metrics/reset", h.VehicleHandler.ResetMetrics)
	}
}
