package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cadefab1n/appsevenmenu/handlers"
	"github.com/cadefab1n/appsevenmenu/middleware"
)

// SetupRoutes wires the full route table onto r.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// Liveness checks, no auth and no store access.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Seven Menu SaaS API", "version": "3.0.0"})
	})
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Seven Menu SaaS API", "version": "3.0.0"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Customer-facing menu surface: read menu, create order,
		// post analytics event. Nothing else.
		public.GET("/menu/:slug", h.GetPublicMenu)
		public.POST("/menu/:slug/orders", h.CreatePublicOrder)
		public.POST("/menu/:slug/analytics", h.TrackPublicEvent)

		// Legacy compatibility reads
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/categories", h.GetRestaurantCategories)
		public.GET("/restaurants/:id/products", h.GetRestaurantProducts)
	}

	// ── Authenticated (tenant-scoped) routes ───────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.DB, h.Cfg.Secret()))
	{
		auth.GET("/auth/me", h.Me)

		auth.GET("/restaurant/me", h.GetMyRestaurant)
		auth.PUT("/restaurant/me", h.UpdateMyRestaurant)
		auth.GET("/restaurant/qrcode", h.GetQRCode)

		auth.GET("/categories", h.ListCategories)
		auth.POST("/categories", h.CreateCategory)
		auth.PUT("/categories/reorder", h.ReorderCategories)
		auth.PUT("/categories/:id", h.UpdateCategory)
		auth.DELETE("/categories/:id", h.DeleteCategory)
		auth.POST("/categories/:id/duplicate", h.DuplicateCategory)

		auth.GET("/products", h.ListProducts)
		auth.POST("/products", h.CreateProduct)
		auth.PUT("/products/reorder", h.ReorderProducts)
		auth.PUT("/products/:id", h.UpdateProduct)
		auth.DELETE("/products/:id", h.DeleteProduct)
		auth.PATCH("/products/:id/toggle", h.ToggleProduct)
		auth.POST("/products/:id/duplicate", h.DuplicateProduct)

		auth.GET("/orders", h.ListOrders)
		auth.PUT("/orders/:id/status", h.UpdateOrderStatus)

		auth.GET("/analytics/dashboard", h.GetDashboard)
		auth.GET("/analytics/products", h.GetProductAnalytics)
		auth.GET("/analytics/sources", h.GetSourceAnalytics)
		auth.GET("/analytics/heatmap", h.GetHeatmap)
	}
}
