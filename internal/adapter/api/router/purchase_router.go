package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/handler"
	"assetdoor/internal/adapter/api/middleware"
)

func SetupPurchaseRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	purchaseHandler := handler.GetPurchaseHandler()

	admin := e.Group("/v1/admin/purchases")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", purchaseHandler.ListPurchases)
	admin.GET("/stats", purchaseHandler.GetPurchaseStats)
	admin.GET("/:id", purchaseHandler.GetPurchase)
	admin.PUT("/:id", purchaseHandler.UpdatePurchase)

	dashboard := e.Group("/v1/admin/dashboard")
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.Use(adminMiddleware.AdminOnly)

	dashboard.GET("/stats", purchaseHandler.GetDashboardStats)
}
