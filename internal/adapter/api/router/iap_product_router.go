package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/handler"
	"assetdoor/internal/adapter/api/middleware"
)

func SetupIapProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	iapProductHandler := handler.GetIapProductHandler()

	admin := e.Group("/v1/admin/iap-products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", iapProductHandler.ListIapProducts)
	admin.GET("/linked", iapProductHandler.ListLinkedIapProducts)
	admin.GET("/sync", iapProductHandler.TriggerSync)
	admin.GET("/sync-status", iapProductHandler.GetSyncStatus)
	admin.GET("/:sku", iapProductHandler.GetIapProduct)
}
