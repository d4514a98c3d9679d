package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/handler"
	"assetdoor/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public catalog routes
	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/products/search", productHandler.SearchProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", productHandler.CreateProduct)
	admin.PUT("/:id", productHandler.UpdateProduct)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
