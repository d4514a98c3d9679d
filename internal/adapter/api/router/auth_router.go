package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/handler"
	"assetdoor/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)

	auth.POST("/sync", authHandler.SyncProfile)
	auth.GET("/me", authHandler.Me)
}
