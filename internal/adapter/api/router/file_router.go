package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/handler"
	"assetdoor/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	fileHandler := handler.GetFileHandler()

	admin := e.Group("/v1/admin/files")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/upload", fileHandler.UploadFile)
	admin.DELETE("/:id", fileHandler.DeleteFile)
}
