package router

import (
	"github.com/labstack/echo/v4"

	"assetdoor/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupCategoryRouter(e, authMiddleware, adminMiddleware)
	SetupIapProductRouter(e, authMiddleware, adminMiddleware)
	SetupPurchaseRouter(e, authMiddleware, adminMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware, adminMiddleware)
}
