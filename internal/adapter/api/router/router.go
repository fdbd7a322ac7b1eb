package router

import (
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware, rateLimitMiddleware)
	SetupStoreRouter(e)
	SetupCartRouter(e)
	SetupCheckoutRouter(e, authMiddleware)
	SetupPaymentRouter(e, rateLimitMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupLoyaltyRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupNotifyRouter(e)
	SetupHealthRouter(e)
}
