package router

import (
	"pixelmart/internal/adapter/api/handler"
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	checkoutHandler := handler.GetCheckoutHandler()

	checkout := e.Group("/v1/checkout")
	checkout.Use(authMiddleware.Authenticate)

	checkout.POST("", checkoutHandler.Checkout)
}
