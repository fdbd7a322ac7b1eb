package router

import (
	"pixelmart/internal/adapter/api/handler"
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/cancel", orderHandler.CancelOrder)
}
