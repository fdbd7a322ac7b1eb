package router

import (
	"pixelmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupCartRouter initializes cart routes. The cart belongs to the visitor's
// session, so no sign-in is required until checkout.
func SetupCartRouter(e *echo.Echo) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.GET("", cartHandler.GetCart)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.POST("/toast/dismiss", cartHandler.DismissToast)
}
