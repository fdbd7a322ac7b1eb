package router

import (
	"pixelmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupStoreRouter(e *echo.Echo) {
	storeHandler := handler.GetStoreHandler()

	products := e.Group("/v1/products")
	products.GET("", storeHandler.ListProducts)
	products.GET("/:id", storeHandler.GetProduct)
}
