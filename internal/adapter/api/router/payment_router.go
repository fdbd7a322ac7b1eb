package router

import (
	"pixelmart/internal/adapter/api/handler"
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupPaymentRouter initializes the return legs of the hosted payment page.
// Flouci redirects the shopper's browser here, so these are plain GETs.
func SetupPaymentRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	e.GET("/payment/success", paymentHandler.PaymentSuccess, rateLimitMiddleware.Limit("verify_payment"))
	e.GET("/payment/failure", paymentHandler.PaymentFailure)
}
