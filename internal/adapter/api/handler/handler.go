package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/infrastructure/notifier"
	"pixelmart/internal/infrastructure/upstream"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/response"
)

var (
	authHandler     *AuthHandler
	storeHandler    *StoreHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	paymentHandler  *PaymentHandler
	orderHandler    *OrderHandler
	adminHandler    *AdminHandler
	loyaltyHandler  *LoyaltyHandler
	notifyHandler   *NotifyHandler

	authUseCase *usecase.AuthUseCase
)

func Setup(
	authUC *usecase.AuthUseCase,
	catalogUC *usecase.CatalogUseCase,
	cartUC *usecase.CartUseCase,
	checkoutUC *usecase.CheckoutUseCase,
	loyaltyUC *usecase.LoyaltyUseCase,
	adminUC *usecase.AdminUseCase,
	orderUC *usecase.OrderUseCase,
	hub *notifier.Hub,
) {
	authUseCase = authUC

	authHandler = NewAuthHandler(authUC)
	storeHandler = NewStoreHandler(catalogUC)
	cartHandler = NewCartHandler(cartUC, catalogUC)
	checkoutHandler = NewCheckoutHandler(checkoutUC)
	paymentHandler = NewPaymentHandler(checkoutUC)
	orderHandler = NewOrderHandler(orderUC)
	adminHandler = NewAdminHandler(adminUC, catalogUC)
	loyaltyHandler = NewLoyaltyHandler(loyaltyUC)
	notifyHandler = NewNotifyHandler(hub)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetLoyaltyHandler() *LoyaltyHandler {
	return loyaltyHandler
}

func GetNotifyHandler() *NotifyHandler {
	return notifyHandler
}

// respondError is the shared error path. An expired upstream token clears
// the visitor's signed-in state and points them at /login with the current
// page remembered; everything else renders in place.
func respondError(c echo.Context, err error) error {
	if errors.Is(err, upstream.ErrSessionExpired) {
		if sess := middleware.CurrentSession(c); sess != nil && authUseCase != nil {
			_ = authUseCase.ForceLogout(c.Request().Context(), sess, c.Request().URL.RequestURI())
		}
		return c.JSON(http.StatusUnauthorized, response.Response{
			Success:   false,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Error: &response.ErrorInfo{
				Code:    "SESSION_EXPIRED",
				Message: "Your session has expired. Please log in again.",
				Details: map[string]string{"redirect": "/login"},
			},
		})
	}

	return response.Error(c, err)
}
