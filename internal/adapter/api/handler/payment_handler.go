package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/domain/entity"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/response"
)

// PaymentHandler serves the two provider-return pages: the success URL
// with its payment_id query parameter, and the cancel/fail URL.
type PaymentHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewPaymentHandler(checkoutUseCase *usecase.CheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// PaymentSuccess verifies the returned payment. Missing payment_id or a
// failed verification renders the failure state with a readable reason;
// verification is never called without an ID.
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	paymentID := c.QueryParam("payment_id")

	result, err := h.checkoutUseCase.ConfirmReturn(c.Request().Context(), sess, paymentID)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, result)
}

// PaymentFailure is the cancel/fail return. The cart is untouched so the
// visitor can retry without re-adding items.
func (h *PaymentHandler) PaymentFailure(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	return response.Success(c, map[string]interface{}{
		"status":     entity.PaymentStatusFailure,
		"reason":     "The payment was cancelled or declined",
		"item_count": sess.ItemCount(),
		"actions": map[string]string{
			"retry": "/cart",
			"store": "/",
		},
	})
}
