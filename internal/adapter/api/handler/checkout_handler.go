package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/domain/entity"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// Billing fields are validated here, before anything goes over the wire.
type checkoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=8,numeric"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Notes   string `json:"notes"`
}

// Checkout creates the order and payment link and tells the page where to
// redirect the whole window. On any failure the cart is left as it was.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	result, err := h.checkoutUseCase.Checkout(c.Request().Context(), sess, entity.BillingDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Notes:   req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, result)
}
