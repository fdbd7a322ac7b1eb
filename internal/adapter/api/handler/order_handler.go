package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	orders, err := h.orderUseCase.ListOrders(c.Request().Context(), sess)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.orderUseCase.CancelOrder(c.Request().Context(), sess, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, map[string]string{"status": "cancelled"})
}
