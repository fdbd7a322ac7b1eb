package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/domain/entity"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/response"
)

type CartHandler struct {
	cartUseCase    *usecase.CartUseCase
	catalogUseCase *usecase.CatalogUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase, catalogUseCase *usecase.CatalogUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase:    cartUseCase,
		catalogUseCase: catalogUseCase,
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart page view model with its derived totals.
type cartView struct {
	Items      []entity.CartItem `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
	Toast      *entity.CartToast `json:"toast,omitempty"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return response.Success(c, cartView{
		Items:      sess.Cart,
		ItemCount:  sess.ItemCount(),
		TotalPrice: sess.TotalPrice(),
		Toast:      sess.LastToast,
	})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	// The cart stores full product snapshots, so look the product up once
	// at add time.
	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	if err := h.cartUseCase.AddItem(c.Request().Context(), sess, *product, req.Quantity); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, cartView{
		Items:      sess.Cart,
		ItemCount:  sess.ItemCount(),
		TotalPrice: sess.TotalPrice(),
		Toast:      sess.LastToast,
	})
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}

	sess := middleware.CurrentSession(c)
	if err := h.cartUseCase.UpdateQuantity(c.Request().Context(), sess, c.Param("id"), req.Quantity); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, cartView{
		Items:      sess.Cart,
		ItemCount:  sess.ItemCount(),
		TotalPrice: sess.TotalPrice(),
	})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.cartUseCase.RemoveItem(c.Request().Context(), sess, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, cartView{
		Items:      sess.Cart,
		ItemCount:  sess.ItemCount(),
		TotalPrice: sess.TotalPrice(),
	})
}

func (h *CartHandler) Clear(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.cartUseCase.Clear(c.Request().Context(), sess); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, cartView{
		Items:      sess.Cart,
		ItemCount:  0,
		TotalPrice: 0,
	})
}

func (h *CartHandler) DismissToast(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.cartUseCase.DismissToast(c.Request().Context(), sess); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, map[string]bool{"dismissed": true})
}
