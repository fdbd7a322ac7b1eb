package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/usecase"
	"pixelmart/pkg/response"
	"pixelmart/pkg/utils"
)

// StoreHandler serves the public browsing pages: listing with search and
// category filter, and the product detail view.
type StoreHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewStoreHandler(catalogUseCase *usecase.CatalogUseCase) *StoreHandler {
	return &StoreHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *StoreHandler) ListProducts(c echo.Context) error {
	query := c.QueryParam("q")
	category := c.QueryParam("category")

	products, err := h.catalogUseCase.ListProducts(c.Request().Context(), query, category)
	if err != nil {
		return respondError(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := int64(len(products))

	start := params.Offset
	if start > len(products) {
		start = len(products)
	}
	end := start + params.PageSize
	if end > len(products) {
		end = len(products)
	}

	return response.Paginated(c, products[start:end], total, params.Page, params.PageSize)
}

func (h *StoreHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, product)
}
