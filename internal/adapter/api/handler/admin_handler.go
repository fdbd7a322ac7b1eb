package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/infrastructure/upstream"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/response"
)

type AdminHandler struct {
	adminUseCase   *usecase.AdminUseCase
	catalogUseCase *usecase.CatalogUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, catalogUseCase *usecase.CatalogUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		catalogUseCase: catalogUseCase,
	}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,oneof=game software gift-card"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Stock       int     `json:"stock" validate:"min=0"`
}

type adminUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return response.Success(c, h.adminUseCase.GetDashboard(c.Request().Context(), sess))
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	users, err := h.adminUseCase.ListUsers(c.Request().Context(), sess)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, users)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	user, err := h.adminUseCase.UpdateUser(c.Request().Context(), sess, c.Param("id"), upstream.UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), sess, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), sess.Token, upstream.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, product)
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	product, err := h.catalogUseCase.UpdateProduct(c.Request().Context(), sess.Token, c.Param("id"), upstream.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Stock:       req.Stock,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, product)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.catalogUseCase.DeleteProduct(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

// ImportProducts forwards the uploaded CSV and relays the server's report
// of imported/skipped rows and per-row errors.
func (h *AdminHandler) ImportProducts(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, errors.BadRequest("A CSV file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, errors.Internal("Failed to read upload", err))
	}
	defer file.Close()

	sess := middleware.CurrentSession(c)
	result, err := h.catalogUseCase.ImportCSV(c.Request().Context(), sess.Token, fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, result)
}
