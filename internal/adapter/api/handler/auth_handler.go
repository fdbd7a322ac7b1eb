package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/infrastructure/upstream"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/errors"
	"pixelmart/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=8"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=8"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	result, err := h.authUseCase.Register(c.Request().Context(), sess, usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	result, err := h.authUseCase.Login(c.Request().Context(), sess, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.authUseCase.Logout(c.Request().Context(), sess); err != nil {
		return respondError(c, err)
	}

	return response.Success(c, map[string]string{"redirect": "/"})
}

func (h *AuthHandler) GetProfile(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	user, err := h.authUseCase.GetProfile(c.Request().Context(), sess)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sess := middleware.CurrentSession(c)
	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), sess, upstream.UpdateProfileRequest{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, user)
}
