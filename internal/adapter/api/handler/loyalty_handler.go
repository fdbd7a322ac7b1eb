package handler

import (
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/usecase"
	"pixelmart/pkg/response"
)

// LoyaltyHandler renders the rewards page tabs and relays the single
// purpose actions (redeem, claim, open, upgrade).
type LoyaltyHandler struct {
	loyaltyUseCase *usecase.LoyaltyUseCase
}

func NewLoyaltyHandler(loyaltyUseCase *usecase.LoyaltyUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUseCase: loyaltyUseCase,
	}
}

func (h *LoyaltyHandler) Overview(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return response.Success(c, h.loyaltyUseCase.GetOverview(c.Request().Context(), sess))
}

func (h *LoyaltyHandler) RedeemReward(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	balance, err := h.loyaltyUseCase.RedeemReward(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, balance)
}

func (h *LoyaltyHandler) ClaimQuest(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	quest, err := h.loyaltyUseCase.ClaimQuest(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, quest)
}

func (h *LoyaltyHandler) OpenPack(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	opening, err := h.loyaltyUseCase.OpenPack(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, opening)
}

func (h *LoyaltyHandler) UpgradeTier(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	membership, err := h.loyaltyUseCase.UpgradeTier(c.Request().Context(), sess)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, membership)
}
