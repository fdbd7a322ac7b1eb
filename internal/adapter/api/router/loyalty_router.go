package router

import (
	"pixelmart/internal/adapter/api/handler"
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupLoyaltyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	loyaltyHandler := handler.GetLoyaltyHandler()

	loyalty := e.Group("/v1/loyalty")
	loyalty.Use(authMiddleware.Authenticate)

	loyalty.GET("", loyaltyHandler.Overview)
	loyalty.POST("/rewards/:id/redeem", loyaltyHandler.RedeemReward)
	loyalty.POST("/quests/:id/claim", loyaltyHandler.ClaimQuest)
	loyalty.POST("/packs/:id/open", loyaltyHandler.OpenPack)
	loyalty.POST("/membership/upgrade", loyaltyHandler.UpgradeTier)
}
