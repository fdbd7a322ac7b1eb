package router

import (
	"pixelmart/internal/adapter/api/handler"
	"pixelmart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register, rateLimitMiddleware.Limit("register"))
	e.POST("/v1/auth/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	e.POST("/v1/auth/logout", authHandler.Logout)

	// Protected routes
	profile := e.Group("/v1/users")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("/me", authHandler.GetProfile)
	profile.PUT("/me", authHandler.UpdateProfile)
}
