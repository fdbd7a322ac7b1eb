package router

import (
	"pixelmart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupNotifyRouter sets up the toast-notification WebSocket route. The
// session cookie identifies the client, so no auth middleware here.
func SetupNotifyRouter(e *echo.Echo) {
	notifyHandler := handler.GetNotifyHandler()

	e.GET("/ws/notifications", notifyHandler.HandleNotifications)
}
