package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"pixelmart/internal/adapter/api/middleware"
	"pixelmart/internal/infrastructure/notifier"
	"pixelmart/pkg/errors"
)

// NotifyHandler upgrades the toast-notification socket for the current
// session's page.
type NotifyHandler struct {
	hub *notifier.Hub
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewNotifyHandler(hub *notifier.Hub) *NotifyHandler {
	return &NotifyHandler{
		hub: hub,
	}
}

func (h *NotifyHandler) HandleNotifications(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return errors.Unauthorized("Session required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &notifier.Client{
		SessionID: sess.ID,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}

	h.hub.Register <- client

	go client.ReadPump(h.hub)
	go client.WritePump()

	return nil
}
