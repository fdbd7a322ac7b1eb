package notifier

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"pixelmart/internal/domain/entity"
	"pixelmart/pkg/logger"
)

// Client represents a WebSocket connection subscribed to cart events for
// one visitor session.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub pushes toast events to the page that owns the session. Delivery is
// best effort: the cart never waits for a socket.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's main loop in a goroutine
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if old, ok := h.clients[client.SessionID]; ok {
					close(old.Send)
				}
				h.clients[client.SessionID] = client
				h.mutex.Unlock()
				logger.Debug("Notifier client registered: %s", client.SessionID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if current, ok := h.clients[client.SessionID]; ok && current == client {
					delete(h.clients, client.SessionID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Notifier client unregistered: %s", client.SessionID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

type toastEvent struct {
	Type  string            `json:"type"`
	Toast *entity.CartToast `json:"toast,omitempty"`
}

// ToastShown announces the just-added line item to the session's page.
func (h *Hub) ToastShown(sessionID string, toast *entity.CartToast) {
	h.send(sessionID, toastEvent{Type: "toast_shown", Toast: toast})
}

// ToastDismissed tells the page to drop the current toast.
func (h *Hub) ToastDismissed(sessionID string) {
	h.send(sessionID, toastEvent{Type: "toast_dismissed"})
}

func (h *Hub) send(sessionID string, event toastEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn("Failed to marshal toast event: %v", err)
		return
	}

	h.mutex.RLock()
	client, ok := h.clients[sessionID]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- data:
	default:
		// Slow client, drop it rather than block the cart
		h.mutex.Lock()
		if current, exists := h.clients[sessionID]; exists && current == client {
			delete(h.clients, sessionID)
			close(client.Send)
		}
		h.mutex.Unlock()
	}
}
