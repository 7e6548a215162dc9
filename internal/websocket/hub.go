package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"lionscars-service/internal/service/catalog"

	"go.uber.org/zap"
)

// Hub pushes catalog mutation events to connected seller consoles. The feed
// is one-way; clients only listen.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan catalog.Event

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan catalog.Event, 64),
		logger:     logger,
	}
}

// Notify implements catalog.Notifier. Events are dropped rather than
// blocking a catalog mutation when the hub is saturated.
func (h *Hub) Notify(evt catalog.Event) {
	select {
	case h.broadcast <- evt:
	default:
		h.logger.Warn("event feed saturated, dropping event", zap.String("type", evt.Type))
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("console connected", zap.String("username", client.username))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			data, err := json.Marshal(evt)
			if err != nil {
				h.logger.Error("failed to marshal event", zap.Error(err))
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer; drop this event for it.
				}
			}
			h.mu.RUnlock()

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}
