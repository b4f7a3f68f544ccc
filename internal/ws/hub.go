package ws

import (
	"log/slog"

	"tally-service/internal/models"
)

// Hub fans change events out to connected dashboard clients. Submission
// events are scoped: agents only receive their own, admins and superadmins
// receive everything. Incident events go to every authenticated client.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan models.Event
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan models.Event, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}

		case event := <-h.Broadcast:
			for client := range h.Clients {
				if !client.wants(event) {
					continue
				}
				select {
				case client.Send <- event:
				default:
					// Slow consumer: drop the connection rather than block
					// the hub loop.
					slog.Warn("dropping slow websocket client", "user", client.UserID)
					delete(h.Clients, client)
					close(client.Send)
				}
			}

		case <-h.done:
			for client := range h.Clients {
				delete(h.Clients, client)
				close(client.Send)
			}
			return
		}
	}
}

// Stop shuts the hub down and releases every client.
func (h *Hub) Stop() {
	close(h.done)
}
