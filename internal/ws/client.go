package ws

import (
	"strings"

	"github.com/gorilla/websocket"

	"tally-service/internal/models"
)

// Client is one websocket subscriber.
type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
	Send   chan models.Event
}

func NewClient(userID, role string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		Send:   make(chan models.Event, 16),
	}
}

// wants applies the role scoping rule for one event.
func (c *Client) wants(event models.Event) bool {
	if strings.HasPrefix(event.Type, "submission.") && c.Role == models.RoleAgent {
		return event.AgentID == c.UserID
	}
	return true
}

// ReadPump discards inbound frames; its job is detecting disconnects so the
// subscription is released deterministically.
func (c *Client) ReadPump(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
