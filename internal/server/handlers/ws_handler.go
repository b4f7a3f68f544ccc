package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tally-service/internal/server/middleware"
	"tally-service/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WsHandler struct {
	hub *ws.Hub
}

func NewWsHandler(hub *ws.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Subscribe upgrades the connection and registers the caller with the hub.
// The client's role decides which events it receives; the subscription is
// released when the socket closes.
func (h *WsHandler) Subscribe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := ws.NewClient(user.ID, user.Role, conn)
	h.hub.Register <- client

	go client.WritePump()
	client.ReadPump(h.hub)
}
