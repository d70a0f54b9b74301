package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// MaxMessageSize bounds one batch of play commands.
const MaxMessageSize = 4096

type WebSocket struct {
	Upgrader websocket.Upgrader
}

func NewWebSocket() *WebSocket {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return &WebSocket{Upgrader: upgrader}
}
