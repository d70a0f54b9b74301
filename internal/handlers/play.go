package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-boards/internal/config"
	"github.com/vancomm/minesweeper-boards/internal/mines"
	"github.com/vancomm/minesweeper-boards/internal/play"
)

type Greeting struct {
	SessionID string      `json:"session_id"`
	BoardID   int64       `json:"board_id"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	MineCount int         `json:"mine_count"`
	Stats     mines.Stats `json:"stats"`
}

type PlayFrame struct {
	Responses []*play.Response `json:"responses"`
	Error     string           `json:"error,omitempty"`
}

// Play upgrades to a websocket and runs one game on the stored board for
// the lifetime of the connection. Each text message holds one or more
// newline-separated commands, answered with a single PlayFrame.
func (h *BoardHandler) Play(w http.ResponseWriter, r *http.Request) {
	board, ok := h.fetch(w, r)
	if !ok {
		return
	}

	layout, err := board.Layout()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("db returned invalid board_data")
		return
	}
	game, err := mines.LoadEngine(board.Params(), layout)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("stored board cannot be played")
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("upgrade failed")
		return
	}
	defer c.Close()
	c.SetReadLimit(config.MaxMessageSize)

	sessionID := uuid.NewString()
	log := h.logger.WithFields(logrus.Fields{
		"board_id":   board.BoardID,
		"session_id": sessionID,
	})
	log.Debug("play session started")

	params := game.Params()
	if err := c.WriteJSON(Greeting{
		SessionID: sessionID,
		BoardID:   board.BoardID,
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.MineCount,
		Stats:     game.Stats(),
	}); err != nil {
		log.WithError(err).Warn("write")
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			break
		}
		if mt != websocket.TextMessage {
			continue
		}

		log.WithField("message", string(message)).Debug("\t>")
		responses, err := play.ExecuteAll(game, string(message))
		frame := PlayFrame{Responses: responses}
		if err != nil {
			frame.Error = err.Error()
		}
		if err := c.WriteJSON(frame); err != nil {
			log.WithError(err).Warn("write")
			break
		}
	}

	log.WithField("stats", game.Stats()).Debug("play session ended")
}
