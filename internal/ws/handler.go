// Package ws pushes live recalculation results to connected front ends: every
// parameter update re-runs the pipeline and the derived results are broadcast
// to all clients viewing the dashboard.
package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes messages to the calculator.
type Handler struct {
	hub        *Hub
	calculator *calc.Calculator
	log        zerolog.Logger
}

func NewHandler(hub *Hub, calculator *calc.Calculator) *Handler {
	return &Handler{hub: hub, calculator: calculator, log: logger.New("ws")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	h.sendCatalog(client)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		h.handleMessage(c, msg)
	}
}

func (h *Handler) handleMessage(c *Client, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.sendError(c, "INVALID_MESSAGE", err.Error())
		return
	}

	switch env.Type {
	case TypeParamsUpdate:
		var p ParamsUpdatePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.sendError(c, "INVALID_PAYLOAD", err.Error())
			return
		}
		h.evaluate(c, p)

	default:
		h.sendError(c, "UNKNOWN_TYPE", "unknown message type: "+env.Type)
	}
}

// evaluate re-runs the pipeline and broadcasts the results to every client,
// so all open dashboard views stay in sync.
func (h *Handler) evaluate(c *Client, p ParamsUpdatePayload) {
	eval, err := h.calculator.Evaluate(p.ToInput())
	if err != nil {
		h.sendError(c, "INVALID_PARAMETERS", err.Error())
		return
	}

	h.broadcast(TypeResultSizing, SizingPayload{EvaluationID: eval.ID, Sizing: eval.Sizing})
	h.broadcast(TypeResultBackup, BackupPayload{EvaluationID: eval.ID, BackupHours: eval.BackupHours})
	h.broadcast(TypeResultEconomics, EconomicsPayload{EvaluationID: eval.ID, Economics: eval.Economics})
	h.broadcast(TypeResultProfile, ProfilePayload{EvaluationID: eval.ID, Profile: eval.Profile})
}

func (h *Handler) broadcast(msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		h.log.Error().Err(err).Str("type", msgType).Msg("marshal broadcast")
		return
	}
	h.hub.Broadcast(msg)
}

func (h *Handler) sendCatalog(c *Client) {
	msg, err := NewEnvelope(TypeCatalogLoaded, CatalogLoadedPayload{
		Modules: h.calculator.Catalog().Modules(),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("marshal catalog")
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

func (h *Handler) sendError(c *Client, code, message string) {
	msg, err := NewEnvelope(TypeError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}
