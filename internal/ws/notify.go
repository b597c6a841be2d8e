package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is the JSON frame pushed to clients.
type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// Notify sends an event of eventType to every connection of userID.
func (h *Hub) Notify(userID uuid.UUID, eventType string, payload any) {
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws encode event", zap.String("type", eventType), zap.Error(err))
		return
	}

	h.SendToUser(userID, b)
}
