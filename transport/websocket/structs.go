package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the bodies of every request and response. Fields that an
// action does not use stay nil and are dropped from the wire form.
type Payload struct {
	Session *entity.Session    `json:"session,omitempty"`
	Episode *entity.Episode    `json:"episode,omitempty"`
	Step    *entity.StepResult `json:"step,omitempty"`
	Match   *entity.Match      `json:"match,omitempty"`
	Action  *int               `json:"action,omitempty"`
	Cell    *int               `json:"cell,omitempty"`
	Error   string             `json:"error,omitempty"`
}
