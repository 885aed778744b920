package server

import (
	"encoding/json"
	"time"

	"github.com/lox/holdem-advisor/internal/advisor"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client → Server
	MessageTypeAdvise MessageType = "advise"

	// Server → Client
	MessageTypeRecommendation MessageType = "recommendation"
	MessageTypeError          MessageType = "error"
)

// Message is the base WebSocket message envelope
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// AdviseRequest asks for advice on a single hand situation. Omitted
// position/stack/pot/players fall back to the server's table defaults.
type AdviseRequest struct {
	Hole     []string `json:"hole"`
	Board    []string `json:"board,omitempty"`
	Position string   `json:"position,omitempty"`
	Stack    float64  `json:"stack,omitempty"`
	Pot      float64  `json:"pot,omitempty"`
	Players  int      `json:"players,omitempty"`
}

// AdviseResponse carries the evaluation and derived recommendation
type AdviseResponse struct {
	Evaluation     advisor.Evaluation     `json:"evaluation"`
	Recommendation advisor.Recommendation `json:"recommendation"`
}

// ErrorData describes a request failure
type ErrorData struct {
	Message string `json:"message"`
}
