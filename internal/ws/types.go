package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// inbound
	MessageTypeMove       MessageType = "move"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeRestart    MessageType = "restart"

	// outbound
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LegalMovesRequest asks for the destinations of the piece on Square.
type LegalMovesRequest struct {
	Square model.Square `json:"square"`
}

// LegalMovesPayload answers a LegalMovesRequest. It is also the REST response body.
type LegalMovesPayload struct {
	Square model.Square    `json:"square"`
	Moves  model.SquareSet `json:"moves"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}

// ErrorMessage builds an outbound error message. It cannot fail.
func ErrorMessage(err error) Message {
	data, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: data}
}
