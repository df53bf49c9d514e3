package service

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	closed   bool
	failing  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []ws.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ws.Message(nil), c.messages...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// lastState decodes the most recent gameState message.
func (c *fakeConn) lastState(t *testing.T) model.GameState {
	t.Helper()
	msgs := c.received()
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	require.Equal(t, ws.MessageTypeGameState, last.Type)
	var state model.GameState
	require.NoError(t, json.Unmarshal(last.Payload, &state))
	return state
}

func move(from, to string) model.MoveRequest {
	return model.MoveRequest{From: model.MustParseSquare(from), To: model.MustParseSquare(to)}
}
