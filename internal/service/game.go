package service

import (
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"go.uber.org/zap"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type GameConnections struct {
	connections map[string]Conn // clientID -> connection
	sent        uint64          // version of the last broadcast state
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Game owns one GameState. Every read and mutation of the state goes through mu, so
// moves from several sockets and REST calls are applied one at a time.
type Game struct {
	ID          string
	state       model.GameState
	version     uint64
	mu          sync.Mutex
	connections *GameConnections
	logger      *zap.Logger
}

func NewGame(id string, logger *zap.Logger) *Game {
	return NewGameFromState(id, model.NewGame(), logger)
}

func NewGameFromState(id string, state model.GameState, logger *zap.Logger) *Game {
	return &Game{
		ID:          id,
		state:       state,
		connections: NewGameConnections(),
		logger:      logger.With(zap.String("game_id", id)),
	}
}

func (g *Game) GetState() model.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Game) Status() model.StatusReport {
	return g.GetState().Report()
}

func (g *Game) LegalMoves(from model.Square) model.SquareSet {
	return g.GetState().LegalMoves(from)
}

// MakeMove applies req to the current state. On success the new state is stored and
// pushed to every connection; on error nothing changes.
func (g *Game) MakeMove(req model.MoveRequest) (model.GameState, error) {
	g.mu.Lock()
	next, err := g.state.ApplyRequest(req)
	if err != nil {
		g.mu.Unlock()
		g.logger.Debug("move rejected",
			zap.Stringer("from", req.From),
			zap.Stringer("to", req.To),
			zap.Error(err))
		return model.GameState{}, err
	}
	g.state = next
	g.version++
	version := g.version
	g.mu.Unlock()

	g.logger.Info("move applied",
		zap.Stringer("from", req.From),
		zap.Stringer("to", req.To),
		zap.String("status", string(next.Status)),
		zap.String("to_move", string(next.ToMove)))
	g.broadcastState(next, version)
	return next, nil
}

// Restart discards the current game and starts over from the initial position.
func (g *Game) Restart() model.GameState {
	state := model.NewGame()
	g.mu.Lock()
	g.state = state
	g.version++
	version := g.version
	g.mu.Unlock()

	g.logger.Info("game restarted")
	g.broadcastState(state, version)
	return state
}

// RegisterConnection attaches conn for clientID, replacing and closing any earlier
// connection of the same client, and sends it the current state.
//
// The state is read and written with connections.mu held, so a broadcast of any
// newer state reaches conn after the snapshot. Lock order is connections.mu, then mu.
func (g *Game) RegisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if old, ok := g.connections.connections[clientID]; ok && old != conn {
		g.logger.Debug("replacing connection", zap.String("client_id", clientID))
		old.Close()
	}
	g.connections.connections[clientID] = conn
	g.logger.Info("connection registered", zap.String("client_id", clientID))

	g.write(clientID, conn, g.stateMessage(g.GetState()))
}

// UnregisterConnection removes conn if it is still the one registered for clientID.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, ok := g.connections.connections[clientID]; ok && current == conn {
		delete(g.connections.connections, clientID)
		g.logger.Info("connection unregistered", zap.String("client_id", clientID))
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return len(g.connections.connections)
}

// Send writes msg to the connection of clientID. Writes are serialized with
// broadcasts since a websocket allows one writer at a time.
func (g *Game) Send(clientID string, msg ws.Message) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	conn, ok := g.connections.connections[clientID]
	if !ok {
		return
	}
	g.write(clientID, conn, msg)
}

// broadcastState pushes state to every connection unless a newer version has already
// gone out.
func (g *Game) broadcastState(state model.GameState, version uint64) {
	msg := g.stateMessage(state)

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	if version <= g.connections.sent {
		return
	}
	g.connections.sent = version
	for clientID, conn := range g.connections.connections {
		g.write(clientID, conn, msg)
	}
}

// write must be called with connections.mu held. A failed connection is dropped.
func (g *Game) write(clientID string, conn Conn, msg ws.Message) {
	if err := conn.WriteJSON(msg); err != nil {
		g.logger.Warn("dropping connection after failed write",
			zap.String("client_id", clientID),
			zap.Error(err))
		delete(g.connections.connections, clientID)
		conn.Close()
	}
}

func (g *Game) stateMessage(state model.GameState) ws.Message {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		g.logger.Error("failed to encode game state", zap.Error(err))
		return ws.ErrorMessage(err)
	}
	return msg
}

// closeAll closes every connection. Used when the game is deleted.
func (g *Game) closeAll() {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		conn.Close()
		delete(g.connections.connections, clientID)
	}
}
