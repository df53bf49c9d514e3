package service

import (
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games  map[string]*Game
	mu     sync.RWMutex
	logger *zap.Logger
}

func NewGameManager(logger *zap.Logger) *GameManager {
	return &GameManager{
		games:  make(map[string]*Game),
		logger: logger,
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	return gm.addGame(gameID, model.NewGame())
}

// CreateGameFromPosition starts a game from a custom placement.
func (gm *GameManager) CreateGameFromPosition(gameID string, pos model.Position) error {
	state, err := model.NewGameFromPosition(pos)
	if err != nil {
		return err
	}
	return gm.addGame(gameID, state)
}

func (gm *GameManager) addGame(gameID string, state model.GameState) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.Wrapf(ErrGameExists, "game %s", gameID)
	}

	gm.games[gameID] = NewGameFromState(gameID, state, gm.logger)
	gm.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.String("status", string(state.Status)))
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.Wrapf(ErrGameNotFound, "game %s", gameID)
	}

	return game, nil
}

// DeleteGame discards a game and closes its connections.
func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	game, exists := gm.games[gameID]
	if !exists {
		gm.mu.Unlock()
		return errors.Wrapf(ErrGameNotFound, "game %s", gameID)
	}
	delete(gm.games, gameID)
	gm.mu.Unlock()

	game.closeAll()
	gm.logger.Info("game deleted", zap.String("game_id", gameID))
	return nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) GetStatus(gameID string) (model.StatusReport, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.StatusReport{}, err
	}
	return game.Status(), nil
}

func (gm *GameManager) LegalMoves(gameID string, from model.Square) (model.SquareSet, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return 0, err
	}
	return game.LegalMoves(from), nil
}

func (gm *GameManager) MakeMove(gameID string, req model.MoveRequest) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.MakeMove(req)
}

func (gm *GameManager) RestartGame(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.Restart(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.RegisterConnection(clientID, conn)
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string, conn Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID, conn)
}
