package service

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", errors.Wrap(err, "failed to create game")
	}

	return gameID, nil
}

func (gs *GameService) CreateGameFromPosition(pos model.Position) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGameFromPosition(gameID, pos); err != nil {
		return "", errors.Wrap(err, "failed to create game")
	}

	return gameID, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) GetStatus(gameID string) (model.StatusReport, error) {
	return gs.gameManager.GetStatus(gameID)
}

func (gs *GameService) LegalMoves(gameID string, from model.Square) (model.SquareSet, error) {
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) HandleMove(gameID string, req model.MoveRequest) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, req)
}

func (gs *GameService) RestartGame(gameID string) (model.GameState, error) {
	return gs.gameManager.RestartGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, clientID, conn)
}

// SendToClient writes msg to one client's socket in gameID.
func (gs *GameService) SendToClient(gameID string, clientID string, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	game.Send(clientID, msg)
	return nil
}
