package controller

import (
	"encoding/json"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errUnknownMessage = errors.New("unknown message type")

type WebSocketController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	clientID, _ := c.Locals("wsClientID").(string)
	logger := wsc.logger.With(zap.String("game_id", gameID), zap.String("client_id", clientID))

	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		rejectConnection(c, logger, err)
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, clientID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("connection closed", zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug("unparseable message", zap.Error(err))
			wsc.sendError(gameID, clientID, errors.Wrap(err, "parse message"))
			continue
		}
		if err := wsc.handleMessage(gameID, clientID, msg); err != nil {
			logger.Debug("message rejected", zap.String("type", string(msg.Type)), zap.Error(err))
			wsc.sendError(gameID, clientID, err)
		}
	}
}

// handleMessage dispatches one inbound message. Moves and restarts are answered by
// the state broadcast; legal move queries are answered to the asking client only.
func (wsc *WebSocketController) handleMessage(gameID, clientID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, req)
		return err

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		moves, err := wsc.gameService.LegalMoves(gameID, req.Square)
		if err != nil {
			return err
		}
		reply, err := ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesPayload{Square: req.Square, Moves: moves})
		if err != nil {
			return err
		}
		return wsc.gameService.SendToClient(gameID, clientID, reply)

	case ws.MessageTypeRestart:
		_, err := wsc.gameService.RestartGame(gameID)
		return err

	default:
		return errors.Wrapf(errUnknownMessage, "%q", msg.Type)
	}
}

// rejectConnection tells a socket why it was refused and closes it.
func rejectConnection(conn service.Conn, logger *zap.Logger, err error) {
	logger.Warn("failed to register connection", zap.Error(err))
	if writeErr := conn.WriteJSON(ws.ErrorMessage(err)); writeErr != nil {
		logger.Debug("failed to send error", zap.Error(writeErr))
	}
	if closeErr := conn.Close(); closeErr != nil {
		logger.Debug("failed to close connection", zap.Error(closeErr))
	}
}

func (wsc *WebSocketController) sendError(gameID, clientID string, err error) {
	if sendErr := wsc.gameService.SendToClient(gameID, clientID, ws.ErrorMessage(err)); sendErr != nil {
		wsc.logger.Debug("failed to send error", zap.Error(sendErr))
	}
}
