package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type GameController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewGameController(gameService *service.GameService, logger *zap.Logger) *GameController {
	return &GameController{gameService: gameService, logger: logger}
}

// Register mounts the game routes on router.
func (gc *GameController) Register(router fiber.Router) {
	router.Post("/", gc.CreateGame)
	router.Post("/position", gc.CreateGameFromPosition)
	router.Get("/:gameId", gc.GetGameState)
	router.Get("/:gameId/status", gc.GetStatus)
	router.Get("/:gameId/moves/:square", gc.GetLegalMoves)
	router.Post("/:gameId/move", gc.MakeMove)
	router.Post("/:gameId/restart", gc.RestartGame)
	router.Delete("/:gameId", gc.DeleteGame)
}

// statusFor maps engine and service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidSquare),
		errors.Is(err, model.ErrInvalidPromotion),
		errors.Is(err, model.ErrInvalidPosition):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrGameOver),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		gc.logger.Error("request failed", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

// CreateGameFromPosition starts a game from the Position in the request body.
func (gc *GameController) CreateGameFromPosition(c *fiber.Ctx) error {
	var pos model.Position
	if err := c.BodyParser(&pos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	gameID, err := gc.gameService.CreateGameFromPosition(pos)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetStatus(c *fiber.Ctx) error {
	report, err := gc.gameService.GetStatus(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(report)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return gc.fail(c, err)
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(ws.LegalMovesPayload{Square: from, Moves: moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	state, err := gc.gameService.HandleMove(c.Params("gameId"), req)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) RestartGame(c *fiber.Ctx) error {
	state, err := gc.gameService.RestartGame(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return gc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
