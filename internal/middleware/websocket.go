package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the game and client ids are present before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}

		// set by EnsureClientID
		clientID, ok := c.Locals("clientID").(string)
		if !ok || clientID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		// The connection context is different from the upgrade context, so carry the
		// ids across in locals. Locals are not copied on upgrade and the request
		// buffers are reused, so the strings must own their bytes.
		c.Locals("wsGameID", utils.CopyString(gameID))
		c.Locals("wsClientID", utils.CopyString(clientID))
		return c.Next()
	}
}
