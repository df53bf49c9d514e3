package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const ClientIDHeader = "X-Client-ID"

// EnsureClientID identifies the browser tab behind a request. The id comes from the
// X-Client-ID header or the clientId query parameter; a fresh one is issued (and
// echoed in the response header) when neither is present. The id is copied out of
// the request buffer since it outlives the request as a connection key.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get(ClientIDHeader)
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		} else {
			clientID = utils.CopyString(clientID)
		}

		c.Set(ClientIDHeader, clientID)
		c.Locals("clientID", clientID)
		return c.Next()
	}
}
