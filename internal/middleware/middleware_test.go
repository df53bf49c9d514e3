package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func echoClientID(c *fiber.Ctx) error {
	return c.SendString(c.Locals("clientID").(string))
}

func readBody(t *testing.T, app *fiber.App, target string, header map[string]string) (string, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body), resp.Header.Get(ClientIDHeader)
}

func TestEnsureClientID(t *testing.T) {
	app := fiber.New()
	app.Get("/", EnsureClientID(), echoClientID)

	body, header := readBody(t, app, "/", map[string]string{ClientIDHeader: "from-header"})
	assert.Equal(t, "from-header", body)
	assert.Equal(t, "from-header", header)

	body, _ = readBody(t, app, "/?clientId=from-query", nil)
	assert.Equal(t, "from-query", body)

	body, header = readBody(t, app, "/", nil)
	assert.Len(t, body, 36, "a uuid is issued")
	assert.Equal(t, body, header)
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/game/:gameId", EnsureClientID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ws/game/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestKeptIDsSurviveLaterRequests(t *testing.T) {
	type kept struct{ clientID, gameID, wsClientID string }
	var seen []kept

	app := fiber.New()
	app.Get("/ws/game/:gameId", EnsureClientID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		seen = append(seen, kept{
			clientID:   c.Locals("clientID").(string),
			gameID:     c.Locals("wsGameID").(string),
			wsClientID: c.Locals("wsClientID").(string),
		})
		return c.SendStatus(fiber.StatusOK)
	})

	for _, id := range []string{"AAAA", "BBBB"} {
		req := httptest.NewRequest(fiber.MethodGet, "/ws/game/game-"+id, nil)
		req.Header.Set(ClientIDHeader, "client-"+id)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	require.Len(t, seen, 2)
	assert.Equal(t, kept{clientID: "client-AAAA", gameID: "game-AAAA", wsClientID: "client-AAAA"}, seen[0])
	assert.Equal(t, kept{clientID: "client-BBBB", gameID: "game-BBBB", wsClientID: "client-BBBB"}, seen[1])
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	})

	for _, target := range []string{"/ok", "/missing"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
}
