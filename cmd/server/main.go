package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/controller"
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	app := newApp(cfg, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.Addr), zap.Strings("origins", cfg.Origins()))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newApp(cfg config.Config, logger *zap.Logger) *fiber.App {
	// Immutable: client and game ids outlive the request as socket session keys.
	app := fiber.New(fiber.Config{
		Immutable:             true,
		DisableStartupMessage: !cfg.Dev,
	})

	origins := cfg.Origins()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, " + middleware.ClientIDHeader,
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		ExposeHeaders:    middleware.ClientIDHeader,
		AllowCredentials: !slices.Contains(origins, "*"),
	}))
	app.Use(middleware.RequestLogger(logger))

	// Initialize services
	gameManager := service.NewGameManager(logger)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService, logger)
	wsController := controller.NewWebSocketController(gameService, logger)

	// WebSocket routes
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.WSReadBufferSize,
		WriteBufferSize: cfg.WSWriteBufferSize,
		Origins:         origins,
	}))

	// REST routes
	api := app.Group("/api", middleware.EnsureClientID())
	gameController.Register(api.Group("/game"))

	return app
}
