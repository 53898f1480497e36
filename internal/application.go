package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/triangles-backend/internal/config"
	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/repository"
	"github.com/rocketscienceinc/triangles-backend/internal/repository/storage"
	"github.com/rocketscienceinc/triangles-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
	"github.com/rocketscienceinc/triangles-backend/transport/rest"
	"github.com/rocketscienceinc/triangles-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaults, err := boardDefaults(conf.Board)
	if err != nil {
		return err
	}

	strategy, err := engine.ParseStrategy(conf.Engine.Strategy)
	if err != nil {
		return fmt.Errorf("invalid engine strategy: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	cache, err := engine.NewCache(conf.Engine.Cache.Policy, conf.Engine.Cache.Capacity)
	if err != nil {
		return fmt.Errorf("could not create transposition cache: %w", err)
	}

	moveEngine := engine.New(logger, engine.Config{
		Depth:         conf.Engine.Depth,
		MaxBranch:     conf.Engine.MaxBranch,
		Seed:          conf.Engine.Seed,
		SearchTimeout: conf.Engine.SearchTimeout,
	}, cache)

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	matchRepo := repository.NewMatchRepository(sqliteStorage.Connection)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger, moveEngine, strategy)
	gamePlayService := service.NewGamePlayService(logger, defaults, playerService, gameService, botService, matchRepo)
	advisorService := service.NewAdvisorService(moveEngine)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gamePlayService, advisorService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gamePlayService)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// boardDefaults - the settings of games opened without options.
func boardDefaults(conf config.Board) (entity.Settings, error) {
	rows, err := lattice.Preset(conf.Preset)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("invalid board preset: %w", err)
	}

	return entity.Settings{
		Rows:               rows,
		RequiredLineLength: conf.RequiredLineLength,
		ScoreAgain:         conf.ScoreAgain,
		AllowShorterLines:  conf.AllowShorterLines,
	}, nil
}
