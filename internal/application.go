package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/cache"
	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/movegate"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/memory"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/postgres"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/sqlite"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
)

const shutdownTimeout = 5 * time.Second

type gameStore interface {
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Create(ctx context.Context, game *entity.Game) error
	Save(ctx context.Context, game *entity.Game, expectedVersion int) error
}

type moveLog interface {
	Append(ctx context.Context, move entity.Move) error
	ListByGame(ctx context.Context, gameID string) ([]entity.Move, error)
	CountByGame(ctx context.Context, gameID string) (int, error)
}

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

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}
	}()

	var redisStorage *storage.RedisStorage
	if conf.UsesRedis() {
		var err error
		redisStorage, err = storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}
		closers = append(closers, redisStorage.Close)
	}

	games, moves, closeStores, err := openStores(ctx, conf, redisStorage)
	if err != nil {
		return err
	}
	closers = append(closers, closeStores)

	log.Info("storage ready", "driver", conf.Storage.Driver, "cache", conf.Cache.Driver)

	scope, err := usecase.ParseGateScope(conf.Move.GateScope)
	if err != nil {
		return fmt.Errorf("invalid move config: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(service.NewGameService(logger, games, conf.Game.Settings()))
	moveUseCase := usecase.NewMoveUseCase(
		logger,
		movegate.New(),
		cache.NewMoveCache(newCacheBackend(ctx, conf, redisStorage)),
		service.NewMoveService(logger, games, moves, service.NewRoller()),
		usecase.MoveOptions{
			LockTimeout: conf.Move.LockTimeout,
			ResultTTL:   conf.Cache.TTL,
			Scope:       scope,
		},
	)

	server := rest.New(logger, gameUseCase, moveUseCase)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}

// openStores - picks the game store and move log for the configured driver.
func openStores(ctx context.Context, conf *config.Config, redisStorage *storage.RedisStorage) (gameStore, moveLog, func() error, error) {
	noop := func() error { return nil }

	switch conf.Storage.Driver {
	case config.StorageRedis:
		return repository.NewGameRepository(redisStorage.Connection), repository.NewMoveRepository(redisStorage.Connection), noop, nil

	case config.StoragePostgres:
		pg, err := storage.NewPostgresStorage(ctx, conf.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = pg.Init(ctx); err != nil {
			_ = pg.Close()
			return nil, nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		return postgres.NewGameStore(pg.Pool), postgres.NewMoveLog(pg.Pool), pg.Close, nil

	case config.StorageSQLite:
		lite, err := storage.NewSQLiteStorage(ctx, conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = lite.Init(ctx); err != nil {
			_ = lite.Close()
			return nil, nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return sqlite.NewGameStore(lite.Connection), sqlite.NewMoveLog(lite.Connection), lite.Close, nil

	default:
		return memory.NewGameStore(), memory.NewMoveLog(), noop, nil
	}
}

func newCacheBackend(ctx context.Context, conf *config.Config, redisStorage *storage.RedisStorage) cache.Backend {
	if conf.Cache.Driver == config.StorageRedis {
		return cache.NewRedis(redisStorage.Connection)
	}

	backend := cache.NewMemory()
	if conf.Cache.SweepInterval > 0 {
		go backend.RunSweeper(ctx, conf.Cache.SweepInterval)
	}

	return backend
}
