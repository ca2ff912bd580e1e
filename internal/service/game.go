package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type GameService struct {
	logger *slog.Logger

	games    gameStore
	defaults entity.Settings
	newID    func() string
	now      func() time.Time
}

func NewGameService(logger *slog.Logger, games gameStore, defaults entity.Settings) *GameService {
	return &GameService{
		logger:   logger.With("component", "game-service"),
		games:    games,
		defaults: defaults,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// CreateGame - builds a game from the configured defaults with the given overrides and stores it.
func (that *GameService) CreateGame(ctx context.Context, overrides entity.SettingsOverrides) (*entity.Game, error) {
	settings := overrides.Apply(that.defaults)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	game := entity.NewGame(that.newID(), settings, that.now().UTC())
	if err := that.games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "boardSize", game.BoardSize,
		"winnerLineLength", game.WinnerLineLength, "signChangeChance", game.SignChangeChance)

	return game, nil
}

func (that *GameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}
