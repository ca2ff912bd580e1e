package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, overrides entity.SettingsOverrides) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type GameUseCase struct {
	gameService gameService
}

func NewGameUseCase(gameService gameService) *GameUseCase {
	return &GameUseCase{
		gameService: gameService,
	}
}

func (that *GameUseCase) CreateGame(ctx context.Context, overrides entity.SettingsOverrides) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	return game, nil
}

func (that *GameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}
