package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-api/mocks/usecase"
)

func TestGameUseCase_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a game through the service", func(t *testing.T) {
		// Given: a service that creates the game
		mockGameService := mockedUseCase.NewMockgameService(t)
		useCaseInstance := NewGameUseCase(mockGameService)

		created := entity.NewGame("g1", entity.DefaultSettings(), fixedTime)
		mockGameService.EXPECT().CreateGame(ctx, entity.SettingsOverrides{}).Return(created, nil).Once()

		// When: CreateGame is called without overrides
		game, err := useCaseInstance.CreateGame(ctx, entity.SettingsOverrides{})

		// Then: the created game is returned
		require.NoError(t, err)
		assert.Equal(t, created, game)
	})

	t.Run("Returns error if the service fails", func(t *testing.T) {
		mockGameService := mockedUseCase.NewMockgameService(t)
		useCaseInstance := NewGameUseCase(mockGameService)

		mockGameService.EXPECT().CreateGame(ctx, entity.SettingsOverrides{}).Return(nil, errRedisDown).Once()

		game, err := useCaseInstance.CreateGame(ctx, entity.SettingsOverrides{})

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns existing game", func(t *testing.T) {
		mockGameService := mockedUseCase.NewMockgameService(t)
		useCaseInstance := NewGameUseCase(mockGameService)

		existingGame := entity.NewGame("g123", entity.DefaultSettings(), fixedTime)
		mockGameService.EXPECT().GetGameByID(ctx, "g123").Return(existingGame, nil).Once()

		game, err := useCaseInstance.GetGame(ctx, "g123")

		require.NoError(t, err)
		assert.Equal(t, existingGame, game)
	})

	t.Run("Keeps the not found error matchable", func(t *testing.T) {
		mockGameService := mockedUseCase.NewMockgameService(t)
		useCaseInstance := NewGameUseCase(mockGameService)

		mockGameService.EXPECT().GetGameByID(ctx, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		game, err := useCaseInstance.GetGame(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}
