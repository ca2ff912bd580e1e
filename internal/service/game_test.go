package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-api/mocks/service"
)

func newTestGameService(t *testing.T) (*GameService, *mockedService.MockgameStore) {
	t.Helper()

	games := mockedService.NewMockgameStore(t)
	gameService := NewGameService(discardLogger(), games, entity.DefaultSettings())
	gameService.newID = func() string { return "3f1c2a52-5a43-4c4e-9f0e-6f2b7f0f5d11" }
	gameService.now = func() time.Time { return fixedNow }

	return gameService, games
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses configured defaults", func(t *testing.T) {
		// Given: a store accepting the new game
		gameService, games := newTestGameService(t)
		games.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: creating without overrides
		game, err := gameService.CreateGame(ctx, entity.SettingsOverrides{})

		// Then: the game has the default settings and an empty board
		require.NoError(t, err)
		assert.Equal(t, "3f1c2a52-5a43-4c4e-9f0e-6f2b7f0f5d11", game.ID)
		assert.Equal(t, 3, game.BoardSize)
		assert.Equal(t, 3, game.WinnerLineLength)
		assert.Equal(t, 10, game.SignChangeChance)
		assert.Equal(t, "---------", game.BoardState)
		assert.Equal(t, entity.PlayerX, game.CurrentPlayer)
		assert.Equal(t, entity.StatusInProgress, game.Status)
		assert.Equal(t, fixedNow, game.CreatedAt)
	})

	t.Run("Applies overrides", func(t *testing.T) {
		gameService, games := newTestGameService(t)
		games.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		size, line, chance := 5, 4, 0
		game, err := gameService.CreateGame(ctx, entity.SettingsOverrides{
			BoardSize:        &size,
			WinnerLineLength: &line,
			SignChangeChance: &chance,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, game.BoardSize)
		assert.Len(t, game.BoardState, 25)
		assert.Equal(t, 4, game.WinnerLineLength)
		assert.Equal(t, 0, game.SignChangeChance)
	})

	t.Run("Rejects inconsistent settings before storing", func(t *testing.T) {
		// Given: a line longer than the default board
		gameService, _ := newTestGameService(t)
		line := 4

		// When: creating the game
		game, err := gameService.CreateGame(ctx, entity.SettingsOverrides{WinnerLineLength: &line})

		// Then: nothing reaches the store
		require.ErrorIs(t, err, entity.ErrInvalidGameSettings)
		assert.Nil(t, game)
	})

	t.Run("Store failure", func(t *testing.T) {
		gameService, games := newTestGameService(t)
		games.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()

		_, err := gameService.CreateGame(ctx, entity.SettingsOverrides{})

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing game", func(t *testing.T) {
		gameService, games := newTestGameService(t)
		stored := newTestGame("---------", entity.PlayerX, 10)
		games.EXPECT().GetByID(ctx, "g1").Return(stored, nil).Once()

		game, err := gameService.GetGameByID(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Missing game", func(t *testing.T) {
		gameService, games := newTestGameService(t)
		games.EXPECT().GetByID(ctx, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		game, err := gameService.GetGameByID(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}
