// Package storetest holds behaviour checks shared by every game store and move log.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

var createdAt = time.Date(2025, 7, 14, 8, 24, 29, 0, time.UTC)

type GameStore interface {
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Create(ctx context.Context, game *entity.Game) error
	Save(ctx context.Context, game *entity.Game, expectedVersion int) error
}

type MoveLog interface {
	Append(ctx context.Context, move entity.Move) error
	ListByGame(ctx context.Context, gameID string) ([]entity.Move, error)
	CountByGame(ctx context.Context, gameID string) (int, error)
}

// Stores - fresh, empty stores sharing one backend.
type Stores func(t *testing.T) (context.Context, GameStore, MoveLog)

// Run - exercises the store contract against the stores produced by newStores.
func Run(t *testing.T, newStores Stores) {
	t.Helper()

	t.Run("Create and get", func(t *testing.T) {
		ctx, games, _ := newStores(t)

		// Given: a new game
		game := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a01", entity.DefaultSettings(), createdAt)

		// When: it is created and read back
		require.NoError(t, games.Create(ctx, game))
		stored, err := games.GetByID(ctx, game.ID)

		// Then: every field survives the round trip
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Duplicate create", func(t *testing.T) {
		ctx, games, _ := newStores(t)

		game := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a02", entity.DefaultSettings(), createdAt)
		require.NoError(t, games.Create(ctx, game))

		require.ErrorIs(t, games.Create(ctx, game), apperror.ErrGameAlreadyExists)
	})

	t.Run("Unknown game", func(t *testing.T) {
		ctx, games, _ := newStores(t)

		game, err := games.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)

		err = games.Save(ctx, entity.NewGame("missing", entity.DefaultSettings(), createdAt), 0)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Save checks the version", func(t *testing.T) {
		ctx, games, _ := newStores(t)

		// Given: a stored game read by two writers
		game := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a03", entity.DefaultSettings(), createdAt)
		require.NoError(t, games.Create(ctx, game))

		first, err := games.GetByID(ctx, game.ID)
		require.NoError(t, err)
		second, err := games.GetByID(ctx, game.ID)
		require.NoError(t, err)

		// When: both save a move against the version they read
		first.PlaceMark(entity.PlayerX, 0, 0)
		first.TogglePlayer()
		first.UpdatedAt = createdAt.Add(time.Minute)
		require.NoError(t, games.Save(ctx, first, first.Version))

		second.PlaceMark(entity.PlayerX, 1, 1)
		err = games.Save(ctx, second, second.Version)

		// Then: only the first write lands
		require.ErrorIs(t, err, apperror.ErrVersionConflict)

		stored, err := games.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, "X--------", stored.BoardState)
		assert.Equal(t, entity.PlayerO, stored.CurrentPlayer)
		assert.Equal(t, 1, stored.Version)
		assert.Equal(t, 1, first.Version)
		assert.Equal(t, createdAt.Add(time.Minute), stored.UpdatedAt)
	})

	t.Run("Status survives a save", func(t *testing.T) {
		ctx, games, _ := newStores(t)

		game := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a04", entity.DefaultSettings(), createdAt)
		require.NoError(t, games.Create(ctx, game))

		game.BoardState = "XXXOO----"
		game.Status = entity.StatusXWon
		require.NoError(t, games.Save(ctx, game, 0))

		stored, err := games.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusXWon, stored.Status)
	})

	t.Run("Move log keeps order per game", func(t *testing.T) {
		ctx, games, moves := newStores(t)

		// Given: two games with moves
		first := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a05", entity.DefaultSettings(), createdAt)
		second := entity.NewGame("5b0e4f3e-5a0c-4f71-b7e5-2c4a4f1d8a06", entity.DefaultSettings(), createdAt)
		require.NoError(t, games.Create(ctx, first))
		require.NoError(t, games.Create(ctx, second))

		history := []entity.Move{
			{GameID: first.ID, Row: 0, Col: 0, Player: entity.PlayerX, MoveTime: createdAt.Add(time.Second)},
			{GameID: first.ID, Row: 1, Col: 1, Player: entity.PlayerO, MoveTime: createdAt.Add(2 * time.Second)},
			{GameID: first.ID, Row: 2, Col: 2, Player: entity.PlayerO, MoveTime: createdAt.Add(3 * time.Second)},
		}
		for _, move := range history {
			require.NoError(t, moves.Append(ctx, move))
		}
		require.NoError(t, moves.Append(ctx, entity.Move{GameID: second.ID, Player: entity.PlayerX, MoveTime: createdAt}))

		// When: reading the first game's log
		listed, err := moves.ListByGame(ctx, first.ID)
		require.NoError(t, err)

		count, err := moves.CountByGame(ctx, first.ID)
		require.NoError(t, err)

		// Then: its moves come back in time order
		assert.Equal(t, history, listed)
		assert.Equal(t, 3, count)

		none, err := moves.CountByGame(ctx, "missing")
		require.NoError(t, err)
		assert.Zero(t, none)
	})
}
