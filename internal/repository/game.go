package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const gameKeyPrefix = "game:"

type GameRepository struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) *GameRepository {
	return &GameRepository{
		client: client,
	}
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

// Create - stores a new game, failing if the id is taken.
func (that *GameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(game.ID), gameJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	return nil
}

func (that *GameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// Save - overwrites the game if the stored version still equals expectedVersion,
// using WATCH so a concurrent writer aborts the transaction. On success game.Version is bumped.
func (that *GameRepository) Save(ctx context.Context, game *entity.Game, expectedVersion int) error {
	key := gameKey(game.ID)

	next := *game
	next.Version = expectedVersion + 1

	gameJSON, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		var stored entity.Game
		if err = json.Unmarshal(response, &stored); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if stored.Version != expectedVersion {
			return apperror.ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			return nil
		})

		return err
	}

	err = that.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return apperror.ErrVersionConflict
	}

	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	game.Version = next.Version

	return nil
}
