package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const movesKeyPrefix = "moves:"

// MoveRepository keeps each game's moves in a Redis list in append order.
type MoveRepository struct {
	client *redis.Client
}

func NewMoveRepository(client *redis.Client) *MoveRepository {
	return &MoveRepository{
		client: client,
	}
}

func movesKey(gameID string) string {
	return movesKeyPrefix + gameID
}

func (that *MoveRepository) Append(ctx context.Context, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.RPush(ctx, movesKey(move.GameID), moveJSON).Err(); err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	return nil
}

func (that *MoveRepository) ListByGame(ctx context.Context, gameID string) ([]entity.Move, error) {
	rows, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves := make([]entity.Move, 0, len(rows))
	for _, row := range rows {
		var move entity.Move
		if err = json.Unmarshal([]byte(row), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func (that *MoveRepository) CountByGame(ctx context.Context, gameID string) (int, error) {
	count, err := that.client.LLen(ctx, movesKey(gameID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}

	return int(count), nil
}
