// Package memory keeps games and moves in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type GameStore struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]entity.Game),
	}
}

func (that *GameStore) Create(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[game.ID]; ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	that.games[game.ID] = *game

	return nil
}

func (that *GameStore) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return &game, nil
}

func (that *GameStore) Save(_ context.Context, game *entity.Game, expectedVersion int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.games[game.ID]
	if !ok {
		return apperror.ErrGameNotFound
	}

	if stored.Version != expectedVersion {
		return apperror.ErrVersionConflict
	}

	game.Version = expectedVersion + 1
	that.games[game.ID] = *game

	return nil
}

type MoveLog struct {
	mu    sync.RWMutex
	moves map[string][]entity.Move
}

func NewMoveLog() *MoveLog {
	return &MoveLog{
		moves: make(map[string][]entity.Move),
	}
}

func (that *MoveLog) Append(_ context.Context, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[move.GameID] = append(that.moves[move.GameID], move)

	return nil
}

func (that *MoveLog) ListByGame(_ context.Context, gameID string) ([]entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return append([]entity.Move{}, that.moves[gameID]...), nil
}

func (that *MoveLog) CountByGame(_ context.Context, gameID string) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.moves[gameID]), nil
}
