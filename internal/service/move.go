package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/tictactoe"
)

// signChangeEvery - a sign change may only happen on every third move, starting with the third.
const signChangeEvery = 3

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

// Roller draws a uniform integer in [0, n). Implementations must be safe for concurrent use.
type Roller interface {
	Intn(n int) int
}

type frandRoller struct{}

func (frandRoller) Intn(n int) int {
	return frand.Intn(n)
}

// NewRoller - returns the default Roller backed by frand.
func NewRoller() Roller {
	return frandRoller{}
}

type MoveService struct {
	logger *slog.Logger

	games  gameStore
	moves  moveLog
	roller Roller
	now    func() time.Time
}

func NewMoveService(logger *slog.Logger, games gameStore, moves moveLog, roller Roller) *MoveService {
	if roller == nil {
		roller = NewRoller()
	}

	return &MoveService{
		logger: logger.With("component", "move-service"),
		games:  games,
		moves:  moves,
		roller: roller,
		now:    time.Now,
	}
}

// MakeMove - validates the move, applies it to the game and persists the result.
func (that *MoveService) MakeMove(ctx context.Context, gameID string, move entity.MoveRequest) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if ok, reason := tictactoe.IsValidMove(game, move); !ok {
		return nil, apperror.NewInvalidMoveError(reason)
	}

	game.TogglePlayer()

	count, err := that.moves.CountByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to count moves: %w", err)
	}

	credited := move.Player
	if count%signChangeEvery == signChangeEvery-1 && that.roller.Intn(100) < game.SignChangeChance {
		credited = credited.Opponent()
		log.Debug("sign changed", "requested", move.Player, "credited", credited)
	}

	game.PlaceMark(credited, move.Row, move.Col)
	game.Status = tictactoe.GameStatus(game.BoardState, game.BoardSize, game.WinnerLineLength)

	now := that.now().UTC()
	game.UpdatedAt = now

	// the version check runs before the move is logged so a lost race leaves no orphan move
	if err = that.games.Save(ctx, game, game.Version); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	record := entity.Move{
		GameID:   gameID,
		Row:      move.Row,
		Col:      move.Col,
		Player:   credited,
		MoveTime: now,
	}
	if err = that.moves.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append move: %w", err)
	}

	log.Debug("move applied", "row", move.Row, "col", move.Col, "player", credited, "status", game.Status)

	return game, nil
}

// History - moves of a game ordered by time.
func (that *MoveService) History(ctx context.Context, gameID string) ([]entity.Move, error) {
	if _, err := that.games.GetByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	moves, err := that.moves.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return moves, nil
}
