package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/movegate"
)

const (
	DefaultLockTimeout = 5 * time.Second
	DefaultResultTTL   = time.Hour
)

var ErrUnknownGateScope = errors.New("unknown gate scope")

// GateScope selects what a move is serialized against.
type GateScope string

const (
	// GateScopeGame allows one writer per game.
	GateScopeGame GateScope = "game"
	// GateScopeSignature serializes only identical move requests.
	GateScopeSignature GateScope = "signature"
)

func ParseGateScope(raw string) (GateScope, error) {
	switch scope := GateScope(raw); scope {
	case GateScopeGame, GateScopeSignature:
		return scope, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGateScope, raw)
	}
}

func (that GateScope) key(sig entity.Signature) string {
	if that == GateScopeSignature {
		return "sig:" + sig.String()
	}

	return "game:" + sig.GameID
}

type moveEngine interface {
	MakeMove(ctx context.Context, gameID string, move entity.MoveRequest) (*entity.Game, error)
	History(ctx context.Context, gameID string) ([]entity.Move, error)
}

type moveCache interface {
	Get(ctx context.Context, sig entity.Signature) (*entity.CachedMoveResult, bool, error)
	Put(ctx context.Context, sig entity.Signature, response entity.MoveResult, etag string, ttl time.Duration) error
}

type MoveOptions struct {
	LockTimeout time.Duration
	ResultTTL   time.Duration
	Scope       GateScope
}

type MoveUseCase struct {
	logger *slog.Logger

	gate    *movegate.Gate
	cache   moveCache
	engine  moveEngine
	options MoveOptions
}

func NewMoveUseCase(logger *slog.Logger, gate *movegate.Gate, cache moveCache, engine moveEngine, options MoveOptions) *MoveUseCase {
	if options.LockTimeout <= 0 {
		options.LockTimeout = DefaultLockTimeout
	}
	if options.ResultTTL <= 0 {
		options.ResultTTL = DefaultResultTTL
	}
	if options.Scope == "" {
		options.Scope = GateScopeGame
	}

	return &MoveUseCase{
		logger:  logger.With("component", "move-usecase"),
		gate:    gate,
		cache:   cache,
		engine:  engine,
		options: options,
	}
}

// MakeMove - applies a move at most once per signature and returns the response with its ETag.
func (that *MoveUseCase) MakeMove(ctx context.Context, sig entity.Signature) (*entity.CachedMoveResult, error) {
	log := that.logger.With("method", "MakeMove", "gameID", sig.GameID)

	handle, err := that.gate.Acquire(ctx, that.options.Scope.key(sig), that.options.LockTimeout)
	if errors.Is(err, movegate.ErrBusy) {
		log.Warn("move gate is busy", "timeout", that.options.LockTimeout)
		return nil, apperror.ErrServerBusy
	}

	if err != nil {
		return nil, fmt.Errorf("failed to acquire move gate: %w", err)
	}
	defer handle.Release()

	cached, ok, err := that.cache.Get(ctx, sig)
	if err != nil {
		log.Warn("failed to read cached move", "error", err)
	}

	if ok {
		log.Debug("returning cached move result")
		return cached, nil
	}

	game, err := that.engine.MakeMove(ctx, sig.GameID, sig.Move)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	response := entity.MoveResult{
		NewBoardState: game.BoardState,
		Status:        game.Status,
	}

	// after a sign change the cell holds the opponent's mark, which is the move that produced the board
	produced := sig.Move
	if mark, ok := game.MarkAt(produced.Row, produced.Col); ok {
		produced.Player = mark
	}

	etag, err := entity.MoveETag(response.NewBoardState, produced)
	if err != nil {
		return nil, fmt.Errorf("failed to compute etag: %w", err)
	}

	// the game is already persisted, so a cache failure only costs idempotency
	if err = that.cache.Put(ctx, sig, response, etag, that.options.ResultTTL); err != nil {
		log.Warn("failed to cache move result", "error", err)
	}

	return &entity.CachedMoveResult{Response: response, ETag: etag}, nil
}

func (that *MoveUseCase) History(ctx context.Context, gameID string) ([]entity.Move, error) {
	moves, err := that.engine.History(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get move history: %w", err)
	}

	return moves, nil
}
