package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/cache"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/movegate"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-api/mocks/usecase"
)

var (
	errSomeError = errors.New("some error")
	errRedisDown = errors.New("redis down")

	fixedTime = time.Date(2025, 7, 14, 8, 24, 29, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testSignature() entity.Signature {
	return entity.NewSignature("g1", entity.MoveRequest{Player: entity.PlayerX, Row: 1, Col: 1})
}

func TestMoveUseCase_MakeMove(t *testing.T) {
	ctx := context.Background()
	sig := testSignature()

	t.Run("Cache miss runs the engine and caches the result", func(t *testing.T) {
		// Given: an empty cache and an engine applying the move
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		wantETag, err := entity.MoveETag("----X----", sig.Move)
		require.NoError(t, err)
		response := entity.MoveResult{NewBoardState: "----X----", Status: entity.StatusInProgress}

		moveCache.EXPECT().Get(ctx, sig).Return(nil, false, nil).Once()
		engine.EXPECT().
			MakeMove(ctx, "g1", sig.Move).
			Return(&entity.Game{ID: "g1", BoardSize: 3, BoardState: "----X----", Status: entity.StatusInProgress}, nil).
			Once()
		moveCache.EXPECT().Put(ctx, sig, response, wantETag, DefaultResultTTL).Return(nil).Once()

		// When: the move is submitted
		result, err := useCase.MakeMove(ctx, sig)

		// Then: the response and etag come back and the gate is empty
		require.NoError(t, err)
		assert.Equal(t, response, result.Response)
		assert.Equal(t, wantETag, result.ETag)
		assert.Equal(t, 0, gate.Len())
	})

	t.Run("ETag covers the credited player after a sign change", func(t *testing.T) {
		// Given: X asked for the center but the engine credited O
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		credited := entity.MoveRequest{Player: entity.PlayerO, Row: 1, Col: 1}
		wantETag, err := entity.MoveETag("----O----", credited)
		require.NoError(t, err)
		requestedETag, err := entity.MoveETag("----O----", sig.Move)
		require.NoError(t, err)

		moveCache.EXPECT().Get(ctx, sig).Return(nil, false, nil).Once()
		engine.EXPECT().
			MakeMove(ctx, "g1", sig.Move).
			Return(&entity.Game{ID: "g1", BoardSize: 3, BoardState: "----O----", Status: entity.StatusInProgress}, nil).
			Once()
		moveCache.EXPECT().Put(ctx, sig, mock.Anything, wantETag, DefaultResultTTL).Return(nil).Once()

		// When: the move is submitted
		result, err := useCase.MakeMove(ctx, sig)

		// Then: the tag is computed over the O mark, still cached under the X request
		require.NoError(t, err)
		assert.Equal(t, wantETag, result.ETag)
		assert.NotEqual(t, requestedETag, result.ETag)
	})

	t.Run("Cache hit skips the engine", func(t *testing.T) {
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		cached := &entity.CachedMoveResult{
			Response: entity.MoveResult{NewBoardState: "----X----", Status: entity.StatusInProgress},
			ETag:     "etag",
		}
		moveCache.EXPECT().Get(ctx, sig).Return(cached, true, nil).Once()

		result, err := useCase.MakeMove(ctx, sig)

		require.NoError(t, err)
		assert.Equal(t, cached, result)
	})

	t.Run("Cache write failure does not fail the move", func(t *testing.T) {
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		moveCache.EXPECT().Get(ctx, sig).Return(nil, false, nil).Once()
		engine.EXPECT().
			MakeMove(ctx, "g1", sig.Move).
			Return(&entity.Game{ID: "g1", BoardSize: 3, BoardState: "----X----", Status: entity.StatusInProgress}, nil).
			Once()
		moveCache.EXPECT().
			Put(ctx, sig, mock.Anything, mock.Anything, DefaultResultTTL).
			Return(errRedisDown).
			Once()

		result, err := useCase.MakeMove(ctx, sig)

		require.NoError(t, err)
		assert.Equal(t, "----X----", result.Response.NewBoardState)
	})

	t.Run("Cache read failure falls through to the engine", func(t *testing.T) {
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		moveCache.EXPECT().Get(ctx, sig).Return(nil, false, errRedisDown).Once()
		engine.EXPECT().
			MakeMove(ctx, "g1", sig.Move).
			Return(&entity.Game{ID: "g1", BoardSize: 3, BoardState: "----X----", Status: entity.StatusInProgress}, nil).
			Once()
		moveCache.EXPECT().Put(ctx, sig, mock.Anything, mock.Anything, DefaultResultTTL).Return(nil).Once()

		_, err := useCase.MakeMove(ctx, sig)

		require.NoError(t, err)
	})

	t.Run("Engine error is wrapped and the gate released", func(t *testing.T) {
		// Given: an engine rejecting the move
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{})

		moveCache.EXPECT().Get(ctx, sig).Return(nil, false, nil).Once()
		engine.EXPECT().
			MakeMove(ctx, "g1", sig.Move).
			Return(nil, apperror.NewInvalidMoveError(apperror.ReasonWrongPlayer)).
			Once()

		// When: the move is submitted
		result, err := useCase.MakeMove(ctx, sig)

		// Then: the rules error surfaces, nothing is cached and the gate is clean
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Nil(t, result)
		assert.Equal(t, 0, gate.Len())
	})

	t.Run("Busy gate maps to server busy", func(t *testing.T) {
		// Given: the game key is held by another request
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{LockTimeout: 20 * time.Millisecond})

		held, err := gate.Acquire(ctx, GateScopeGame.key(sig), time.Second)
		require.NoError(t, err)
		defer held.Release()

		// When: a move for the same game arrives
		_, err = useCase.MakeMove(ctx, sig)

		// Then: the caller is told to retry
		require.ErrorIs(t, err, apperror.ErrServerBusy)
	})

	t.Run("Signature scope lets different moves of a game through", func(t *testing.T) {
		gate := movegate.New()
		moveCache := mockedUseCase.NewMockmoveCache(t)
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), gate, moveCache, engine, MoveOptions{
			LockTimeout: 20 * time.Millisecond,
			Scope:       GateScopeSignature,
		})

		other := sig
		other.Move.Col = 2
		held, err := gate.Acquire(ctx, GateScopeSignature.key(other), time.Second)
		require.NoError(t, err)
		defer held.Release()

		cached := &entity.CachedMoveResult{ETag: "etag"}
		moveCache.EXPECT().Get(ctx, sig).Return(cached, true, nil).Once()

		result, err := useCase.MakeMove(ctx, sig)

		require.NoError(t, err)
		assert.Equal(t, cached, result)
	})
}

func TestMoveUseCase_MakeMove_Idempotent(t *testing.T) {
	ctx := context.Background()
	sig := testSignature()

	// Given: a real cache and an engine that may only run once
	engine := mockedUseCase.NewMockmoveEngine(t)
	useCase := NewMoveUseCase(discardLogger(), movegate.New(), cache.NewMoveCache(cache.NewMemory()), engine, MoveOptions{})

	var calls atomic.Int32
	engine.EXPECT().
		MakeMove(mock.Anything, "g1", sig.Move).
		RunAndReturn(func(context.Context, string, entity.MoveRequest) (*entity.Game, error) {
			calls.Add(1)
			time.Sleep(5 * time.Millisecond)
			return &entity.Game{ID: "g1", BoardSize: 3, BoardState: "----X----", Status: entity.StatusInProgress}, nil
		}).
		Once()

	// When: the same request arrives concurrently
	results := make([]*entity.CachedMoveResult, 8)
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range results {
		group.Go(func() error {
			result, err := useCase.MakeMove(groupCtx, sig)
			results[i] = result
			return err
		})
	}
	require.NoError(t, group.Wait())

	// Then: the move was applied once and every caller saw the same response
	assert.Equal(t, int32(1), calls.Load())
	for _, result := range results {
		assert.Equal(t, results[0], result)
	}
}

func TestMoveUseCase_History(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns engine history", func(t *testing.T) {
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), movegate.New(), mockedUseCase.NewMockmoveCache(t), engine, MoveOptions{})

		history := []entity.Move{{GameID: "g1", Player: entity.PlayerX}}
		engine.EXPECT().History(ctx, "g1").Return(history, nil).Once()

		got, err := useCase.History(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, history, got)
	})

	t.Run("Wraps engine errors", func(t *testing.T) {
		engine := mockedUseCase.NewMockmoveEngine(t)
		useCase := NewMoveUseCase(discardLogger(), movegate.New(), mockedUseCase.NewMockmoveCache(t), engine, MoveOptions{})

		engine.EXPECT().History(ctx, "g1").Return(nil, errSomeError).Once()

		_, err := useCase.History(ctx, "g1")

		require.ErrorIs(t, err, errSomeError)
	})
}

func TestParseGateScope(t *testing.T) {
	scope, err := ParseGateScope("signature")
	require.NoError(t, err)
	assert.Equal(t, GateScopeSignature, scope)

	_, err = ParseGateScope("table")
	require.ErrorIs(t, err, ErrUnknownGateScope)
}
