package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

var errBackendDown = errors.New("backend down")

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errBackendDown
}

func (brokenBackend) Set(context.Context, string, []byte, time.Duration) error {
	return errBackendDown
}

func (brokenBackend) Delete(context.Context, string) error {
	return errBackendDown
}

func TestMoveCache_PutGet(t *testing.T) {
	ctx := context.Background()
	sig := entity.NewSignature("game-1", entity.MoveRequest{Player: entity.PlayerX, Row: 0, Col: 1})
	response := entity.MoveResult{NewBoardState: "-X-------", Status: entity.StatusInProgress}

	t.Run("Cached result comes back with its etag", func(t *testing.T) {
		// Given: a stored move result
		moveCache := NewMoveCache(NewMemory())
		require.NoError(t, moveCache.Put(ctx, sig, response, "etag-1", DefaultMoveTTL))

		// When: looking up the same signature
		cached, ok, err := moveCache.Get(ctx, sig)

		// Then: the response and etag are returned
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, response, cached.Response)
		assert.Equal(t, "etag-1", cached.ETag)
	})

	t.Run("Other signature misses", func(t *testing.T) {
		moveCache := NewMoveCache(NewMemory())
		require.NoError(t, moveCache.Put(ctx, sig, response, "etag-1", DefaultMoveTTL))

		other := sig
		other.Move.Col = 2
		cached, ok, err := moveCache.Get(ctx, other)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, cached)
	})

	t.Run("Expired result misses", func(t *testing.T) {
		backend, clock := newMemoryWithClock()
		moveCache := NewMoveCache(backend)
		require.NoError(t, moveCache.Put(ctx, sig, response, "etag-1", time.Hour))

		clock.Advance(time.Hour + time.Second)
		_, ok, err := moveCache.Get(ctx, sig)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Backend errors are wrapped", func(t *testing.T) {
		moveCache := NewMoveCache(brokenBackend{})

		_, _, err := moveCache.Get(ctx, sig)
		require.ErrorIs(t, err, errBackendDown)

		err = moveCache.Put(ctx, sig, response, "etag", DefaultMoveTTL)
		require.ErrorIs(t, err, errBackendDown)
	})

	t.Run("Corrupted entry is an error", func(t *testing.T) {
		backend := NewMemory()
		require.NoError(t, backend.Set(ctx, MoveKey(sig), []byte("{not json"), time.Hour))

		_, ok, err := NewMoveCache(backend).Get(ctx, sig)

		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestMoveKey(t *testing.T) {
	sig := entity.NewSignature("game-1", entity.MoveRequest{Player: entity.PlayerX, Row: 0, Col: 1})

	key := MoveKey(sig)

	assert.True(t, strings.HasPrefix(key, "move:"))
	assert.Equal(t, key, MoveKey(sig))

	sig.IdempotencyKey = "req-1"
	assert.NotEqual(t, key, MoveKey(sig))
}
