package cache

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const (
	DefaultMoveTTL = time.Hour

	moveKeyPrefix = "move:"
)

// MoveCache remembers the response of an applied move under its signature.
type MoveCache struct {
	backend Backend
}

func NewMoveCache(backend Backend) *MoveCache {
	return &MoveCache{
		backend: backend,
	}
}

// Get - returns the cached result; ok is false on a miss or expired entry.
func (that *MoveCache) Get(ctx context.Context, sig entity.Signature) (*entity.CachedMoveResult, bool, error) {
	raw, err := that.backend.Get(ctx, MoveKey(sig))
	if errors.Is(err, ErrMiss) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached move: %w", err)
	}

	var result entity.CachedMoveResult
	if err = json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached move: %w", err)
	}

	return &result, true, nil
}

func (that *MoveCache) Put(ctx context.Context, sig entity.Signature, response entity.MoveResult, etag string, ttl time.Duration) error {
	raw, err := json.Marshal(entity.CachedMoveResult{
		Response: response,
		ETag:     etag,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cached move: %w", err)
	}

	if err = that.backend.Set(ctx, MoveKey(sig), raw, ttl); err != nil {
		return fmt.Errorf("failed to cache move: %w", err)
	}

	return nil
}

// MoveKey - "move:" followed by the base64 sha256 of the signature.
func MoveKey(sig entity.Signature) string {
	sum := sha256.Sum256([]byte(sig.String()))

	return moveKeyPrefix + base64.StdEncoding.EncodeToString(sum[:])
}
