package entity

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Move is a recorded, immutable turn. Player is the one credited with the mark,
// which may differ from the requesting player after a sign change.
type Move struct {
	GameID   string    `json:"game_id"`
	Row      int       `json:"row"`
	Col      int       `json:"col"`
	Player   Player    `json:"player"`
	MoveTime time.Time `json:"move_time"`
}

// MoveRequest is the move as submitted by a client.
type MoveRequest struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Signature identifies a move request for gating and idempotency lookup.
type Signature struct {
	GameID string
	Move   MoveRequest

	// IdempotencyKey is an optional client token. When set it replaces the
	// move coordinates in the idempotency key.
	IdempotencyKey string
}

func NewSignature(gameID string, move MoveRequest) Signature {
	return Signature{GameID: gameID, Move: move}
}

func (that Signature) String() string {
	if that.IdempotencyKey != "" {
		return fmt.Sprintf("%s:%s", that.GameID, that.IdempotencyKey)
	}

	return fmt.Sprintf("%s:%s:%d:%d", that.GameID, that.Move.Player, that.Move.Row, that.Move.Col)
}

// MoveResult is the response body of an applied move.
type MoveResult struct {
	NewBoardState string `json:"newBoardState"`
	Status        Status `json:"status"`
}

type CachedMoveResult struct {
	Response MoveResult `json:"response"`
	ETag     string     `json:"etag"`
}

// MoveETag - content hash over the resulting board and the move that produced it.
// The game id is not part of the hash.
func MoveETag(boardState string, move MoveRequest) (string, error) {
	payload := struct {
		Board string
		Move  struct {
			Player Player
			Row    int
			Col    int
		}
	}{Board: boardState}
	payload.Move.Player = move.Player
	payload.Move.Row = move.Row
	payload.Move.Col = move.Col

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal etag payload: %w", err)
	}

	sum := sha256.Sum256(raw)

	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
