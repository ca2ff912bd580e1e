package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownPlayer = errors.New("unknown player")

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

func ParsePlayer(raw string) (Player, error) {
	switch player := Player(raw); player {
	case PlayerX, PlayerO:
		return player, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, raw)
	}
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Symbol - board cell byte for the player.
func (that Player) Symbol() byte {
	if len(that) == 0 {
		return EmptyCell
	}
	return that[0]
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}
