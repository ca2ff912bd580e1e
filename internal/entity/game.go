package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	EmptyCell = '-'

	DefaultBoardSize        = 3
	DefaultWinnerLineLength = 3
	DefaultSignChangeChance = 10
)

var (
	ErrUnknownGameStatus   = errors.New("unknown game status")
	ErrInvalidGameSettings = errors.New("invalid game settings")
)

// MaxBoardSize bounds N so that a board stays a reasonable row in every store.
const MaxBoardSize = 100

// Status is the lifecycle state of a game.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusXWon       Status = "XWon"
	StatusOWon       Status = "OWon"
	StatusDraw       Status = "Draw"
)

func ParseStatus(raw string) (Status, error) {
	switch status := Status(raw); status {
	case StatusInProgress, StatusXWon, StatusOWon, StatusDraw:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownGameStatus, raw)
	}
}

// WonBy returns the terminal status for a game won by the given player.
func WonBy(player Player) Status {
	if player == PlayerX {
		return StatusXWon
	}

	return StatusOWon
}

// Settings are the tunables a game is created with.
type Settings struct {
	BoardSize        int `json:"boardSize" yaml:"board-size"`
	WinnerLineLength int `json:"winnerLineLength" yaml:"winner-line-length"`
	SignChangeChance int `json:"signChangeChance" yaml:"sign-change-chance"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:        DefaultBoardSize,
		WinnerLineLength: DefaultWinnerLineLength,
		SignChangeChance: DefaultSignChangeChance,
	}
}

func (that Settings) Validate() error {
	switch {
	case that.BoardSize < 2 || that.BoardSize > MaxBoardSize:
		return fmt.Errorf("%w: board size %d", ErrInvalidGameSettings, that.BoardSize)
	case that.WinnerLineLength < 2 || that.WinnerLineLength > that.BoardSize:
		return fmt.Errorf("%w: winner line length %d for board size %d", ErrInvalidGameSettings, that.WinnerLineLength, that.BoardSize)
	case that.SignChangeChance < 0 || that.SignChangeChance > 100:
		return fmt.Errorf("%w: sign change chance %d", ErrInvalidGameSettings, that.SignChangeChance)
	default:
		return nil
	}
}

// SettingsOverrides replaces the non-nil fields of a Settings.
type SettingsOverrides struct {
	BoardSize        *int
	WinnerLineLength *int
	SignChangeChance *int
}

func (that SettingsOverrides) Apply(settings Settings) Settings {
	if that.BoardSize != nil {
		settings.BoardSize = *that.BoardSize
	}
	if that.WinnerLineLength != nil {
		settings.WinnerLineLength = *that.WinnerLineLength
	}
	if that.SignChangeChance != nil {
		settings.SignChangeChance = *that.SignChangeChance
	}

	return settings
}

type Game struct {
	ID               string    `json:"id"`
	BoardSize        int       `json:"board_size"`
	BoardState       string    `json:"board_state"`
	CurrentPlayer    Player    `json:"current_player"`
	Status           Status    `json:"status"`
	WinnerLineLength int       `json:"winner_line_length"`
	SignChangeChance int       `json:"sign_change_chance"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewGame - returns a fresh game with an empty board and X to move.
func NewGame(id string, settings Settings, now time.Time) *Game {
	return &Game{
		ID:               id,
		BoardSize:        settings.BoardSize,
		BoardState:       strings.Repeat(string(EmptyCell), settings.BoardSize*settings.BoardSize),
		CurrentPlayer:    PlayerX,
		Status:           StatusInProgress,
		WinnerLineLength: settings.WinnerLineLength,
		SignChangeChance: settings.SignChangeChance,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusXWon || that.Status == StatusOWon || that.Status == StatusDraw
}

// Position - linear index of (row, col) on the flat board.
func (that *Game) Position(row, col int) int {
	return row*that.BoardSize + col
}

// MarkAt - the player whose symbol is at (row, col), false for an empty or out of range cell.
func (that *Game) MarkAt(row, col int) (Player, bool) {
	if row < 0 || col < 0 || row >= that.BoardSize || col >= that.BoardSize {
		return "", false
	}

	pos := that.Position(row, col)
	if pos >= len(that.BoardState) {
		return "", false
	}

	player, err := ParsePlayer(string(that.BoardState[pos]))
	if err != nil {
		return "", false
	}

	return player, true
}

// PlaceMark - writes the player's symbol at (row, col). Bounds are checked by the rules package.
func (that *Game) PlaceMark(player Player, row, col int) {
	cells := []byte(that.BoardState)
	cells[that.Position(row, col)] = player.Symbol()
	that.BoardState = string(cells)
}

// TogglePlayer - hands the turn over to the other player.
func (that *Game) TogglePlayer() {
	that.CurrentPlayer = that.CurrentPlayer.Opponent()
}
