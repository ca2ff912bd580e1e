package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: a creation time
	now := time.Date(2025, 7, 14, 8, 24, 29, 0, time.UTC)

	// When: creating a 4x4 game
	game := NewGame("123", Settings{BoardSize: 4, WinnerLineLength: 3, SignChangeChance: 10}, now)

	// Then: the board is empty and X moves first
	expectedGame := &Game{
		ID:               "123",
		BoardSize:        4,
		BoardState:       "----------------",
		CurrentPlayer:    PlayerX,
		Status:           StatusInProgress,
		WinnerLineLength: 3,
		SignChangeChance: 10,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	require.Equal(t, expectedGame, game)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsInProgress returns true when game is in progress", func(t *testing.T) {
		// Given: a game with StatusInProgress
		game := &Game{Status: StatusInProgress}

		// Then: it is in progress and not finished
		assert.True(t, game.IsInProgress())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true for every terminal status", func(t *testing.T) {
		for _, status := range []Status{StatusXWon, StatusOWon, StatusDraw} {
			// Given: a game with a terminal status
			game := &Game{Status: status}

			// Then: it is finished
			assert.True(t, game.IsFinished(), status)
			assert.False(t, game.IsInProgress(), status)
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("Known status", func(t *testing.T) {
		status, err := ParseStatus("OWon")

		require.NoError(t, err)
		assert.Equal(t, StatusOWon, status)
	})

	t.Run("Unknown status", func(t *testing.T) {
		_, err := ParseStatus("finished")

		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "finished")
	})
}

func TestGame_PlaceMark(t *testing.T) {
	// Given: an empty 3x3 game
	game := NewGame("123", Settings{BoardSize: 3, WinnerLineLength: 3}, time.Now())

	// When: X and O place marks
	game.PlaceMark(PlayerX, 1, 1)
	game.PlaceMark(PlayerO, 2, 0)

	// Then: the flat board reflects both marks
	assert.Equal(t, "----X-O--", game.BoardState)
}

func TestGame_MarkAt(t *testing.T) {
	game := NewGame("g1", DefaultSettings(), time.Time{})
	game.PlaceMark(PlayerO, 1, 1)

	mark, ok := game.MarkAt(1, 1)
	assert.True(t, ok)
	assert.Equal(t, PlayerO, mark)

	_, ok = game.MarkAt(0, 0)
	assert.False(t, ok)

	_, ok = game.MarkAt(3, 0)
	assert.False(t, ok)

	_, ok = game.MarkAt(0, -1)
	assert.False(t, ok)
}

func TestGame_TogglePlayer(t *testing.T) {
	game := &Game{CurrentPlayer: PlayerX}

	game.TogglePlayer()
	assert.Equal(t, PlayerO, game.CurrentPlayer)

	game.TogglePlayer()
	assert.Equal(t, PlayerX, game.CurrentPlayer)
}

func TestWonBy(t *testing.T) {
	assert.Equal(t, StatusXWon, WonBy(PlayerX))
	assert.Equal(t, StatusOWon, WonBy(PlayerO))
}

func TestParsePlayer(t *testing.T) {
	player, err := ParsePlayer("O")
	require.NoError(t, err)
	assert.Equal(t, PlayerO, player)

	_, err = ParsePlayer("Z")
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestMoveETag(t *testing.T) {
	t.Run("Same board and move give the same tag", func(t *testing.T) {
		move := MoveRequest{Player: PlayerX, Row: 0, Col: 1}

		first, err := MoveETag("-X-------", move)
		require.NoError(t, err)

		second, err := MoveETag("-X-------", move)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})

	t.Run("Different move gives a different tag", func(t *testing.T) {
		first, err := MoveETag("-X-------", MoveRequest{Player: PlayerX, Row: 0, Col: 1})
		require.NoError(t, err)

		second, err := MoveETag("-X-------", MoveRequest{Player: PlayerO, Row: 0, Col: 1})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestSignature_String(t *testing.T) {
	sig := NewSignature("g1", MoveRequest{Player: PlayerO, Row: 2, Col: 1})
	assert.Equal(t, "g1:O:2:1", sig.String())

	sig.IdempotencyKey = "req-42"
	assert.Equal(t, "g1:req-42", sig.String())
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "defaults", settings: DefaultSettings()},
		{name: "line equals board", settings: Settings{BoardSize: 5, WinnerLineLength: 5, SignChangeChance: 100}},
		{name: "board too small", settings: Settings{BoardSize: 1, WinnerLineLength: 1}, wantErr: true},
		{name: "line longer than board", settings: Settings{BoardSize: 3, WinnerLineLength: 4}, wantErr: true},
		{name: "line too short", settings: Settings{BoardSize: 3, WinnerLineLength: 1}, wantErr: true},
		{name: "negative chance", settings: Settings{BoardSize: 3, WinnerLineLength: 3, SignChangeChance: -1}, wantErr: true},
		{name: "chance above 100", settings: Settings{BoardSize: 3, WinnerLineLength: 3, SignChangeChance: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGameSettings)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSettingsOverrides_Apply(t *testing.T) {
	size := 5

	settings := SettingsOverrides{BoardSize: &size}.Apply(DefaultSettings())

	assert.Equal(t, Settings{BoardSize: 5, WinnerLineLength: 3, SignChangeChance: 10}, settings)
	assert.Equal(t, DefaultSettings(), SettingsOverrides{}.Apply(DefaultSettings()))
}
