package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/cache"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/movegate"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/memory"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
)

var fixedTime = time.Date(2025, 7, 14, 8, 24, 29, 0, time.UTC)

// quietRoller never triggers a sign change.
type quietRoller struct{}

func (quietRoller) Intn(int) int { return 99 }

func newMemoryServer() *Server {
	logger := discardLogger()

	games := memory.NewGameStore()
	moves := memory.NewMoveLog()

	gameUseCase := usecase.NewGameUseCase(service.NewGameService(logger, games, entity.DefaultSettings()))
	moveUseCase := usecase.NewMoveUseCase(
		logger,
		movegate.New(),
		cache.NewMoveCache(cache.NewMemory()),
		service.NewMoveService(logger, games, moves, quietRoller{}),
		usecase.MoveOptions{},
	)

	return New(logger, gameUseCase, moveUseCase)
}

func moveBody(player entity.Player, row, col int) string {
	return fmt.Sprintf(`{"player":%q,"row":%d,"col":%d}`, player, row, col)
}

func TestServer_FullGame(t *testing.T) {
	server := newMemoryServer()

	// Given: a freshly created game
	rec := doRequest(t, server, http.MethodPost, "/api/games", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created createdGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	movesPath := "/api/games/" + created.ID + "/moves"

	// When: X fills the top row while O plays the middle row
	turns := []entity.MoveRequest{
		{Player: entity.PlayerX, Row: 0, Col: 0},
		{Player: entity.PlayerO, Row: 1, Col: 0},
		{Player: entity.PlayerX, Row: 0, Col: 1},
		{Player: entity.PlayerO, Row: 1, Col: 1},
		{Player: entity.PlayerX, Row: 0, Col: 2},
	}

	var lastETag, lastBody string
	for _, turn := range turns {
		rec = doRequest(t, server, http.MethodPost, movesPath, moveBody(turn.Player, turn.Row, turn.Col), nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		lastETag, lastBody = rec.Header().Get("ETag"), rec.Body.String()
	}

	// Then: X has won
	assert.JSONEq(t, `{"newBoardState":"XXXOO----","status":"XWon"}`, lastBody)

	t.Run("Repeating the winning move returns the cached result", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, movesPath, moveBody(entity.PlayerX, 0, 2), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, lastETag, rec.Header().Get("ETag"))
		assert.JSONEq(t, lastBody, rec.Body.String())
	})

	t.Run("A new move on a finished game conflicts", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, movesPath, moveBody(entity.PlayerO, 2, 2), nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("History has every applied move once", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, movesPath, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var history []moveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
		require.Len(t, history, len(turns))

		for i, turn := range turns {
			assert.Equal(t, turn.Player, history[i].Player)
			assert.Equal(t, turn.Row, history[i].Row)
			assert.Equal(t, turn.Col, history[i].Col)
		}
	})

	t.Run("Game state is readable", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodGet, "/api/games/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var game gameResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))
		assert.Equal(t, "XXXOO----", game.BoardState)
		assert.Equal(t, entity.StatusXWon, game.Status)
	})
}

func TestServer_RejectedMoves(t *testing.T) {
	server := newMemoryServer()

	rec := doRequest(t, server, http.MethodPost, "/api/games", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created createdGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	movesPath := "/api/games/" + created.ID + "/moves"

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{"wrong player", moveBody(entity.PlayerO, 0, 0), "Wrong player"},
		{"row out of range", moveBody(entity.PlayerX, 3, 0), "Incorrect row"},
		{"column out of range", moveBody(entity.PlayerX, 0, -1), "Incorrect column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, http.MethodPost, movesPath, tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.detail, decodeProblem(t, rec).Detail)
		})
	}

	t.Run("Unknown game", func(t *testing.T) {
		rec := doRequest(t, server, http.MethodPost, "/api/games/missing/moves", moveBody(entity.PlayerX, 0, 0), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
