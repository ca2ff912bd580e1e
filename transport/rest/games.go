package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, overrides entity.SettingsOverrides) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
}

type createGameRequest struct {
	BoardSize        *int `json:"boardSize" validate:"omitempty,min=2,max=100"`
	WinnerLineLength *int `json:"winnerLineLength" validate:"omitempty,min=2,max=100"`
	SignChangeChance *int `json:"signChangeChance" validate:"omitempty,min=0,max=100"`
}

type createdGameResponse struct {
	ID        string        `json:"id"`
	BoardSize int           `json:"boardSize"`
	Status    entity.Status `json:"status"`
}

type gameResponse struct {
	BoardSize        int           `json:"boardSize"`
	BoardState       string        `json:"boardState"`
	CurrentPlayer    entity.Player `json:"currentPlayer"`
	Status           entity.Status `json:"status"`
	WinnerLineLength int           `json:"winnerLineLength"`
	SignChangeChance int           `json:"signChangeChance"`
}

type gameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func newGameHandler(logger *slog.Logger, games gameUseCase) *gameHandler {
	return &gameHandler{
		logger: logger,
		games:  games,
	}
}

// CreateGame - POST /api/games, every body field is optional.
func (that *gameHandler) CreateGame(c echo.Context) error {
	log := that.logger.With("method", "CreateGame")

	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return writeErr(c, fmt.Errorf("%w: %s", apperror.ErrMalformedRequest, bindMessage(err)))
	}

	if err := c.Validate(&req); err != nil {
		return writeErr(c, fmt.Errorf("%w: %w", apperror.ErrMalformedRequest, err))
	}

	game, err := that.games.CreateGame(c.Request().Context(), entity.SettingsOverrides{
		BoardSize:        req.BoardSize,
		WinnerLineLength: req.WinnerLineLength,
		SignChangeChance: req.SignChangeChance,
	})
	if err != nil {
		log.Warn("failed to create game", "error", err)
		return writeErr(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/games/"+game.ID)

	return c.JSON(http.StatusCreated, createdGameResponse{
		ID:        game.ID,
		BoardSize: game.BoardSize,
		Status:    game.Status,
	})
}

// GetGame - GET /api/games/:id.
func (that *gameHandler) GetGame(c echo.Context) error {
	game, err := that.games.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		that.logger.Warn("failed to get game", "method", "GetGame", "gameID", c.Param("id"), "error", err)
		return writeErr(c, err)
	}

	return c.JSON(http.StatusOK, gameResponse{
		BoardSize:        game.BoardSize,
		BoardState:       game.BoardState,
		CurrentPlayer:    game.CurrentPlayer,
		Status:           game.Status,
		WinnerLineLength: game.WinnerLineLength,
		SignChangeChance: game.SignChangeChance,
	})
}

// bindMessage - strips echo's status prefix from binder errors.
func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}

	return err.Error()
}
