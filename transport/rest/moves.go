package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type moveUseCase interface {
	MakeMove(ctx context.Context, sig entity.Signature) (*entity.CachedMoveResult, error)
	History(ctx context.Context, gameID string) ([]entity.Move, error)
}

// Row and Col are pointers so that a missing coordinate is told apart from 0.
type makeMoveRequest struct {
	Player string `json:"player" validate:"required,oneof=X O"`
	Row    *int   `json:"row" validate:"required"`
	Col    *int   `json:"col" validate:"required"`
}

type moveResponse struct {
	Row      int           `json:"row"`
	Col      int           `json:"col"`
	Player   entity.Player `json:"player"`
	MoveTime time.Time     `json:"moveTime"`
}

type moveHandler struct {
	logger *slog.Logger
	moves  moveUseCase
}

func newMoveHandler(logger *slog.Logger, moves moveUseCase) *moveHandler {
	return &moveHandler{
		logger: logger,
		moves:  moves,
	}
}

// MakeMove - POST /api/games/:gameId/moves.
func (that *moveHandler) MakeMove(c echo.Context) error {
	gameID := c.Param("gameId")
	log := that.logger.With("method", "MakeMove", "gameID", gameID)

	var req makeMoveRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("malformed move body", "error", err)
		return writeErr(c, fmt.Errorf("%w: %s", apperror.ErrMalformedRequest, bindMessage(err)))
	}

	if err := c.Validate(&req); err != nil {
		log.Warn("invalid move body", "error", err)
		return writeErr(c, fmt.Errorf("%w: %w", apperror.ErrMalformedRequest, err))
	}

	sig := entity.NewSignature(gameID, entity.MoveRequest{
		Player: entity.Player(req.Player),
		Row:    *req.Row,
		Col:    *req.Col,
	})
	sig.IdempotencyKey = c.Request().Header.Get(headerIdempotencyKey)

	result, err := that.moves.MakeMove(c.Request().Context(), sig)
	if err != nil {
		log.Warn("move rejected", "error", err)
		return writeErr(c, err)
	}

	c.Response().Header().Set(headerETag, `"`+result.ETag+`"`)

	return c.JSON(http.StatusOK, result.Response)
}

// History - GET /api/games/:gameId/moves.
func (that *moveHandler) History(c echo.Context) error {
	moves, err := that.moves.History(c.Request().Context(), c.Param("gameId"))
	if err != nil {
		return writeErr(c, err)
	}

	response := make([]moveResponse, 0, len(moves))
	for _, move := range moves {
		response = append(response, moveResponse{
			Row:      move.Row,
			Col:      move.Col,
			Player:   move.Player,
			MoveTime: move.MoveTime,
		})
	}

	return c.JSON(http.StatusOK, response)
}
