package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const (
	headerETag           = "ETag"
	headerRetryAfter     = "Retry-After"
	headerIdempotencyKey = "Idempotency-Key"

	retryAfterSeconds = "1"
)

// Problem is the error body of every failed request.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// writeErr maps an application error to its status code.
func writeErr(c echo.Context, err error) error {
	var invalidMove *apperror.InvalidMoveError

	switch {
	case errors.Is(err, apperror.ErrServerBusy):
		c.Response().Header().Set(headerRetryAfter, retryAfterSeconds)
		return problem(c, http.StatusServiceUnavailable, "Server busy")
	case errors.Is(err, apperror.ErrGameNotFound):
		return problem(c, http.StatusNotFound, apperror.ReasonGameNotFound)
	case errors.Is(err, apperror.ErrGameFinished):
		return problem(c, http.StatusConflict, apperror.ReasonGameFinished)
	case errors.Is(err, apperror.ErrVersionConflict):
		return problem(c, http.StatusConflict, "Game state changed, retry the move")
	case errors.Is(err, apperror.ErrGameAlreadyExists):
		return problem(c, http.StatusConflict, "Game already exists")
	case errors.As(err, &invalidMove):
		return problem(c, http.StatusBadRequest, invalidMove.Reason)
	case errors.Is(err, apperror.ErrMalformedRequest), errors.Is(err, entity.ErrInvalidGameSettings):
		return problem(c, http.StatusBadRequest, err.Error())
	default:
		return problem(c, http.StatusInternalServerError, err.Error())
	}
}

func problem(c echo.Context, status int, detail string) error {
	return c.JSON(status, Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
