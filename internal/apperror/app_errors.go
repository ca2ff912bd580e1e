package apperror

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrGameFinished      = errors.New("game has been finished")
	ErrInvalidMove       = errors.New("invalid move")
	ErrMalformedRequest  = errors.New("malformed request")
	ErrServerBusy        = errors.New("server busy")
	ErrVersionConflict   = errors.New("game was modified concurrently")
)

// Rejection reasons reported by the rules package, in check order.
const (
	ReasonGameNotFound          = "Game not found"
	ReasonGameFinished          = "Game has been finished"
	ReasonWrongPlayer           = "Wrong player"
	ReasonInvalidWinnerLine     = "Invalid winning line length"
	ReasonIncorrectRow          = "Incorrect row"
	ReasonIncorrectColumn       = "Incorrect column"
	ReasonPositionOutOfBoard    = "Position is out of board"
	ReasonPositionAlreadyFilled = "Position has already been filled"
)

// InvalidMoveError carries the rules reason for a rejected move.
type InvalidMoveError struct {
	Reason string
}

func NewInvalidMoveError(reason string) *InvalidMoveError {
	return &InvalidMoveError{Reason: reason}
}

func (that *InvalidMoveError) Error() string {
	return that.Reason
}

// Is - matches ErrInvalidMove, and ErrGameFinished when the game is over.
func (that *InvalidMoveError) Is(target error) bool {
	switch target {
	case ErrInvalidMove:
		return true
	case ErrGameFinished:
		return that.Reason == ReasonGameFinished
	default:
		return false
	}
}
