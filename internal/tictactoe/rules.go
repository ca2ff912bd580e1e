package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// direction - step between consecutive cells of a line.
type direction struct {
	dRow, dCol int
}

var directions = []direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // diagonal ↘
	{dRow: -1, dCol: 1}, // diagonal ↙ (walked bottom-up)
}

var players = []entity.Player{entity.PlayerX, entity.PlayerO}

// IsValidMove - checks the move against the game, first failing check wins.
// Returns the rejection reason when the move is not allowed.
func IsValidMove(game *entity.Game, move entity.MoveRequest) (bool, string) {
	if game == nil {
		return false, apperror.ReasonGameNotFound
	}

	if !game.IsInProgress() {
		return false, apperror.ReasonGameFinished
	}

	if game.CurrentPlayer != move.Player {
		return false, apperror.ReasonWrongPlayer
	}

	if game.WinnerLineLength > game.BoardSize || game.WinnerLineLength < 2 {
		return false, apperror.ReasonInvalidWinnerLine
	}

	if move.Row < 0 || move.Row >= game.BoardSize {
		return false, apperror.ReasonIncorrectRow
	}

	if move.Col < 0 || move.Col >= game.BoardSize {
		return false, apperror.ReasonIncorrectColumn
	}

	position := game.Position(move.Row, move.Col)
	if position >= len(game.BoardState) {
		return false, apperror.ReasonPositionOutOfBoard
	}

	if game.BoardState[position] != entity.EmptyCell {
		return false, apperror.ReasonPositionAlreadyFilled
	}

	return true, ""
}

// CheckWinner - reports whether any player has winnerLineLength marks in a row.
func CheckWinner(board string, boardSize, winnerLineLength int) bool {
	_, ok := Winner(board, boardSize, winnerLineLength)
	return ok
}

// Winner - returns the first player found with a full line, X before O.
func Winner(board string, boardSize, winnerLineLength int) (entity.Player, bool) {
	if winnerLineLength < 1 || winnerLineLength > boardSize || len(board) < boardSize*boardSize {
		return "", false
	}

	for _, player := range players {
		if hasLine(board, boardSize, winnerLineLength, player.Symbol()) {
			return player, true
		}
	}

	return "", false
}

func hasLine(board string, size, length int, symbol byte) bool {
	for _, dir := range directions {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if lineFrom(board, size, length, symbol, row, col, dir) {
					return true
				}
			}
		}
	}

	return false
}

// lineFrom - checks `length` cells starting at (row, col) along dir.
func lineFrom(board string, size, length int, symbol byte, row, col int, dir direction) bool {
	endRow := row + dir.dRow*(length-1)
	endCol := col + dir.dCol*(length-1)
	if endRow < 0 || endRow >= size || endCol < 0 || endCol >= size {
		return false
	}

	for k := 0; k < length; k++ {
		if board[(row+dir.dRow*k)*size+col+dir.dCol*k] != symbol {
			return false
		}
	}

	return true
}

// IsBoardFull - true when no empty cell remains.
func IsBoardFull(board string) bool {
	return !strings.ContainsRune(board, entity.EmptyCell)
}

// GameStatus - status after the last mark: a full line wins, a full board draws.
func GameStatus(board string, boardSize, winnerLineLength int) entity.Status {
	if winner, ok := Winner(board, boardSize, winnerLineLength); ok {
		return entity.WonBy(winner)
	}

	if IsBoardFull(board) {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}
