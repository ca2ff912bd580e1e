package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const queryGetByID = `
SELECT id, board_size, board_state, current_player, status,
       winner_line_length, sign_change_chance, version, created_at, updated_at
FROM games
WHERE id = ?`

const queryInsert = `
INSERT INTO games
    (id, board_size, board_state, current_player, status,
     winner_line_length, sign_change_chance, version, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const querySaveIfVersion = `
UPDATE games SET
    board_state    = ?,
    current_player = ?,
    status         = ?,
    version        = ?,
    updated_at     = ?
WHERE id = ? AND version = ?`

const queryExists = `SELECT EXISTS(SELECT 1 FROM games WHERE id = ?)`

const queryInsertMove = `
INSERT INTO moves (game_id, row_index, col_index, player, move_time)
VALUES (?, ?, ?, ?, ?)`

const queryListMoves = `
SELECT game_id, row_index, col_index, player, move_time
FROM moves
WHERE game_id = ?
ORDER BY move_time ASC, id ASC`

const queryCountMoves = `SELECT COUNT(*) FROM moves WHERE game_id = ?`

type GameStore struct {
	db *sql.DB
}

func NewGameStore(db *sql.DB) *GameStore {
	return &GameStore{db: db}
}

func (that *GameStore) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var (
		game          entity.Game
		currentPlayer string
		status        string
	)

	err := that.db.QueryRowContext(ctx, queryGetByID, id).Scan(
		&game.ID,
		&game.BoardSize,
		&game.BoardState,
		&currentPlayer,
		&status,
		&game.WinnerLineLength,
		&game.SignChangeChance,
		&game.Version,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get game by id: %w", err)
	}

	game.CurrentPlayer = entity.Player(currentPlayer)
	game.Status = entity.Status(status)
	game.CreatedAt = game.CreatedAt.UTC()
	game.UpdatedAt = game.UpdatedAt.UTC()

	return &game, nil
}

func (that *GameStore) Create(ctx context.Context, game *entity.Game) error {
	_, err := that.db.ExecContext(ctx, queryInsert,
		game.ID,
		game.BoardSize,
		game.BoardState,
		string(game.CurrentPlayer),
		string(game.Status),
		game.WinnerLineLength,
		game.SignChangeChance,
		game.Version,
		game.CreatedAt,
		game.UpdatedAt,
	)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	if err != nil {
		return fmt.Errorf("can't insert game: %w", err)
	}

	return nil
}

// Save - updates the game only when the stored version matches expectedVersion.
func (that *GameStore) Save(ctx context.Context, game *entity.Game, expectedVersion int) error {
	result, err := that.db.ExecContext(ctx, querySaveIfVersion,
		game.BoardState,
		string(game.CurrentPlayer),
		string(game.Status),
		expectedVersion+1,
		game.UpdatedAt,
		game.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("can't update game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read affected rows: %w", err)
	}

	if affected == 0 {
		var exists bool
		if err = that.db.QueryRowContext(ctx, queryExists, game.ID).Scan(&exists); err != nil {
			return fmt.Errorf("can't check game: %w", err)
		}

		if !exists {
			return apperror.ErrGameNotFound
		}

		return apperror.ErrVersionConflict
	}

	game.Version = expectedVersion + 1

	return nil
}

type MoveLog struct {
	db *sql.DB
}

func NewMoveLog(db *sql.DB) *MoveLog {
	return &MoveLog{db: db}
}

func (that *MoveLog) Append(ctx context.Context, move entity.Move) error {
	_, err := that.db.ExecContext(ctx, queryInsertMove,
		move.GameID,
		move.Row,
		move.Col,
		string(move.Player),
		move.MoveTime,
	)
	if err != nil {
		return fmt.Errorf("can't insert move: %w", err)
	}

	return nil
}

func (that *MoveLog) ListByGame(ctx context.Context, gameID string) ([]entity.Move, error) {
	rows, err := that.db.QueryContext(ctx, queryListMoves, gameID)
	if err != nil {
		return nil, fmt.Errorf("can't list moves: %w", err)
	}
	defer rows.Close()

	moves := []entity.Move{}
	for rows.Next() {
		var (
			move   entity.Move
			player string
		)
		if err = rows.Scan(&move.GameID, &move.Row, &move.Col, &player, &move.MoveTime); err != nil {
			return nil, fmt.Errorf("can't scan move: %w", err)
		}

		move.Player = entity.Player(player)
		move.MoveTime = move.MoveTime.UTC()
		moves = append(moves, move)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate moves: %w", err)
	}

	return moves, nil
}

func (that *MoveLog) CountByGame(ctx context.Context, gameID string) (int, error) {
	var count int
	if err := that.db.QueryRowContext(ctx, queryCountMoves, gameID).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count moves: %w", err)
	}

	return count, nil
}
