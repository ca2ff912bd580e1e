package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const uniqueViolation = "23505"

const queryGetByID = `
SELECT id, board_size, board_state, current_player, status,
       winner_line_length, sign_change_chance, version, created_at, updated_at
FROM games
WHERE id = $1`

const queryInsert = `
INSERT INTO games
    (id, board_size, board_state, current_player, status,
     winner_line_length, sign_change_chance, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const querySaveIfVersion = `
UPDATE games SET
    board_state    = $1,
    current_player = $2,
    status         = $3,
    version        = $4,
    updated_at     = $5
WHERE id = $6 AND version = $7`

const queryExists = `SELECT EXISTS(SELECT 1 FROM games WHERE id = $1)`

const queryInsertMove = `
INSERT INTO moves (game_id, row_index, col_index, player, move_time)
VALUES ($1, $2, $3, $4, $5)`

const queryListMoves = `
SELECT game_id, row_index, col_index, player, move_time
FROM moves
WHERE game_id = $1
ORDER BY move_time ASC, id ASC`

const queryCountMoves = `SELECT COUNT(*) FROM moves WHERE game_id = $1`

// GameStore is a PostgreSQL-backed game store.
type GameStore struct {
	pool *pgxpool.Pool
}

func NewGameStore(pool *pgxpool.Pool) *GameStore {
	return &GameStore{pool: pool}
}

func (that *GameStore) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := scanGame(that.pool.QueryRow(ctx, queryGetByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameStore) Create(ctx context.Context, game *entity.Game) error {
	_, err := that.pool.Exec(ctx, queryInsert,
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

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

// Save - updates the game only when the stored version matches expectedVersion.
func (that *GameStore) Save(ctx context.Context, game *entity.Game, expectedVersion int) error {
	tag, err := that.pool.Exec(ctx, querySaveIfVersion,
		game.BoardState,
		string(game.CurrentPlayer),
		string(game.Status),
		expectedVersion+1,
		game.UpdatedAt,
		game.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err = that.pool.QueryRow(ctx, queryExists, game.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check game: %w", err)
		}

		if !exists {
			return apperror.ErrGameNotFound
		}

		return apperror.ErrVersionConflict
	}

	game.Version = expectedVersion + 1

	return nil
}

// MoveLog is a PostgreSQL-backed move history.
type MoveLog struct {
	pool *pgxpool.Pool
}

func NewMoveLog(pool *pgxpool.Pool) *MoveLog {
	return &MoveLog{pool: pool}
}

func (that *MoveLog) Append(ctx context.Context, move entity.Move) error {
	_, err := that.pool.Exec(ctx, queryInsertMove,
		move.GameID,
		move.Row,
		move.Col,
		string(move.Player),
		move.MoveTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert move: %w", err)
	}

	return nil
}

func (that *MoveLog) ListByGame(ctx context.Context, gameID string) ([]entity.Move, error) {
	rows, err := that.pool.Query(ctx, queryListMoves, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	defer rows.Close()

	moves := []entity.Move{}
	for rows.Next() {
		var (
			move   entity.Move
			player string
		)
		if err = rows.Scan(&move.GameID, &move.Row, &move.Col, &player, &move.MoveTime); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}

		move.Player = entity.Player(player)
		move.MoveTime = move.MoveTime.UTC()
		moves = append(moves, move)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moves: %w", err)
	}

	return moves, nil
}

func (that *MoveLog) CountByGame(ctx context.Context, gameID string) (int, error) {
	var count int
	if err := that.pool.QueryRow(ctx, queryCountMoves, gameID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}

	return count, nil
}

func scanGame(row pgx.Row) (*entity.Game, error) {
	var (
		game          entity.Game
		currentPlayer string
		status        string
	)

	err := row.Scan(
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
	if err != nil {
		return nil, err
	}

	game.CurrentPlayer = entity.Player(currentPlayer)
	game.Status = entity.Status(status)
	game.CreatedAt = game.CreatedAt.UTC()
	game.UpdatedAt = game.UpdatedAt.UTC()

	return &game, nil
}
