package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	// registers the "pgx" database/sql driver used by goose.
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStorage struct {
	Pool *pgxpool.Pool
	dsn  string
}

func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("can't create postgres pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't connect to postgres: %w", err)
	}

	return &PostgresStorage{Pool: pool, dsn: dsn}, nil
}

// Init - creates or upgrades the schema through a short-lived database/sql connection.
func (that *PostgresStorage) Init(ctx context.Context) error {
	conn, err := sql.Open("pgx", that.dsn)
	if err != nil {
		return fmt.Errorf("can't open postgres for migrations: %w", err)
	}
	defer conn.Close()

	if err = migrate(ctx, conn, dialectPostgres, "migrations/postgres"); err != nil {
		return fmt.Errorf("can't migrate postgres schema: %w", err)
	}

	return nil
}

func (that *PostgresStorage) Close() error {
	that.Pool.Close()

	return nil
}
