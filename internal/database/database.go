package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-boards/internal/config"
)

func Connect(ctx context.Context, db *config.Database) (*pgxpool.Pool, error) {
	poolConfig, err := db.PoolConfig()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return pool, nil
}

// Migrate applies every embedded migration under migrations/ that the
// database has not seen yet.
func Migrate(db *config.Database, migrations fs.FS) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("unable to create migrations iofs: %w", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, db.URL())
	if err != nil {
		return nil, fmt.Errorf("unable to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return migrator, nil
}

func ConnectAndMigrate(ctx context.Context, db *config.Database, migrations fs.FS) (*pgxpool.Pool, error) {
	migrator, err := Migrate(db, migrations)
	if err != nil {
		return nil, err
	}
	srcErr, dbErr := migrator.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		return nil, fmt.Errorf("unable to close migrator: %w", err)
	}
	return Connect(ctx, db)
}
