package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-addons/internal/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
}

// New connects to postgres, retrying with exponential backoff until
// cfg.ConnectTimeout elapses.
func New(ctx context.Context, logger *slog.Logger, cfg config.Postgres) (*sqlx.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = 10 * time.Second

	connect := func() (*sqlx.DB, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		db, err := sqlx.ConnectContext(attemptCtx, "postgres", DSN(cfg))
		if err != nil {
			logger.Warn("failed to connect to db, will retry", slog.Any("error", err))
			return nil, err
		}
		return db, nil
	}

	db, err := backoff.Retry(ctx, connect,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate applies all pending migrations from source.
func Migrate(source string, cfg config.Postgres) error {
	m, err := migrate.New(source, DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
