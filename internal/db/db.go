package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/migrations"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Postgres is a database/sql handle used only for schema migrations. Queries
// at runtime go through the pgx pool.
type Postgres struct {
	db *sql.DB
}

func NewConnect(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	connect, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err = connect.PingContext(ctx); err != nil {
		connect.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Postgres{db: connect}, nil
}

func (pg *Postgres) DB() *sql.DB {
	return pg.db
}

func (pg *Postgres) Close() error {
	return pg.db.Close()
}

// MigrationInit applies every embedded migration that has not run yet.
func (pg *Postgres) MigrationInit(ctx context.Context) error {
	if err := Prepare(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, pg.db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Prepare points goose at the embedded migrations.
func Prepare() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate connects, migrates and disconnects. It runs once at startup when a
// database is configured.
func Migrate(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	pg, err := NewConnect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.MigrationInit(ctx); err != nil {
		return err
	}
	log.Info("Database migrations applied")
	return nil
}
