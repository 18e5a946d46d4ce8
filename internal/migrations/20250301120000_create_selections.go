package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSelections, downCreateSelections)
}

func upCreateSelections(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS selections (
			user_id    BIGINT PRIMARY KEY,
			username   VARCHAR(64) NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS selections_updated_at_idx ON selections (updated_at);
	`)
	return err
}

func downCreateSelections(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS selections;`)
	return err
}
