package recordstore

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/inspekto/internal/recordstore/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies the embedded migrations up to version. Every step is
// written with IF NOT EXISTS, so replaying against an up-to-date store is safe.
func runMigrations(ctx context.Context, db *sql.DB, version int64) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpToContext(ctx, db, ".", version)
}
