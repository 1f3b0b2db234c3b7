package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"

	"github.com/DylansGit/ClipSage/internal/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator binds the embedded schema migrations to db. The provider keeps
// no package-level state, so concurrent callers do not race on goose globals.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return p, nil
}

// Migrate applies pending schema migrations and returns the schema version.
func Migrate(ctx context.Context, db *sql.DB) (int64, error) {
	log := logging.FromContext(ctx)

	p, err := newMigrator(db)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", path.Base(r.Source.Path)).
			Dur("took", r.Duration).
			Msg("history schema migrated")
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if len(results) == 0 {
		log.Debug().Int64("version", version).Msg("history schema up to date")
	}
	return version, nil
}

// SchemaVersion reports the applied schema version without migrating.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	p, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
