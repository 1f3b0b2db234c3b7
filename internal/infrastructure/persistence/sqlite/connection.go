package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver "sqlite3"
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/DylansGit/ClipSage/internal/logging"
)

const historyDirPerm = 0o750

// historyPragmas are applied by the driver to every connection it opens.
// WAL lets "history" read while "watch" writes; busy_timeout covers the
// short window where both processes want the write lock.
var historyPragmas = []string{
	"journal_mode(wal)",
	"synchronous(normal)",
	"temp_store(memory)",
	"busy_timeout(5000)",
}

// historyDSN builds the driver URI for the history file at dbPath.
func historyDSN(dbPath string) string {
	q := url.Values{}
	for _, p := range historyPragmas {
		q.Add("_pragma", p)
	}
	// Writers take the lock at BEGIN so a read never has to upgrade mid-transaction.
	q.Set("_txlock", "immediate")
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(dbPath), RawQuery: q.Encode()}).String()
}

// NewConnection opens the clip history database at dbPath and brings its
// schema up to date. The parent directory is created when missing. Reopening
// an existing history keeps its rows.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), historyDirPerm); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", historyDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// One writer per process; the clip table is small and hot.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to history database: %w", err)
	}

	version, err := Migrate(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("path", dbPath).Int64("schema", version).Msg("history database opened")
	return db, nil
}

// Close closes db. A nil db is a no-op.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
