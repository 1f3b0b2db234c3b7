package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/domain/repository"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// timestampLayout is fixed-width so lexical order in SQLite matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const logContentMaxLen = 40

const (
	insertClipSQL = `INSERT INTO history (type, content, image_path, timestamp) VALUES (?, ?, ?, ?)`
	listClipsSQL  = `SELECT id, type, content, image_path, timestamp FROM history ORDER BY timestamp DESC, id DESC`
	deleteClipSQL = `DELETE FROM history`
	countClipSQL  = `SELECT COUNT(*) FROM history`
)

type clipRepo struct {
	db *sql.DB
}

// NewClipRepository creates a new SQLite-backed clip repository.
func NewClipRepository(db *sql.DB) repository.ClipRepository {
	return &clipRepo{db: db}
}

func (r *clipRepo) Insert(ctx context.Context, item *entity.ClipItem) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("kind", string(item.Kind)).
		Str("content", logging.Preview(item.Content, logContentMaxLen)).
		Msg("inserting clip")

	imagePath := sql.NullString{String: item.ImagePath, Valid: item.ImagePath != ""}
	ts := item.Timestamp.UTC().Format(timestampLayout)

	res, err := r.db.ExecContext(ctx, insertClipSQL, string(item.Kind), item.Content, imagePath, ts)
	if err != nil {
		return fmt.Errorf("insert clip: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert clip: read id: %w", err)
	}
	item.ID = id
	return nil
}

func (r *clipRepo) ListRecent(ctx context.Context) ([]*entity.ClipItem, error) {
	rows, err := r.db.QueryContext(ctx, listClipsSQL)
	if err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.ClipItem, 0)
	for rows.Next() {
		item, scanErr := scanClip(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	return items, nil
}

func (r *clipRepo) DeleteAll(ctx context.Context) error {
	res, err := r.db.ExecContext(ctx, deleteClipSQL)
	if err != nil {
		return fmt.Errorf("delete clips: %w", err)
	}
	if n, rowsErr := res.RowsAffected(); rowsErr == nil {
		logging.FromContext(ctx).Debug().Int64("rows", n).Msg("clip history cleared")
	}
	return nil
}

func (r *clipRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countClipSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clips: %w", err)
	}
	return n, nil
}

func scanClip(rows *sql.Rows) (*entity.ClipItem, error) {
	var (
		item      entity.ClipItem
		kind      string
		content   sql.NullString
		imagePath sql.NullString
		ts        string
	)
	if err := rows.Scan(&item.ID, &kind, &content, &imagePath, &ts); err != nil {
		return nil, fmt.Errorf("scan clip: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("scan clip %d: parse timestamp %q: %w", item.ID, ts, err)
	}

	item.Kind = entity.ClipKind(kind)
	item.Content = content.String
	item.ImagePath = imagePath.String
	item.Timestamp = parsed
	return &item, nil
}
