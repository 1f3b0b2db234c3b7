package repository

import (
	"context"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
)

// ClipRepository defines persistence for captured clipboard items.
// Records are append-only; the only bulk mutation is DeleteAll.
type ClipRepository interface {
	// Insert stores a new item and sets its ID.
	Insert(ctx context.Context, item *entity.ClipItem) error

	// ListRecent returns every item, newest first.
	ListRecent(ctx context.Context) ([]*entity.ClipItem, error)

	// DeleteAll removes every item. Image payload files are left untouched.
	DeleteAll(ctx context.Context) error

	// Count returns the number of stored items.
	Count(ctx context.Context) (int64, error)
}
