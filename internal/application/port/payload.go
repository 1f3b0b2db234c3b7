package port

import (
	"context"
	"time"
)

// PayloadStore persists binary image payloads next to the history database.
type PayloadStore interface {
	// SaveImage durably writes data to a file named after capturedAt and
	// returns its path. The file is synced before SaveImage returns.
	SaveImage(ctx context.Context, capturedAt time.Time, data []byte) (string, error)

	// Dir returns the payload directory.
	Dir() string
}
