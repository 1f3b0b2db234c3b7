// Package payload writes captured image payloads to disk.
package payload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600

	// fileTimeLayout has no ':' so names stay valid on every filesystem.
	fileTimeLayout = "2006-01-02T15-04-05.000000000"

	// maxCollisions bounds the -N suffix search for same-instant captures.
	maxCollisions = 1000
)

// Store implements port.PayloadStore on a local directory.
type Store struct {
	dir string
}

var _ port.PayloadStore = (*Store)(nil)

// NewStore creates the payload directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("payload directory cannot be empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create payload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the payload directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveImage writes data as clip_<timestamp>.png and returns the absolute path.
// The file is synced before returning so the record never points at a torn write.
func (s *Store) SaveImage(ctx context.Context, capturedAt time.Time, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image payload")
	}

	base := "clip_" + capturedAt.UTC().Format(fileTimeLayout)
	f, path, err := s.create(base)
	if err != nil {
		return "", err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write payload: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("sync payload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close payload: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("image payload saved")

	return path, nil
}

func (s *Store) create(base string) (*os.File, string, error) {
	for n := 0; n < maxCollisions; n++ {
		name := base + ".png"
		if n > 0 {
			name = fmt.Sprintf("%s-%d.png", base, n)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("create payload: %w", err)
		}
	}
	return nil, "", fmt.Errorf("create payload: too many files named %s", base)
}

// Size returns the total size in bytes of the files in the payload directory.
func (s *Store) Size(_ context.Context) (int64, error) {
	var size int64
	err := filepath.Walk(s.dir, func(_ string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.IsDir() {
			size += fi.Size()
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return size, nil
}
