package clipboard

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// NativeAdapter implements port.Clipboard with golang.design/x/clipboard.
type NativeAdapter struct {
	once    sync.Once
	initErr error
}

var _ port.Clipboard = (*NativeAdapter)(nil)

// NewNative creates a native adapter. The platform clipboard is
// initialized on first use.
func NewNative() *NativeAdapter {
	return &NativeAdapter{}
}

func (a *NativeAdapter) init(ctx context.Context) error {
	a.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			a.initErr = fmt.Errorf("native clipboard init: %w", err)
			logging.FromContext(ctx).Error().Err(err).Msg("native clipboard unavailable")
			return
		}
		logging.FromContext(ctx).Debug().Msg("native clipboard initialized")
	})
	return a.initErr
}

// ReadText reads text from the clipboard.
func (a *NativeAdapter) ReadText(ctx context.Context) (string, error) {
	if err := a.init(ctx); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// ReadImage reads a PNG image from the clipboard.
func (a *NativeAdapter) ReadImage(ctx context.Context) ([]byte, error) {
	if err := a.init(ctx); err != nil {
		return nil, err
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// WriteText copies text to the clipboard.
func (a *NativeAdapter) WriteText(ctx context.Context, text string) error {
	if err := a.init(ctx); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logging.FromContext(ctx).Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}
