// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// ErrNothingToCopy is returned when the selection has no copyable text.
var ErrNothingToCopy = errors.New("nothing to copy")

const combinedSeparator = "\n\n"

// CopyClipUseCase writes stored clips back to the system clipboard.
type CopyClipUseCase struct {
	clipboard port.Clipboard
}

// NewCopyClipUseCase creates a new CopyClipUseCase.
func NewCopyClipUseCase(clipboard port.Clipboard) *CopyClipUseCase {
	return &CopyClipUseCase{
		clipboard: clipboard,
	}
}

// Copy places the item's text on the clipboard. Images copy their
// extracted text; an image without any returns ErrNothingToCopy.
func (uc *CopyClipUseCase) Copy(ctx context.Context, item *entity.ClipItem) error {
	if item == nil {
		return ErrNothingToCopy
	}
	return uc.write(ctx, item.CopyText())
}

// CopyCombined joins the items' text with blank lines and copies the result.
// Items without text, such as images with no extracted text, are skipped.
func (uc *CopyClipUseCase) CopyCombined(ctx context.Context, items []*entity.ClipItem) error {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		text := item.CopyText()
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}
	return uc.write(ctx, strings.TrimSpace(strings.Join(parts, combinedSeparator)))
}

func (uc *CopyClipUseCase) write(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if text == "" {
		log.Debug().Msg("copy clip: nothing to copy")
		return ErrNothingToCopy
	}

	if uc.clipboard == nil {
		log.Warn().Msg("copy clip: clipboard is nil")
		return fmt.Errorf("clipboard not available")
	}

	if err := uc.clipboard.WriteText(ctx, text); err != nil {
		log.Error().Err(err).Msg("copy clip: clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Str("content", logging.Preview(text, logContentMaxLen)).Msg("clip copied to clipboard")
	return nil
}
