// Package port defines interfaces for infrastructure adapters.
package port

import "context"

// Clipboard defines the port interface for clipboard operations.
// This abstracts platform-specific clipboard implementations.
type Clipboard interface {
	// ReadText reads text from the clipboard.
	// Returns an empty string and nil error when no text is present.
	ReadText(ctx context.Context) (string, error)

	// ReadImage reads a PNG-encoded image from the clipboard.
	// Returns nil and nil error when no image is present.
	ReadImage(ctx context.Context) ([]byte, error)

	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error
}
