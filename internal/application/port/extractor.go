package port

import "context"

// TextExtractor derives descriptive text from image bytes (OCR).
type TextExtractor interface {
	// ExtractText returns the text found in a PNG image. An image without
	// text yields an empty string and nil error.
	ExtractText(ctx context.Context, image []byte) (string, error)
}
