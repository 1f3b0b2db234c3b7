package entity

import (
	"strings"
	"time"
)

// ClipKind identifies what was on the clipboard when a ClipItem was captured.
type ClipKind string

const (
	// ClipKindText is raw clipboard text.
	ClipKindText ClipKind = "text"
	// ClipKindImage is a clipboard image; Content holds the extracted text.
	ClipKindImage ClipKind = "image"
)

// Valid reports whether k is a known kind.
func (k ClipKind) Valid() bool {
	return k == ClipKindText || k == ClipKindImage
}

// ClipItem is one captured clipboard event. Items are immutable once stored.
type ClipItem struct {
	ID        int64     `json:"id"`
	Kind      ClipKind  `json:"kind"`
	Content   string    `json:"content"`
	ImagePath string    `json:"image_path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HasImage reports whether the item references a saved image payload.
func (c *ClipItem) HasImage() bool {
	return c.Kind == ClipKindImage && c.ImagePath != ""
}

// CopyText returns the text a copy-back should place on the clipboard.
// Images yield their extracted text, which may be empty.
func (c *ClipItem) CopyText() string {
	return c.Content
}

// Matches reports whether Content contains query, ignoring case.
// An empty query matches everything.
func (c *ClipItem) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Content), strings.ToLower(query))
}

// FilterClips returns the items whose content matches query, preserving order.
func FilterClips(items []*ClipItem, query string) []*ClipItem {
	out := make([]*ClipItem, 0, len(items))
	for _, item := range items {
		if item.Matches(query) {
			out = append(out, item)
		}
	}
	return out
}
