package ocr

import (
	"container/list"
	"context"
	"sync"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/domain/fingerprint"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// CachedExtractor remembers extracted text per image digest, so an image that
// stays on the clipboard across polls is only run through OCR once.
// Failed extractions are not cached.
type CachedExtractor struct {
	next     port.TextExtractor
	capacity int

	mu    sync.Mutex
	items map[fingerprint.Digest]*list.Element
	order *list.List // front = most recently used
}

type cacheEntry struct {
	digest fingerprint.Digest
	text   string
}

// NewCachedExtractor wraps next with a cache of at most capacity results.
// A capacity below 1 returns next unchanged.
func NewCachedExtractor(next port.TextExtractor, capacity int) port.TextExtractor {
	if next == nil || capacity < 1 {
		return next
	}
	return &CachedExtractor{
		next:     next,
		capacity: capacity,
		items:    make(map[fingerprint.Digest]*list.Element),
		order:    list.New(),
	}
}

// ExtractText returns the cached text for image or delegates to the wrapped
// extractor.
func (c *CachedExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return c.next.ExtractText(ctx, image)
	}

	digest := fingerprint.OfBytes(image)
	if text, ok := c.get(digest); ok {
		logging.FromContext(ctx).Debug().Str("digest", digest.String()[:12]).Msg("ocr cache hit")
		return text, nil
	}

	text, err := c.next.ExtractText(ctx, image)
	if err != nil {
		return "", err
	}
	c.put(digest, text)
	return text, nil
}

// Len returns the number of cached results.
func (c *CachedExtractor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *CachedExtractor) get(d fingerprint.Digest) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[d]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).text, true
}

func (c *CachedExtractor) put(d fingerprint.Digest, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[d]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).text = text
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).digest)
		}
	}

	c.items[d] = c.order.PushFront(&cacheEntry{digest: d, text: text})
}
