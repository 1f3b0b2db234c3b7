package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/domain/repository"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const logContentMaxLen = 40

var (
	// ErrInvalidKind is returned by Save for a kind other than text or image.
	ErrInvalidKind = errors.New("invalid clip kind")
	// ErrSaveFailed wraps a failed history insert.
	ErrSaveFailed = errors.New("failed to save clip")
)

// SaveInput describes one accepted clipboard capture.
type SaveInput struct {
	Kind    entity.ClipKind
	Content string
	// Image holds the PNG payload for image captures.
	Image []byte
}

// ClipHistoryUseCase records accepted captures and serves the history.
type ClipHistoryUseCase struct {
	repo     repository.ClipRepository
	payloads port.PayloadStore
	metrics  port.MonitorMetrics

	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// HistoryOption configures a ClipHistoryUseCase.
type HistoryOption func(*ClipHistoryUseCase)

// WithClock overrides the capture clock.
func WithClock(now func() time.Time) HistoryOption {
	return func(uc *ClipHistoryUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithHistoryMetrics reports payload and insert failures to m.
func WithHistoryMetrics(m port.MonitorMetrics) HistoryOption {
	return func(uc *ClipHistoryUseCase) {
		if m != nil {
			uc.metrics = m
		}
	}
}

// NewClipHistoryUseCase creates a history use case. payloads may be nil,
// in which case image bytes are dropped and only the record is stored.
func NewClipHistoryUseCase(
	repo repository.ClipRepository,
	payloads port.PayloadStore,
	opts ...HistoryOption,
) *ClipHistoryUseCase {
	uc := &ClipHistoryUseCase{
		repo:     repo,
		payloads: payloads,
		metrics:  nopMetrics{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Save stores one capture. Image bytes are written to the payload store
// first; if that fails the record is still inserted without an image path.
func (uc *ClipHistoryUseCase) Save(ctx context.Context, input SaveInput) error {
	log := logging.FromContext(ctx)

	if !input.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, input.Kind)
	}

	item := &entity.ClipItem{
		Kind:      input.Kind,
		Content:   input.Content,
		Timestamp: uc.nextTimestamp(),
	}

	if input.Kind == entity.ClipKindImage && len(input.Image) > 0 {
		item.ImagePath = uc.savePayload(ctx, item.Timestamp, input.Image)
	}

	if err := uc.repo.Insert(ctx, item); err != nil {
		uc.metrics.ObserveFailure(port.StageSave)
		log.Error().Err(err).Str("kind", string(item.Kind)).Msg("failed to save clip")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	uc.metrics.ObserveCapture(string(item.Kind))
	log.Info().
		Int64("id", item.ID).
		Str("kind", string(item.Kind)).
		Str("content", logging.Preview(item.Content, logContentMaxLen)).
		Bool("image", item.ImagePath != "").
		Msg("clip saved")
	return nil
}

func (uc *ClipHistoryUseCase) savePayload(ctx context.Context, at time.Time, data []byte) string {
	log := logging.FromContext(ctx)

	if uc.payloads == nil {
		log.Warn().Msg("no payload store configured, image bytes dropped")
		return ""
	}

	path, err := uc.payloads.SaveImage(ctx, at, data)
	if err != nil {
		uc.metrics.ObserveFailure(port.StagePayload)
		log.Error().Err(err).Msg("failed to save image payload, recording without image")
		return ""
	}
	return path
}

// nextTimestamp returns a UTC time strictly after the previous one.
func (uc *ClipHistoryUseCase) nextTimestamp() time.Time {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := uc.now().UTC()
	if !t.After(uc.last) {
		t = uc.last.Add(time.Nanosecond)
	}
	uc.last = t
	return t
}

// FetchAll returns every record, newest first. A read failure is logged
// and yields an empty list.
func (uc *ClipHistoryUseCase) FetchAll(ctx context.Context) []*entity.ClipItem {
	items, err := uc.repo.ListRecent(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to fetch clip history")
		return []*entity.ClipItem{}
	}
	if items == nil {
		return []*entity.ClipItem{}
	}
	return items
}

// Search returns the records whose content contains query, ignoring case,
// newest first. An empty query returns everything.
func (uc *ClipHistoryUseCase) Search(ctx context.Context, query string) []*entity.ClipItem {
	items := entity.FilterClips(uc.FetchAll(ctx), query)

	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("matches", len(items)).
		Msg("clip history filtered")

	return items
}

// ClearAll deletes every record. Image payload files are kept on disk.
func (uc *ClipHistoryUseCase) ClearAll(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := uc.repo.DeleteAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear clip history")
		return fmt.Errorf("failed to clear clip history: %w", err)
	}

	log.Info().Msg("clip history cleared")
	return nil
}

// Count returns the number of stored records.
func (uc *ClipHistoryUseCase) Count(ctx context.Context) (int64, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count clips: %w", err)
	}
	return n, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveCapture(string) {}
func (nopMetrics) ObserveDuplicate()     {}
func (nopMetrics) ObserveFailure(string) {}
func (nopMetrics) ObservePoll()          {}
