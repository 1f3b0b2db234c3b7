package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/domain/fingerprint"
	"github.com/DylansGit/ClipSage/internal/logging"
)

// DefaultPollInterval is used when no positive interval is configured.
const DefaultPollInterval = time.Second

// ClipRecorder persists accepted captures.
type ClipRecorder interface {
	Save(ctx context.Context, input SaveInput) error
}

// MonitorClipboardUseCase polls the clipboard and records new content.
// Text is deduplicated against the last accepted text; images are always
// recorded.
type MonitorClipboardUseCase struct {
	clipboard port.Clipboard
	extractor port.TextExtractor
	recorder  ClipRecorder
	metrics   port.MonitorMetrics

	interval atomic.Int64

	// lastDigest is touched only by Poll, which callers must not run concurrently.
	lastDigest fingerprint.Digest
}

// NewMonitorClipboardUseCase creates a monitor. extractor and metrics may be nil.
func NewMonitorClipboardUseCase(
	clipboard port.Clipboard,
	extractor port.TextExtractor,
	recorder ClipRecorder,
	metrics port.MonitorMetrics,
	interval time.Duration,
) *MonitorClipboardUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	uc := &MonitorClipboardUseCase{
		clipboard: clipboard,
		extractor: extractor,
		recorder:  recorder,
		metrics:   metrics,
	}
	uc.SetPollInterval(interval)
	return uc
}

// SetPollInterval changes the delay between polls. Non-positive values
// select DefaultPollInterval. Safe to call while Run is active.
func (uc *MonitorClipboardUseCase) SetPollInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultPollInterval
	}
	uc.interval.Store(int64(d))
}

// PollInterval returns the current delay between polls.
func (uc *MonitorClipboardUseCase) PollInterval() time.Duration {
	return time.Duration(uc.interval.Load())
}

// Run polls immediately and then once per interval until ctx is done.
// It always returns ctx.Err().
func (uc *MonitorClipboardUseCase) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "monitor")
	log := logging.FromContext(ctx)
	log.Info().Dur("interval", uc.PollInterval()).Msg("clipboard monitor started")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("clipboard monitor stopped")
			return ctx.Err()
		case <-timer.C:
			uc.Poll(ctx)
			timer.Reset(uc.PollInterval())
		}
	}
}

// Poll runs one monitoring cycle: a text check followed by an image check.
// Both checks always run and no failure is returned to the caller.
func (uc *MonitorClipboardUseCase) Poll(ctx context.Context) {
	uc.metrics.ObservePoll()
	uc.checkText(ctx)
	uc.checkImage(ctx)
}

func (uc *MonitorClipboardUseCase) checkText(ctx context.Context) {
	log := logging.FromContext(ctx)

	text, err := uc.clipboard.ReadText(ctx)
	if err != nil {
		uc.metrics.ObserveFailure(port.StageReadText)
		log.Warn().Err(err).Msg("clipboard text read failed")
		return
	}
	if text == "" {
		return
	}

	digest := fingerprint.Of(text)
	if digest == uc.lastDigest {
		uc.metrics.ObserveDuplicate()
		return
	}
	uc.lastDigest = digest

	log.Debug().Str("digest", digest.String()).Msg("new clipboard text")

	if err := uc.recorder.Save(ctx, SaveInput{Kind: entity.ClipKindText, Content: text}); err != nil {
		log.Warn().Err(err).Msg("clipboard text not recorded")
	}
}

func (uc *MonitorClipboardUseCase) checkImage(ctx context.Context) {
	log := logging.FromContext(ctx)

	image, err := uc.clipboard.ReadImage(ctx)
	if err != nil {
		uc.metrics.ObserveFailure(port.StageReadImage)
		log.Warn().Err(err).Msg("clipboard image read failed")
		return
	}
	if len(image) == 0 {
		return
	}

	text := uc.extract(ctx, image)

	input := SaveInput{Kind: entity.ClipKindImage, Content: text, Image: image}
	if err := uc.recorder.Save(ctx, input); err != nil {
		log.Warn().Err(err).Msg("clipboard image not recorded")
	}
}

func (uc *MonitorClipboardUseCase) extract(ctx context.Context, image []byte) string {
	if uc.extractor == nil {
		return ""
	}
	text, err := uc.extractor.ExtractText(ctx, image)
	if err != nil {
		uc.metrics.ObserveFailure(port.StageExtract)
		logging.FromContext(ctx).Warn().Err(err).Msg("text extraction failed")
		return ""
	}
	return text
}
