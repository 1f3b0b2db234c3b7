// Package ocr extracts text from clipboard images with the tesseract CLI.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const (
	defaultBinary  = "tesseract"
	defaultTimeout = 30 * time.Second

	// waitDelay bounds how long Run waits for pipes after the process is killed.
	waitDelay = 2 * time.Second
)

// ErrTesseractNotFound is returned when the tesseract executable cannot be resolved.
var ErrTesseractNotFound = errors.New("tesseract executable not found")

// Config selects the tesseract executable and recognition options.
type Config struct {
	// Path is a binary name looked up on $PATH, or an absolute path.
	Path string
	// Languages is passed as -l, e.g. "eng+deu". Empty uses tesseract's default.
	Languages string
	Timeout   time.Duration
}

// Tesseract implements port.TextExtractor by piping PNG bytes through tesseract.
type Tesseract struct {
	path      string
	languages string
	timeout   time.Duration
}

var _ port.TextExtractor = (*Tesseract)(nil)

// NewTesseract resolves the executable once so a missing install is reported up front.
func NewTesseract(cfg Config) (*Tesseract, error) {
	bin := strings.TrimSpace(cfg.Path)
	if bin == "" {
		bin = defaultBinary
	}

	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTesseractNotFound, bin, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Tesseract{
		path:      path,
		languages: strings.TrimSpace(cfg.Languages),
		timeout:   timeout,
	}, nil
}

// Path returns the resolved executable path.
func (t *Tesseract) Path() string {
	return t.path
}

// ExtractText runs tesseract on image and returns the trimmed text.
func (t *Tesseract) ExtractText(ctx context.Context, image []byte) (string, error) {
	log := logging.FromContext(ctx)

	if len(image) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	args := []string{"stdin", "stdout"}
	if t.languages != "" {
		args = append(args, "-l", t.languages)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.path, args...)
	cmd.Stdin = bytes.NewReader(image)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("tesseract: %w", ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("tesseract: %w: %s", err, msg)
		}
		return "", fmt.Errorf("tesseract: %w", err)
	}

	text := strings.TrimSpace(stdout.String())
	log.Debug().
		Dur("took", time.Since(start)).
		Int("chars", len(text)).
		Msg("text extracted from image")
	return text, nil
}
