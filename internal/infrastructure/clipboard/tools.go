package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/DylansGit/ClipSage/internal/application/port"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const pngMIME = "image/png"

type tool int

const (
	toolNone tool = iota
	toolWayland
	toolXclip
	toolXsel
)

func (t tool) String() string {
	switch t {
	case toolWayland:
		return "wl-clipboard"
	case toolXclip:
		return "xclip"
	case toolXsel:
		return "xsel"
	default:
		return "none"
	}
}

// ToolsAdapter implements port.Clipboard by running system clipboard tools.
// Uses wl-clipboard for Wayland, falls back to xclip or xsel for X11.
type ToolsAdapter struct {
	tool     tool
	copyCmd  string
	pasteCmd string
}

var _ port.Clipboard = (*ToolsAdapter)(nil)

// NewTools detects Wayland vs X11 and selects the matching clipboard tool.
func NewTools() *ToolsAdapter {
	a := &ToolsAdapter{}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath("wl-copy"); err == nil {
			if pastePath, err := exec.LookPath("wl-paste"); err == nil {
				a.tool = toolWayland
				a.copyCmd = path
				a.pasteCmd = pastePath
			}
		}
	}

	if a.tool == toolNone && os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath("xclip"); err == nil {
			a.tool = toolXclip
			a.copyCmd = path
			a.pasteCmd = path
		} else if path, err := exec.LookPath("xsel"); err == nil {
			a.tool = toolXsel
			a.copyCmd = path
			a.pasteCmd = path
		}
	}

	return a
}

// Available reports whether a clipboard tool was found.
func (a *ToolsAdapter) Available() bool {
	return a.tool != toolNone
}

// WriteText copies text to the clipboard.
func (a *ToolsAdapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	var cmd *exec.Cmd
	switch a.tool {
	case toolWayland:
		cmd = exec.CommandContext(ctx, a.copyCmd)
	case toolXclip:
		cmd = exec.CommandContext(ctx, a.copyCmd, "-selection", "clipboard")
	case toolXsel:
		cmd = exec.CommandContext(ctx, a.copyCmd, "--clipboard", "--input")
	default:
		log.Error().Err(ErrNoClipboardTool).Msg("clipboard write failed")
		return ErrNoClipboardTool
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.tool.String()).Msg("clipboard write failed")
		return fmt.Errorf("%s: %w", a.tool, err)
	}

	log.Debug().Str("tool", a.tool.String()).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard, or one that
// holds no valid UTF-8 text, yields "".
func (a *ToolsAdapter) ReadText(ctx context.Context) (string, error) {
	var args []string
	switch a.tool {
	case toolWayland:
		// Without --type, wl-paste falls back to whatever is offered, e.g. PNG bytes.
		args = []string{"--no-newline", "--type", "text"}
	case toolXclip:
		args = []string{"-selection", "clipboard", "-o"}
	case toolXsel:
		args = []string{"--clipboard", "--output"}
	default:
		return "", ErrNoClipboardTool
	}

	out, err := a.paste(ctx, args...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		logging.FromContext(ctx).Debug().
			Str("tool", a.tool.String()).
			Int("bytes", len(out)).
			Msg("clipboard content is not text, ignoring")
		return "", nil
	}
	return string(out), nil
}

// ReadImage reads a PNG image from the clipboard. It returns nil when the
// clipboard does not offer image/png. xsel has no image support.
func (a *ToolsAdapter) ReadImage(ctx context.Context) ([]byte, error) {
	var listArgs, readArgs []string
	switch a.tool {
	case toolWayland:
		listArgs = []string{"--list-types"}
		readArgs = []string{"--type", pngMIME}
	case toolXclip:
		listArgs = []string{"-selection", "clipboard", "-t", "TARGETS", "-o"}
		readArgs = []string{"-selection", "clipboard", "-t", pngMIME, "-o"}
	case toolXsel:
		return nil, nil
	default:
		return nil, ErrNoClipboardTool
	}

	types, err := a.paste(ctx, listArgs...)
	if err != nil {
		return nil, err
	}
	if !offersType(types, pngMIME) {
		return nil, nil
	}

	data, err := a.paste(ctx, readArgs...)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	logging.FromContext(ctx).Debug().
		Str("tool", a.tool.String()).
		Int("bytes", len(data)).
		Msg("clipboard image read")
	return data, nil
}

// paste runs the paste tool. A non-zero exit without output is how the
// tools report an empty clipboard, so it yields no data and no error.
func (a *ToolsAdapter) paste(ctx context.Context, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, a.pasteCmd, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) == 0 && ctx.Err() == nil {
			logging.FromContext(ctx).Trace().
				Str("tool", a.tool.String()).
				Str("stderr", strings.TrimSpace(stderr.String())).
				Msg("clipboard empty")
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", a.tool, err)
	}
	return out, nil
}

func offersType(list []byte, mime string) bool {
	for _, line := range strings.Split(string(list), "\n") {
		if strings.TrimSpace(line) == mime {
			return true
		}
	}
	return false
}
