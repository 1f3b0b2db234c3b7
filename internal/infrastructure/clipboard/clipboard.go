// Package clipboard provides clipboard adapters: system tools (wl-clipboard
// on Wayland, xclip or xsel on X11) and a native backend.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DylansGit/ClipSage/internal/application/port"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendTools  = "tools"
	BackendNative = "native"
)

// ErrNoClipboardTool is returned when no clipboard tool is installed.
var ErrNoClipboardTool = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// New returns the clipboard adapter for backend. "auto" prefers the system
// tools and falls back to the native backend when none is installed.
func New(backend string) (port.Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendAuto:
		if tools := NewTools(); tools.Available() {
			return tools, nil
		}
		return NewNative(), nil
	case BackendTools:
		tools := NewTools()
		if !tools.Available() {
			return nil, ErrNoClipboardTool
		}
		return tools, nil
	case BackendNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (valid: auto, tools, native)", backend)
	}
}
