// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/DylansGit/ClipSage/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.PaletteConfig)
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Selected lipgloss.Color
	Error    lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Component styles
	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	ListItemTitle lipgloss.Style
	ListItemDesc  lipgloss.Style
	ListItemMark  lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	InputFocused lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette
// when none is configured.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultConfig().Appearance.Palette
	if cfg != nil && cfg.Appearance.Palette.Accent != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a PaletteConfig.
func NewThemeFromPalette(p config.PaletteConfig) *Theme {
	t := &Theme{
		Accent:   lipgloss.Color(p.Accent),
		Text:     lipgloss.Color(p.Text),
		Muted:    lipgloss.Color(p.Muted),
		Border:   lipgloss.Color(p.Border),
		Selected: lipgloss.Color(p.Selected),
		Error:    lipgloss.Color(p.Error),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ActiveButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveButton = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 2)

	t.ListItemTitle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.ListItemMark = lipgloss.NewStyle().
		Foreground(t.Selected).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}
