package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const filterCharLimit = 256

// NewFilterInput creates the themed filter input of the history browser.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Filter clips..."
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	ti.CharLimit = filterCharLimit
	return ti
}
