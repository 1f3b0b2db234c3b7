package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const (
	cursorSelected = "> "
	cursorEmpty    = "  "
	markChecked    = "[x] "
	markEmpty      = "[ ] "

	maxPreviewLength = 72
)

// ClipListItem wraps a clip for the list. Checked marks it for combined copy.
type ClipListItem struct {
	Clip    *entity.ClipItem
	Checked bool
}

// FilterValue implements list.Item.
func (i ClipListItem) FilterValue() string {
	if i.Clip == nil {
		return ""
	}
	return i.Clip.Content
}

// Preview returns the first line of the clip, shortened for display.
func (i ClipListItem) Preview() string {
	if i.Clip == nil {
		return ""
	}
	text := i.Clip.Content
	if text == "" && i.Clip.Kind == entity.ClipKindImage {
		return "(image, no text)"
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx] + " …"
	}
	return logging.Preview(text, maxPreviewLength)
}

// ClipDelegate renders clips with theme styling.
type ClipDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d ClipDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d ClipDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d ClipDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d ClipDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(ClipListItem)
	if !ok || ci.Clip == nil {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	if isSelected {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
	}

	mark := t.Subtle.Render(markEmpty)
	if ci.Checked {
		mark = t.ListItemMark.Render(markChecked)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		mark,
		titleStyle.Render(ci.Preview()),
	)

	meta := []string{
		t.KindBadge(ci.Clip.Kind),
		" ",
		t.MutedBadge(RelativeTime(ci.Clip.Timestamp)),
	}
	if ci.Clip.HasImage() {
		meta = append(meta, " ", t.ListItemDesc.Render(ci.Clip.ImagePath))
	}

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		append([]string{strings.Repeat(" ", len(cursorEmpty)+len(markEmpty))}, meta...)...,
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewClipList creates a themed list for clip items.
func NewClipList(theme *Theme, items []ClipListItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, ClipDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
