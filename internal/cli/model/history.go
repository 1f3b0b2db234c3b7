// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DylansGit/ClipSage/internal/cli/styles"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 7 // filter bar, status line, help and spacing
	minListHeight = 4
)

// ClipHistory is the read/clear side of the history store the browser needs.
type ClipHistory interface {
	FetchAll(ctx context.Context) []*entity.ClipItem
	ClearAll(ctx context.Context) error
}

// ClipCopier writes clips back to the clipboard.
type ClipCopier interface {
	Copy(ctx context.Context, item *entity.ClipItem) error
	CopyCombined(ctx context.Context, items []*entity.ClipItem) error
}

// HistoryModel is the Bubble Tea model for the interactive history browser.
type HistoryModel struct {
	// UI components
	list    list.Model
	filter  textinput.Model
	help    help.Model
	keys    styles.ClipKeyMap
	confirm *styles.ConfirmModel

	// State
	clips      []*entity.ClipItem
	checked    map[int64]bool
	filterMode bool
	showHelp   bool
	status     string
	width      int
	height     int
	err        error

	// Dependencies
	ctx     context.Context
	history ClipHistory
	copier  ClipCopier
	theme   *styles.Theme
}

// NewHistoryModel creates a new history browser model.
func NewHistoryModel(ctx context.Context, theme *styles.Theme, history ClipHistory, copier ClipCopier) HistoryModel {
	logging.FromContext(ctx).Debug().Msg("creating history model")

	m := HistoryModel{
		filter:  styles.NewFilterInput(theme),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultClipKeyMap(),
		checked: make(map[int64]bool),
		ctx:     ctx,
		history: history,
		copier:  copier,
		theme:   theme,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.updateList()
	return m
}

// clipsLoadedMsg is sent when the history has been (re)loaded.
type clipsLoadedMsg struct {
	clips []*entity.ClipItem
}

// copiedMsg is sent after a copy-back attempt.
type copiedMsg struct {
	count int
	err   error
}

// clearedMsg is sent after a history reset attempt.
type clearedMsg struct {
	err error
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return m.loadClips
}

func (m HistoryModel) loadClips() tea.Msg {
	clips := m.history.FetchAll(m.ctx)
	logging.FromContext(m.ctx).Debug().Int("count", len(clips)).Msg("loaded clip history")
	return clipsLoadedMsg{clips: clips}
}

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m.handleConfirmModal(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateList()
		return m, nil
	case tea.KeyMsg:
		if m.filterMode {
			return m.handleFilterKey(msg)
		}
		return m.handleNormalKey(msg)
	case clipsLoadedMsg:
		m.clips = msg.clips
		m.err = nil
		m.pruneChecked()
		m.updateList()
		return m, nil
	case copiedMsg:
		return m.handleCopied(msg)
	case clearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "History cleared"
		return m, m.loadClips
	}

	return m, nil
}

func (m HistoryModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			cmd = m.clearHistory()
		}
		m.confirm = nil
	}
	return m, cmd
}

func (m HistoryModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.updateList()
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.updateList()
	return m, cmd
}

func (m HistoryModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Copy):
		if clip := m.selectedClip(); clip != nil {
			return m, m.copyClip(clip)
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.toggleSelected()
		return m, nil
	case key.Matches(msg, m.keys.Combined):
		return m, m.copyCombined()
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadClips
	case key.Matches(msg, m.keys.Reset):
		confirm := styles.NewConfirm(m.theme, "Clear the whole clipboard history?")
		m.confirm = &confirm
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HistoryModel) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.status = ""
		return m, nil
	}
	m.err = nil
	if msg.count == 1 {
		m.status = "Copied 1 clip"
	} else {
		m.status = fmt.Sprintf("Copied %d clips", msg.count)
	}
	return m, nil
}

// visibleClips returns the clips matching the current filter, newest first.
func (m HistoryModel) visibleClips() []*entity.ClipItem {
	return entity.FilterClips(m.clips, m.filter.Value())
}

// SelectedClips returns the checked clips in history order.
func (m HistoryModel) SelectedClips() []*entity.ClipItem {
	out := make([]*entity.ClipItem, 0, len(m.checked))
	for _, clip := range m.clips {
		if m.checked[clip.ID] {
			out = append(out, clip)
		}
	}
	return out
}

func (m HistoryModel) selectedClip() *entity.ClipItem {
	if item, ok := m.list.SelectedItem().(styles.ClipListItem); ok {
		return item.Clip
	}
	return nil
}

func (m *HistoryModel) toggleSelected() {
	clip := m.selectedClip()
	if clip == nil {
		return
	}
	if m.checked[clip.ID] {
		delete(m.checked, clip.ID)
	} else {
		m.checked[clip.ID] = true
	}
	idx := m.list.Index()
	m.list.SetItem(idx, styles.ClipListItem{Clip: clip, Checked: m.checked[clip.ID]})
}

// pruneChecked drops selections whose clip is gone after a reload.
func (m *HistoryModel) pruneChecked() {
	present := make(map[int64]bool, len(m.clips))
	for _, clip := range m.clips {
		present[clip.ID] = true
	}
	for id := range m.checked {
		if !present[id] {
			delete(m.checked, id)
		}
	}
}

// updateList rebuilds the list from the filtered clips, keeping the cursor.
func (m *HistoryModel) updateList() {
	clips := m.visibleClips()
	items := make([]styles.ClipListItem, len(clips))
	for i, clip := range clips {
		items[i] = styles.ClipListItem{Clip: clip, Checked: m.checked[clip.ID]}
	}

	listHeight := m.height - chromeHeight
	if listHeight < minListHeight {
		listHeight = minListHeight
	}

	idx := m.list.Index()
	m.list = styles.NewClipList(m.theme, items, m.width, listHeight)
	if idx > 0 && idx < len(items) {
		m.list.Select(idx)
	}
}

func (m HistoryModel) copyClip(clip *entity.ClipItem) tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		if err := m.copier.Copy(m.ctx, clip); err != nil {
			log.Error().Err(err).Int64("id", clip.ID).Msg("copy failed")
			return copiedMsg{err: err}
		}
		log.Debug().Int64("id", clip.ID).Msg("copied clip")
		return copiedMsg{count: 1}
	}
}

func (m HistoryModel) copyCombined() tea.Cmd {
	selected := m.SelectedClips()
	if len(selected) == 0 {
		if clip := m.selectedClip(); clip != nil {
			selected = []*entity.ClipItem{clip}
		}
	}
	return func() tea.Msg {
		if err := m.copier.CopyCombined(m.ctx, selected); err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Int("count", len(selected)).Msg("combined copy failed")
			return copiedMsg{err: err}
		}
		return copiedMsg{count: len(selected)}
	}
}

func (m HistoryModel) clearHistory() tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Msg("clearing clip history")
		return clearedMsg{err: m.history.ClearAll(m.ctx)}
	}
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme

	var filterBar string
	switch {
	case m.filterMode:
		filterBar = t.InputFocused.Render(m.filter.View())
	case m.filter.Value() != "":
		filterBar = t.Subtle.Render("Filter: ") + t.Badge.Render(m.filter.Value()) + t.Subtle.Render(" (/ to edit)")
	default:
		filterBar = t.Subtle.Render("Press / to filter, space to select, c to copy selected")
	}

	header := t.Title.Render("ClipSage") + " " +
		t.Subtle.Render(fmt.Sprintf("%d of %d clips", len(m.list.Items()), len(m.clips)))
	if n := len(m.checked); n > 0 {
		header += " " + t.Badge.Render(fmt.Sprintf("%d selected", n))
	}

	listView := m.list.View()
	if len(m.list.Items()) == 0 {
		listView = t.Subtle.Render("No clips yet.")
	}

	statusLine := t.SuccessStyle.Render(m.status)
	if m.err != nil {
		statusLine = t.ErrorStyle.Render("Error: " + m.err.Error())
	}

	helpView := t.Subtle.Render("? for help • q to quit")
	if m.showHelp {
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		filterBar,
		"",
		listView,
		statusLine,
		helpView,
	)
}

var _ tea.Model = HistoryModel{}
