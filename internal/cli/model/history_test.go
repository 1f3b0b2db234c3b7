package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DylansGit/ClipSage/internal/application/port/mocks"
	"github.com/DylansGit/ClipSage/internal/application/usecase"
	"github.com/DylansGit/ClipSage/internal/cli/styles"
	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/infrastructure/config"
)

type fakeHistory struct {
	clips    []*entity.ClipItem
	clearErr error
	cleared  int
}

func (f *fakeHistory) FetchAll(context.Context) []*entity.ClipItem {
	return f.clips
}

func (f *fakeHistory) ClearAll(context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared++
	f.clips = []*entity.ClipItem{}
	return nil
}

func testClips() []*entity.ClipItem {
	now := time.Now()
	return []*entity.ClipItem{
		{ID: 3, Kind: entity.ClipKindText, Content: "gamma ray", Timestamp: now},
		{ID: 2, Kind: entity.ClipKindImage, Content: "Invoice TOTAL", ImagePath: "/tmp/a.png", Timestamp: now.Add(-time.Minute)},
		{ID: 1, Kind: entity.ClipKindText, Content: "alpha", Timestamp: now.Add(-time.Hour)},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds msg to the model and drops any returned command.
func press(t *testing.T, m HistoryModel, msg tea.Msg) HistoryModel {
	t.Helper()
	next, _ := m.Update(msg)
	hm, ok := next.(HistoryModel)
	require.True(t, ok)
	return hm
}

// send feeds msg to the model and resolves the returned command chain.
func send(t *testing.T, m HistoryModel, msg tea.Msg) HistoryModel {
	t.Helper()
	for msg != nil {
		next, cmd := m.Update(msg)
		hm, ok := next.(HistoryModel)
		require.True(t, ok)
		m = hm
		if cmd == nil {
			break
		}
		msg = cmd()
	}
	return m
}

func newLoadedModel(t *testing.T, history *fakeHistory, clipboard *mocks.MockClipboard) HistoryModel {
	t.Helper()
	theme := styles.NewTheme(config.DefaultConfig())
	m := NewHistoryModel(context.Background(), theme, history, usecase.NewCopyClipUseCase(clipboard))
	return send(t, m, m.Init()())
}

func TestHistoryModel_LoadsNewestFirst(t *testing.T) {
	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, mocks.NewMockClipboard(t))

	require.Len(t, m.list.Items(), 3)
	first, ok := m.list.SelectedItem().(styles.ClipListItem)
	require.True(t, ok)
	assert.Equal(t, int64(3), first.Clip.ID)
	assert.Contains(t, m.View(), "gamma ray")
}

func TestHistoryModel_FilterIsCaseInsensitive(t *testing.T) {
	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, mocks.NewMockClipboard(t))

	m = press(t, m, runeKey('/'))
	require.True(t, m.filterMode)
	for _, r := range "total" {
		m = press(t, m, runeKey(r))
	}
	require.Len(t, m.list.Items(), 1)
	item := m.list.Items()[0].(styles.ClipListItem)
	assert.Equal(t, int64(2), item.Clip.ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filterMode)
	assert.Len(t, m.list.Items(), 1, "filter stays applied after enter")

	m = press(t, m, runeKey('/'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.list.Items(), 3, "esc clears the filter")
}

func TestHistoryModel_EnterCopiesSelected(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText(mock.Anything, "gamma ray").Return(nil).Once()

	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, clipboard)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, m.err)
	assert.Equal(t, "Copied 1 clip", m.status)
}

func TestHistoryModel_CombinedCopyUsesHistoryOrder(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText(mock.Anything, "gamma ray\n\nalpha").Return(nil).Once()

	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, clipboard)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	selected := m.SelectedClips()
	require.Len(t, selected, 2)
	assert.Equal(t, int64(3), selected[0].ID)
	assert.Equal(t, int64(1), selected[1].ID)

	m = send(t, m, runeKey('c'))
	assert.Equal(t, "Copied 2 clips", m.status)
}

func TestHistoryModel_SpaceTogglesSelection(t *testing.T) {
	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, mocks.NewMockClipboard(t))

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = press(t, m, space)
	assert.Len(t, m.SelectedClips(), 1)
	m = press(t, m, space)
	assert.Empty(t, m.SelectedClips())
}

func TestHistoryModel_CopyErrorIsShown(t *testing.T) {
	clipboard := mocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText(mock.Anything, "gamma ray").Return(errors.New("no display")).Once()

	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, clipboard)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no display")
}

func TestHistoryModel_ImageWithoutTextCannotBeCopied(t *testing.T) {
	history := &fakeHistory{clips: []*entity.ClipItem{
		{ID: 1, Kind: entity.ClipKindImage, ImagePath: "/tmp/x.png", Timestamp: time.Now()},
	}}
	m := newLoadedModel(t, history, mocks.NewMockClipboard(t))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.err, usecase.ErrNothingToCopy)
}

func TestHistoryModel_ResetRequiresConfirm(t *testing.T) {
	history := &fakeHistory{clips: testClips()}
	m := newLoadedModel(t, history, mocks.NewMockClipboard(t))

	m = press(t, m, runeKey('x'))
	require.NotNil(t, m.confirm)
	m = press(t, m, runeKey('n'))
	assert.Nil(t, m.confirm)
	assert.Equal(t, 0, history.cleared)

	m = press(t, m, runeKey('x'))
	m = send(t, m, runeKey('y'))
	require.Equal(t, 1, history.cleared)
	assert.Equal(t, "History cleared", m.status)
	assert.Empty(t, m.list.Items())
	assert.Contains(t, m.View(), "No clips yet.")
}

func TestHistoryModel_ResetErrorIsShown(t *testing.T) {
	history := &fakeHistory{clips: testClips(), clearErr: errors.New("locked")}
	m := newLoadedModel(t, history, mocks.NewMockClipboard(t))

	m = press(t, m, runeKey('x'))
	m = send(t, m, runeKey('y'))

	require.Error(t, m.err)
	assert.Len(t, m.clips, 3)
}

func TestHistoryModel_RefreshPrunesSelection(t *testing.T) {
	history := &fakeHistory{clips: testClips()}
	m := newLoadedModel(t, history, mocks.NewMockClipboard(t))

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Len(t, m.SelectedClips(), 1)

	history.clips = history.clips[1:]
	m = send(t, m, runeKey('r'))

	assert.Empty(t, m.SelectedClips())
	assert.Len(t, m.list.Items(), 2)
}

func TestHistoryModel_Quit(t *testing.T) {
	m := newLoadedModel(t, &fakeHistory{clips: testClips()}, mocks.NewMockClipboard(t))

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
