package tui

import (
	"testing"

	"github.com/Utility-Gods/uwuify/internal/app"
	"github.com/Utility-Gods/uwuify/internal/db"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestSubmitRecordsEntry(t *testing.T) {
	store, err := db.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	a := app.NewApp()
	require.NoError(t, a.Select("owo"))

	m := typeLine(t, New(a, store), "hello")

	require.Len(t, m.Entries(), 1)
	assert.Equal(t, "hello", m.Entries()[0].Input)
	assert.Equal(t, "hewwo", m.Entries()[0].Output)
	assert.Equal(t, "owo", m.Entries()[0].Style)
	assert.Empty(t, m.Value())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Contains(t, m.View(), "hewwo")
}

func TestRecallWalksHistory(t *testing.T) {
	m := New(app.NewApp(), nil)
	m = typeLine(t, m, "first")
	m = typeLine(t, m, "second")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "second", m.Value())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", m.Value())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", m.Value(), "recall stops at the oldest entry")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.Value())
}

func TestHistoryIsCapped(t *testing.T) {
	m := New(app.NewApp(), nil)
	for i := 0; i < historySize+3; i++ {
		m = typeLine(t, m, "line")
	}
	assert.Len(t, m.Entries(), historySize)
}

func TestTabCyclesStyle(t *testing.T) {
	a := app.NewApp()
	m := New(a, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "owo", a.Selected().Shortcut)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "shout", a.Selected().Shortcut)

	m = typeLine(t, m, "hi")
	assert.Equal(t, "HI", m.Entries()[0].Output)
}

func TestEscQuits(t *testing.T) {
	_, cmd := send(t, New(app.NewApp(), nil), tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestReopenedPreviewShowsJournal(t *testing.T) {
	store, err := db.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	a := app.NewApp()
	typeLine(t, New(a, store), "first")

	m := New(a, store)
	require.Len(t, m.Entries(), 1)
	assert.Equal(t, "first", m.Entries()[0].Input)
	assert.Contains(t, m.View(), "first")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", m.Value())
}

func TestCtrlLClearsJournal(t *testing.T) {
	store, err := db.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	m := typeLine(t, New(app.NewApp(), store), "hello")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Empty(t, m.Entries())
	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Empty(t, m.Value())

	assert.Empty(t, New(app.NewApp(), store).Entries())
}
