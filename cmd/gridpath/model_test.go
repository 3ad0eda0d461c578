package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/metrics"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(model)
	}
	return m, cmd
}

func tick(t *testing.T, m model) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(stepMsg{gen: m.gen})
	return next.(model), cmd
}

func newTestModel(t *testing.T, rows, cols int) model {
	t.Helper()
	g, err := gridgraph.BuildEmpty(rows, cols)
	require.NoError(t, err)
	sess := newSession(g, metrics.NewRegistry(), discardLogger())
	return newModel(sess, config.Default(), filepath.Join(t.TempDir(), "out.txt"), discardLogger())
}

func TestModel_Editing(t *testing.T) {
	m := newTestModel(t, 3, 3)

	m, _ = press(t, m, "x")
	assert.True(t, m.messageErr, "the start cell cannot become an obstacle")

	m, _ = press(t, m, "j", "l", "x")
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 1}, m.cursor)
	assert.False(t, m.messageErr)

	m, _ = press(t, m, "j", "l", "b", "k", "k", "h", "h", "h", "k")
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 0}, m.cursor, "cursor stays inside the grid")
	assert.Equal(t, "A**\n*X*\n**B\n", m.sess.g.String())

	m, _ = press(t, m, "c")
	assert.Equal(t, "A**\n***\n**B\n", m.sess.g.String())
	assert.NotEmpty(t, m.View())
}

func TestModel_SearchRunsOnTicks(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m, _ = press(t, m, "j", "l", "x", "j", "l", "b")
	require.Equal(t, "A**\n*X*\n**B\n", m.sess.g.String())

	m, cmd := press(t, m, "enter")
	require.Equal(t, searching, m.phase)
	require.NotNil(t, cmd)

	// A tick from an older chain is ignored.
	stale, cmd := m.Update(stepMsg{gen: m.gen - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, stale.(model).sess.engine.Steps())

	for i := 0; m.phase == searching; i++ {
		require.Less(t, i, 100)
		m, cmd = tick(t, m)
	}
	assert.Nil(t, cmd, "the tick chain ends with the search")
	assert.Equal(t, finished, m.phase)
	assert.Contains(t, m.sess.summary(), "reachable")
	assert.Equal(t, "Ao.\noXo\n.oB\n", m.sess.g.String())

	m, _ = press(t, m, "esc")
	assert.Equal(t, editing, m.phase)
	assert.Equal(t, "A**\n*X*\n**B\n", m.sess.g.String())
}

func TestModel_PauseAndSingleStep(t *testing.T) {
	m := newTestModel(t, 2, 5)
	m, _ = press(t, m, "j", "l", "l", "l", "l", "b", "enter", " ")
	require.True(t, m.paused)

	m, cmd := tick(t, m)
	assert.Nil(t, cmd, "paused searches do not reschedule")
	assert.Equal(t, 0, m.sess.engine.Steps())

	m, _ = press(t, m, "n", "n")
	assert.Equal(t, 2, m.sess.engine.Steps())

	m, cmd = press(t, m, " ")
	assert.False(t, m.paused)
	assert.NotNil(t, cmd)
}

func TestModel_SaveAndQuit(t *testing.T) {
	m := newTestModel(t, 2, 2)
	m, _ = press(t, m, "s")
	require.False(t, m.messageErr, m.message)

	g, err := gridgraph.Load(m.outPath)
	require.NoError(t, err)
	assert.Equal(t, "AB\n**\n", g.String())

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
