package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9d3cf9"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

type phase int

const (
	editing phase = iota
	searching
	finished
)

func (p phase) String() string {
	switch p {
	case editing:
		return "edit"
	case searching:
		return "search"
	default:
		return "done"
	}
}

// stepMsg asks for one search step. gen ties it to the tick chain that
// scheduled it so that stale chains die out after a pause or restart.
type stepMsg struct{ gen int }

func stepCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return stepMsg{gen: gen}
	})
}

type model struct {
	sess     *session
	palette  *render.Palette
	display  config.DisplayConfig
	interval time.Duration
	outPath  string
	logger   *slog.Logger

	keys   keyMap
	help   help.Model
	cursor gridgraph.Position
	phase  phase
	paused bool
	gen    int

	message    string
	messageErr bool
}

func newModel(sess *session, cfg config.Config, outPath string, logger *slog.Logger) model {
	return model{
		sess:     sess,
		palette:  render.NewPalette(nil),
		display:  cfg.Display,
		interval: cfg.FrameInterval(),
		outPath:  outPath,
		logger:   logger,
		keys:     keys,
		help:     help.New(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case stepMsg:
		if msg.gen != m.gen || m.phase != searching || m.paused {
			return m, nil
		}
		if m.advance() {
			return m, stepCmd(m.interval, m.gen)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Edit):
		m.sess.stop()
		m.phase, m.paused = editing, false
		m.gen++
		m.setMessage("", nil)
	}

	switch m.phase {
	case editing:
		return m.handleEditKey(msg)
	case searching:
		return m.handleSearchKey(msg)
	}

	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.sess.g
	switch {
	case key.Matches(msg, m.keys.Obstacle):
		m.setMessage("", g.ToggleObstacle(m.cursor))
	case key.Matches(msg, m.keys.Start):
		m.setMessage("", g.MoveStart(m.cursor))
	case key.Matches(msg, m.keys.End):
		m.setMessage("", g.MoveEnd(m.cursor))
	case key.Matches(msg, m.keys.Clear):
		g.Reset()
		m.setMessage("grid cleared", nil)
	case key.Matches(msg, m.keys.Search):
		if err := m.sess.start(); err != nil {
			m.setMessage("", err)
			return m, nil
		}
		m.phase, m.paused = searching, false
		m.gen++
		m.setMessage("", nil)
		return m, stepCmd(m.interval, m.gen)
	}

	return m, nil
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			m.gen++
			return m, stepCmd(m.interval, m.gen)
		}
	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.advance()
		}
	}

	return m, nil
}

// advance performs one search step and reports whether more remain.
func (m *model) advance() bool {
	done, err := m.sess.step()
	if err != nil {
		m.setMessage("", err)
		m.phase = finished
		return false
	}
	if done {
		m.phase = finished
		return false
	}
	return true
}

func (m *model) moveCursor(dr, dc int) {
	next := m.cursor.Add(gridgraph.Position{Row: dr, Col: dc})
	if m.sess.g.InBounds(next) {
		m.cursor = next
	}
}

func (m *model) save() {
	if err := saveLayout(m.sess.g, m.outPath); err != nil {
		m.setMessage("", err)
		return
	}
	m.logger.Info("grid saved", "path", m.outPath)
	m.setMessage("saved to "+m.outPath, nil)
}

func (m *model) setMessage(text string, err error) {
	if err != nil {
		m.message, m.messageErr = err.Error(), true
		return
	}
	m.message, m.messageErr = text, false
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("gridpath"))
	s.WriteString(statusStyle.Render(fmt.Sprintf("  %s · cursor %s", m.phase, m.cursor)))
	s.WriteString("\n\n")

	cursor := m.cursor
	s.WriteString(m.palette.Grid(m.sess.g, render.Options{
		CellWidth:  m.display.CellWidth,
		CellHeight: m.display.CellHeight,
		Glyphs:     m.display.Glyphs,
		Cursor:     &cursor,
	}))
	s.WriteString("\n")

	status := m.sess.summary()
	if m.paused {
		status += " (paused)"
	}
	s.WriteString(statusStyle.Render(status))
	s.WriteString("\n")

	if m.message != "" {
		if m.messageErr {
			s.WriteString(errorStyle.Render(m.message))
		} else {
			s.WriteString(m.message)
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))

	return s.String()
}
