package blokfall

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/ghthor/tartis/engine"
	"github.com/ghthor/tartis/tetromino"
	"github.com/ghthor/tartis/unsafering"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type GameResetMsg int
type ToggleDebugMsg int

// Clear is one lock that removed rows.
type Clear struct {
	At     time.Time
	Lines  int
	Points uint64
}

const recentClears = 5

type Model struct {
	b        strings.Builder
	pieceBuf strings.Builder

	session *engine.Session
	gravity time.Duration
	tick    int64

	keys KeyMap
	help help.Model

	log *log.Logger

	clears *unsafering.Buffer[Clear]

	render bool

	table *table.Table
	tableView
	overlay *overlay.Model

	colors map[tetromino.Kind]lipgloss.Style
	ghosts map[tetromino.Kind]lipgloss.Style
	filled string

	debug bool
}

var _ tea.Model = &Model{}

type Option func(*Model)

// WithSession plays s instead of a fresh default session.
func WithSession(s *engine.Session) Option {
	return func(m *Model) { m.session = s }
}

func WithGravity(d time.Duration) Option {
	return func(m *Model) { m.gravity = d }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.log = l }
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func New(opts ...Option) *Model {
	m := &Model{
		gravity: DefaultGravity,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		clears:  unsafering.New[Clear](recentClears),
		colors:  cellStyles,
		ghosts:  ghostStyles,
		filled:  DefaultBlock,
		render:  true,

		table:   table.New().Border(lipgloss.RoundedBorder()),
		overlay: overlay.New(nil, nil, overlay.Center, overlay.Center, 0, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.session == nil {
		m.session = engine.NewSession()
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	return m
}

func (m *Model) Session() *engine.Session { return m.session }

func (m *Model) Init() tea.Cmd {
	m.render = true

	a := m.session.Active()
	m.log.Info("game started", "cols", m.session.Board().Width(), "rows", m.session.Board().Height(), "piece", a.Kind)
	return m.NewTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.UpdateBlokFall(msg)
}

func (m *Model) UpdateBlokFall(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.render = true

	case tea.KeyMsg:
		return m, m.HandleKey(msg)

	case GameResetMsg:
		return m, m.Reset()

	case ToggleDebugMsg:
		m.debug = !m.debug
		if m.debug {
			m.filled = DebugBlock
		} else {
			m.filled = DefaultBlock
		}
		m.render = true

	case TickMsg:
		return m, m.HandleTickMsg(msg)
	}
	return m, nil
}

func (m *Model) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.render = true
		return nil

	case key.Matches(msg, m.keys.Restart):
		return m.Reset()
	}

	if m.session.GameOver() {
		return nil
	}

	var moved bool
	switch {
	case key.Matches(msg, m.keys.Left):
		moved = m.session.TryMove(-1, 0)
	case key.Matches(msg, m.keys.Right):
		moved = m.session.TryMove(1, 0)
	case key.Matches(msg, m.keys.Down):
		moved = m.session.TryMove(0, 1)
	case key.Matches(msg, m.keys.Rotate):
		moved = m.session.TryRotate()
	}
	if moved {
		m.render = true
	}
	return nil
}

func (m *Model) HandleTickMsg(msg TickMsg) tea.Cmd {
	if msg.Tick != m.tick {
		// Tick was canceled
		return nil
	}

	step := m.session.AdvanceGravity()
	if step.Moved {
		m.render = true
		return m.NewTick()
	}
	if !step.Locked {
		return nil
	}

	m.render = true
	if step.Cleared > 0 {
		m.clears.Push(Clear{At: msg.Time, Lines: step.Cleared, Points: step.Points})
		m.log.Info("lines cleared", "lines", step.Cleared, "points", step.Points, "score", m.session.Score())
	}
	m.log.Debug("locked", "locks", m.session.Locks(), "next", m.session.Next().Kind)

	if step.GameOver {
		m.log.Info("game over", "score", m.session.Score(), "lines", m.session.Lines(), "locks", m.session.Locks())
		return nil
	}
	return m.NewTick()
}

// NewTick schedules the next gravity step and cancels any pending one.
func (m *Model) NewTick() tea.Cmd {
	m.tick++
	return NewTick(m.gravity, m.tick)
}

func (m *Model) Reset() tea.Cmd {
	m.session.Reset()
	m.clears.Clear()
	m.render = true
	m.log.Info("game reset")
	return m.NewTick()
}
