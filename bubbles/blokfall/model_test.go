package blokfall

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ghthor/tartis/engine"
	"github.com/ghthor/tartis/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(kinds ...tetromino.Kind) *Model {
	s := engine.NewSession(engine.WithSource(engine.Sequence(kinds...)))
	m := New(WithSession(s))
	m.Init()
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// tick delivers the current gravity tick.
func tick(m *Model) tea.Cmd {
	_, cmd := m.Update(TickMsg{Tick: m.tick})
	return cmd
}

func TestKeys(t *testing.T) {
	m := newTestModel(tetromino.I)
	s := m.Session()
	require.Equal(t, 3, s.Active().X)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, s.Active().X)
	m.Update(runeKey('a'))
	assert.Equal(t, 1, s.Active().X)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(runeKey('d'))
	assert.Equal(t, 3, s.Active().X)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runeKey('s'))
	assert.Equal(t, 2, s.Active().Y)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, tetromino.Shape{{1}, {1}, {1}, {1}}, s.Active().Shape)
	m.Update(runeKey('w'))
	assert.Equal(t, tetromino.Shape{{1, 1, 1, 1}}, s.Active().Shape)

	assert.Equal(t, 0, s.Locks(), "keys never lock a piece")
}

func TestQuit(t *testing.T) {
	m := newTestModel(tetromino.T)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTick(t *testing.T) {
	m := newTestModel(tetromino.O)
	s := m.Session()

	stale := m.tick
	require.NotNil(t, tick(m))
	require.Equal(t, 1, s.Active().Y)

	_, cmd := m.Update(TickMsg{Tick: stale})
	require.Nil(t, cmd)
	require.Equal(t, 1, s.Active().Y)
}

// dropWithTicks lets gravity take the active piece until it locks.
func dropWithTicks(t *testing.T, m *Model) {
	t.Helper()
	s := m.Session()
	locks := s.Locks()
	for range s.Board().Height() + 1 {
		require.NotNil(t, tick(m))
		if s.Locks() != locks {
			return
		}
	}
	t.Fatal("piece never locked")
}

func TestTickLocksAndClears(t *testing.T) {
	m := newTestModel(tetromino.I)
	s := m.Session()

	// two flat pieces cover columns 0..7 of the bottom row
	require.True(t, s.TryMove(-3, 0))
	dropWithTicks(t, m)
	require.True(t, s.TryMove(1, 0))
	dropWithTicks(t, m)

	// upright pieces fill columns 8 and 9
	m.Update(runeKey('w'))
	require.True(t, s.TryMove(5, 0))
	dropWithTicks(t, m)
	require.Equal(t, uint64(0), s.Score())
	require.Equal(t, 0, m.clears.Len())

	m.Update(runeKey('w'))
	require.True(t, s.TryMove(6, 0))
	dropWithTicks(t, m)

	require.Equal(t, uint64(100), s.Score())
	require.Equal(t, 1, m.clears.Len())
	c, ok := m.clears.AtInWindow(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1, c.Lines)
	assert.Equal(t, uint64(100), c.Points)

	assert.Contains(t, m.View(), "+100 ×1")
}

func playUntilGameOver(t *testing.T, m *Model) {
	t.Helper()
	for range 500 {
		if m.Session().GameOver() {
			return
		}
		tick(m)
	}
	t.Fatal("game never ended")
}

func TestGameOver(t *testing.T) {
	m := newTestModel(tetromino.O)
	s := m.Session()

	playUntilGameOver(t, m)
	require.Equal(t, 10, s.Locks())

	_, cmd := m.Update(TickMsg{Tick: m.tick})
	require.Nil(t, cmd, "no gravity after game over")

	grid := s.Board().Rows()
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, grid, s.Board().Rows())

	assert.Contains(t, m.View(), "GAME OVER")

	_, cmd = m.Update(runeKey('r'))
	require.NotNil(t, cmd)
	require.False(t, s.GameOver())
	require.Equal(t, 0, s.Locks())
	assert.NotContains(t, m.View(), "GAME OVER")
}

func TestGameResetMsgCancelsTicks(t *testing.T) {
	m := newTestModel(tetromino.T)
	s := m.Session()

	old := m.tick
	m.Update(GameResetMsg(0))
	_, cmd := m.Update(TickMsg{Tick: old})
	require.Nil(t, cmd)
	require.Equal(t, 0, s.Active().Y)
}

func TestView(t *testing.T) {
	m := newTestModel(tetromino.T, tetromino.Z)
	m.Update(ToggleDebugMsg(0))

	v := m.View()
	assert.Contains(t, v, "Next")
	assert.Contains(t, v, "Score")
	assert.Contains(t, v, "Lines")
	// active T plus the Z preview
	assert.Equal(t, 8, strings.Count(v, DebugBlock))
	assert.Equal(t, 4, strings.Count(v, GhostBlock))

	require.Equal(t, v, m.View(), "cached view")

	m.Update(ToggleDebugMsg(0))
	assert.NotContains(t, m.View(), DebugBlock)
}

func TestHelp(t *testing.T) {
	m := newTestModel(tetromino.T)
	assert.Contains(t, m.View(), "rotate")
	assert.NotContains(t, m.View(), "restart")

	m.Update(runeKey('?'))
	assert.Contains(t, m.View(), "restart")
}
