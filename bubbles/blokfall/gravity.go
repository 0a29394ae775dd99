package blokfall

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultGravity is how long a piece rests on each row.
const DefaultGravity = 500 * time.Millisecond

// TickMsg is one gravity step. Tick identifies the chain of ticks it belongs
// to so ticks scheduled before a restart are ignored.
type TickMsg struct {
	time.Time
	Tick int64
}

func NewTick(d time.Duration, tick int64) tea.Cmd {
	return tea.Tick(d, newTickMsg(tick))
}

func newTickMsg(tick int64) func(time.Time) tea.Msg {
	return func(t time.Time) tea.Msg { return TickMsg{t, tick} }
}
