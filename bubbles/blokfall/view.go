package blokfall

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ghthor/tartis/engine"
	"github.com/ghthor/tartis/teamodel"
	"github.com/ghthor/tartis/tetromino"
)

const (
	DebugBlock   = "╺╸"
	DefaultBlock = "  "
	DefaultEmpty = "  "
	GhostBlock   = "░░"
)

var kindColors = map[tetromino.Kind]lipgloss.Color{
	tetromino.I: "#00FFFF",
	tetromino.J: "#0000FF",
	tetromino.L: "#FFA500",
	tetromino.O: "#FFFF00",
	tetromino.S: "#00FF00",
	tetromino.T: "#800080",
	tetromino.Z: "#FF0000",
}

var (
	cellStyles  = make(map[tetromino.Kind]lipgloss.Style, len(kindColors))
	ghostStyles = make(map[tetromino.Kind]lipgloss.Style, len(kindColors))

	Bold      = lipgloss.NewStyle().Bold(true)
	Faint     = lipgloss.NewStyle().Faint(true)
	SidePanel = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	GameOverBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 1).
			Bold(true).
			Align(lipgloss.Center)
)

func init() {
	for k, c := range kindColors {
		cellStyles[k] = lipgloss.NewStyle().Background(c)
		ghostStyles[k] = lipgloss.NewStyle().Foreground(c).Faint(true)
	}
}

type tableView struct {
	board string
	side  string
}

var _ table.Data = tableView{}

func (t tableView) At(row, col int) string {
	switch col {
	case 0:
		return t.board
	case 1:
		return t.side
	default:
		return ""
	}
}

func (t tableView) Rows() int    { return 1 }
func (t tableView) Columns() int { return 2 }

func (m *Model) View() string {
	if !m.render {
		return m.b.String()
	}

	m.b.Reset()
	m.PrintBoard(&m.b)
	m.tableView.board = m.b.String()
	m.b.Reset()

	m.PrintSide(&m.b)
	m.tableView.side = SidePanel.Render(m.b.String())
	m.b.Reset()

	m.render = false
	m.table.Data(m.tableView)
	v := m.table.Render()

	if m.session.GameOver() {
		m.overlay.Foreground = teamodel.String(m.gameOverView())
		m.overlay.Background = teamodel.String(v)
		v = m.overlay.View()
	}

	m.b.WriteString(v)
	m.b.WriteString("\n")
	m.b.WriteString(m.help.View(m.keys))
	return m.b.String()
}

func (m *Model) gameOverView() string {
	return GameOverBox.Render(fmt.Sprintf("GAME OVER\nscore %d\n\npress %s", m.session.Score(), m.keys.Restart.Help().Key))
}

// PrintBoard draws the grid with the active piece and its landing spot on
// top of it.
func (m *Model) PrintBoard(w io.Writer) {
	var (
		board  = m.session.Board()
		active tetromino.Piece
		ghost  tetromino.Piece
	)
	if !m.session.GameOver() {
		active = m.session.Active()
		ghost = m.session.Ghost()
	}

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.At(x, y)
			if k := pieceAt(active, x, y); k != engine.Empty {
				cell = k
			}

			switch {
			case cell != engine.Empty:
				fmt.Fprint(w, m.colors[cell].Render(m.filled))
			case pieceAt(ghost, x, y) != engine.Empty:
				fmt.Fprint(w, m.ghosts[ghost.Kind].Render(GhostBlock))
			default:
				fmt.Fprint(w, DefaultEmpty)
			}
		}
		if y+1 != board.Height() {
			fmt.Fprintln(w)
		}
	}
}

// PrintSide draws the next piece preview, the score and the recent clears.
func (m *Model) PrintSide(w io.Writer) {
	fmt.Fprintln(w, Bold.Render("Next"))
	m.PrintPiece(w, m.session.Next())
	fmt.Fprintln(w)

	fmt.Fprintln(w, Bold.Render("Score"))
	fmt.Fprintln(w, m.session.Score())
	fmt.Fprintln(w, Bold.Render("Lines"))
	fmt.Fprint(w, m.session.Lines())

	if m.clears.Len() > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w)
		fmt.Fprint(w, Bold.Render("Clears"))
		for c := range m.clears.Iter() {
			fmt.Fprintln(w)
			fmt.Fprint(w, Faint.Render(fmt.Sprintf("+%d ×%d", c.Points, c.Lines)))
		}
	}
}

func (m *Model) PrintPiece(w io.Writer, p tetromino.Piece) {
	b := &m.pieceBuf
	b.Reset()

	for y, row := range p.Shape {
		for _, cell := range row {
			if cell == engine.Empty {
				fmt.Fprint(b, DefaultEmpty)
			} else {
				fmt.Fprint(b, m.colors[cell].Render(m.filled))
			}
		}
		if y+1 < p.Shape.Height() {
			fmt.Fprintln(b)
		}
	}
	fmt.Fprintln(w, b.String())
}

// pieceAt returns the piece's cell covering board position (x, y).
func pieceAt(p tetromino.Piece, x, y int) tetromino.Kind {
	cx, cy := x-p.X, y-p.Y
	if cy < 0 || cy >= p.Shape.Height() || cx < 0 || cx >= p.Shape.Width() {
		return engine.Empty
	}
	return p.Shape[cy][cx]
}
