// Package engine holds the game state: the grid, the active and next pieces
// and the score. Every operation is synchronous and returns immediately; the
// caller decides when gravity happens.
package engine

import (
	"fmt"

	"github.com/ghthor/tartis/tetromino"
)

type State int

const (
	Spawning State = iota
	Active
	Locking
	GameOver
)

func (s State) String() string {
	switch s {
	case Spawning:
		return "spawning"
	case Active:
		return "active"
	case Locking:
		return "locking"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step reports what a single AdvanceGravity did.
type Step struct {
	Moved    bool
	Locked   bool
	Cleared  int
	Points   uint64
	GameOver bool
}

type Session struct {
	board *Board
	src   Source

	active *tetromino.Piece
	next   *tetromino.Piece

	state State
	score uint64
	lines int
	locks int
}

type Option func(*Session)

// WithSize sets the board dimensions. They are fixed for the session.
func WithSize(cols, rows int) Option {
	return func(s *Session) {
		s.board = NewBoard(cols, rows)
	}
}

func WithSource(src Source) Option {
	return func(s *Session) {
		s.src = src
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = NewBoard(Cols, Rows)
	}
	if s.src == nil {
		s.src = defaultSource()
	}

	s.start()
	return s
}

// Reset clears the board and score and begins a new game with the same
// dimensions and source.
func (s *Session) Reset() {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.locks = 0
	s.start()
}

func (s *Session) start() {
	s.state = Spawning
	s.active = s.newPiece()
	s.next = s.newPiece()
	s.spawned()
}

func (s *Session) newPiece() *tetromino.Piece {
	return tetromino.New(randKind(s.src), s.board.width)
}

// spawned moves out of Spawning once the active piece is in place.
func (s *Session) spawned() {
	if s.board.Collides(s.active) {
		s.state = GameOver
		return
	}
	s.state = Active
}

// TryMove translates the active piece by (dx, dy) if the result is valid.
func (s *Session) TryMove(dx, dy int) bool {
	if s.state != Active {
		return false
	}

	p := s.active
	if !s.board.Valid(p.Shape, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// TryRotate turns the active piece clockwise in place if the rotated shape
// fits at the current anchor. There are no kicks.
func (s *Session) TryRotate() bool {
	if s.state != Active {
		return false
	}

	p := s.active
	r := p.Shape.Rotated()
	if !s.board.Valid(r, p.X, p.Y) {
		return false
	}
	p.Shape = r
	return true
}

// AdvanceGravity drops the active piece one row, or locks it when it cannot
// fall any further.
func (s *Session) AdvanceGravity() Step {
	if s.state != Active {
		return Step{GameOver: s.state == GameOver}
	}

	if s.TryMove(0, 1) {
		return Step{Moved: true}
	}
	return s.lock()
}

func (s *Session) lock() Step {
	s.state = Locking

	cleared := s.board.LockPiece(s.active)
	points := Score(cleared)
	s.score += points
	s.lines += cleared
	s.locks++

	s.state = Spawning
	s.active, s.next = s.next, s.newPiece()
	s.spawned()

	return Step{
		Locked:   true,
		Cleared:  cleared,
		Points:   points,
		GameOver: s.state == GameOver,
	}
}

func (s *Session) Board() *BoardView { return &BoardView{s.board} }

// Active returns a copy of the active piece.
func (s *Session) Active() tetromino.Piece { return s.active.Clone() }

// Next returns a copy of the next piece.
func (s *Session) Next() tetromino.Piece { return s.next.Clone() }

// Ghost returns the active piece moved down as far as it validly goes.
func (s *Session) Ghost() tetromino.Piece {
	g := s.active.Clone()
	for s.board.Valid(g.Shape, g.X, g.Y+1) {
		g.Y++
	}
	return g
}

func (s *Session) Score() uint64  { return s.score }
func (s *Session) Lines() int     { return s.lines }
func (s *Session) Locks() int     { return s.locks }
func (s *Session) State() State   { return s.state }
func (s *Session) GameOver() bool { return s.state == GameOver }

// BoardView is a read only handle on a session's grid.
type BoardView struct {
	b *Board
}

func (v *BoardView) Width() int                             { return v.b.width }
func (v *BoardView) Height() int                            { return v.b.height }
func (v *BoardView) At(x, y int) tetromino.Kind             { return v.b.At(x, y) }
func (v *BoardView) Rows() [][]tetromino.Kind               { return v.b.Rows() }
func (v *BoardView) Valid(s tetromino.Shape, x, y int) bool { return v.b.Valid(s, x, y) }
