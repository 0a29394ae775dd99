package engine

import (
	"slices"

	"github.com/ghthor/tartis/tetromino"
)

const (
	Rows = 20
	Cols = 10

	Empty = tetromino.Empty
)

type Board struct {
	width, height int

	cleared [][]tetromino.Kind
	lines   [][]tetromino.Kind
	cells   [][]tetromino.Kind
}

func NewBoard(w, h int) *Board {
	cells := make([][]tetromino.Kind, h)
	for i := range cells {
		cells[i] = make([]tetromino.Kind, w)
	}

	return &Board{
		width: w, height: h,
		cleared: make([][]tetromino.Kind, 0, 4),
		lines:   make([][]tetromino.Kind, h),
		cells:   cells,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// At returns the cell at column x, row y. Coordinates off the board read as
// Empty.
func (b *Board) At(x, y int) tetromino.Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty
	}
	return b.cells[y][x]
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]tetromino.Kind {
	rows := make([][]tetromino.Kind, b.height)
	for y := range b.cells {
		rows[y] = slices.Clone(b.cells[y])
	}
	return rows
}

// Valid reports whether shape fits with its top-left corner at (x, y). Every
// occupied cell must land inside the columns and above the floor. Cells above
// row 0 are not checked against the grid.
func (b *Board) Valid(s tetromino.Shape, x, y int) bool {
	for c := range s.Cells() {
		bx := x + c.X
		by := y + c.Y
		if bx < 0 || bx >= b.width || by >= b.height {
			return false
		}
		if by >= 0 && b.cells[by][bx] != Empty {
			return false
		}
	}
	return true
}

func (b *Board) Collides(p *tetromino.Piece) bool {
	return !b.Valid(p.Shape, p.X, p.Y)
}

// LockPiece writes the piece into the grid and clears any rows it completed.
// Cells above row 0 have nowhere to go and are dropped.
func (b *Board) LockPiece(p *tetromino.Piece) int {
	for c := range p.Shape.Cells() {
		bx := p.X + c.X
		by := p.Y + c.Y
		if by >= 0 && by < b.height && bx >= 0 && bx < b.width {
			b.cells[by][bx] = p.Kind
		}
	}
	return b.ClearLines()
}

// ClearLines removes every full row, collapsing the rows above it, and
// returns how many were removed.
func (b *Board) ClearLines() int {
	b.lines, b.cells = b.cells, b.lines
	b.cells = b.cells[:0]

	b.cleared = b.cleared[:0]

	// iterate from bottom to top
	for y := b.height - 1; y >= 0; y-- {
		if slices.Contains(b.lines[y], Empty) {
			b.cells = append(b.cells, b.lines[y])
		} else {
			b.cleared = append(b.cleared, b.lines[y])
		}
	}

	// Empty the cleared lines and reuse them as the new top rows
	for _, row := range b.cleared {
		clear(row)
		b.cells = append(b.cells, row)
	}

	// reverse since we built from bottom up
	slices.Reverse(b.cells)

	return len(b.cleared)
}

func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Score is the points for clearing lines rows with a single lock.
func Score(lines int) uint64 {
	return uint64(lines*lines) * 100
}
