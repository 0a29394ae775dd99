// Package tetromino models the falling pieces: their kind, their cell matrix
// and their anchor on a board.
package tetromino

import (
	"iter"
	"slices"
)

// Shape is a piece matrix indexed [row][col]. Occupied cells hold the piece
// kind, everything else is Empty.
type Shape [][]Kind

func (s Shape) Height() int { return len(s) }

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = slices.Clone(s[y])
	}
	return c
}

func (s Shape) Equal(o Shape) bool {
	return slices.EqualFunc(s, o, slices.Equal[[]Kind])
}

// Rotated returns s turned 90° clockwise. An h×w shape becomes w×h and s is
// left untouched.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for y := range w {
		r[y] = make([]Kind, h)
		for x := range h {
			r[y][x] = s[h-1-x][y]
		}
	}
	return r
}

// Cell is an occupied cell relative to the shape's top-left corner.
type Cell struct {
	X, Y int
	Kind Kind
}

// Cells yields every occupied cell, row by row.
func (s Shape) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y, row := range s {
			for x, k := range row {
				if k == Empty {
					continue
				}
				if !yield(Cell{X: x, Y: y, Kind: k}) {
					return
				}
			}
		}
	}
}

type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int // top-left corner of Shape on the board
}

// New returns a piece of kind k centered over a board cols wide, on row 0.
// It panics when k is not one of the seven kinds.
func New(k Kind, cols int) *Piece {
	s := Template(k)
	return &Piece{
		Kind:  k,
		Shape: s,
		X:     cols/2 - s.Width()/2,
		Y:     0,
	}
}

// Rotate commits a clockwise rotation. Callers validate Shape.Rotated()
// against the board first.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotated()
}

func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
