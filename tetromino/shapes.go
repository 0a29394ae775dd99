package tetromino

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetrominoes. It doubles as the cell value
// stored in a board, so Empty must stay 0.
type Kind uint8

const (
	Empty Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// Kinds lists the playable kinds in id order.
var Kinds = []Kind{I, J, L, O, S, T, Z}

var kindNames = [...]string{
	Empty: ".",
	I:     "I",
	J:     "J",
	L:     "L",
	O:     "O",
	S:     "S",
	T:     "T",
	Z:     "Z",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) Valid() bool {
	return k >= I && k <= Z
}

var templates [Z + 1]Shape

func init() {
	visualDefs := map[Kind]string{
		I: `
|IIII
`,
		J: `
|J
|JJJ
`,
		L: `
|  L
|LLL
`,
		O: `
|OO
|OO
`,
		S: `
| SS
|SS
`,
		T: `
| T
|TTT
`,
		Z: `
|ZZ
| ZZ
`,
	}

	for k, v := range visualDefs {
		s, err := parseVisual(k, v)
		if err != nil {
			panic(fmt.Sprintf("failed to parse visual for %s: %v", k, err))
		}
		templates[k] = s
	}
}

// parseVisual converts a drawing into a Shape. Only lines beginning with '|'
// are read; the characters after it are the columns. The kind's letter marks
// an occupied cell, a space an empty one. Short lines are padded with empty
// cells to the widest line.
func parseVisual(k Kind, v string) (Shape, error) {
	v = strings.TrimSpace(v)
	lines := make([]string, 0, 4)
	width := 0
	for ln := range strings.SplitSeq(v, "\n") {
		if !strings.HasPrefix(ln, "|") {
			continue
		}
		ln = ln[1:] // drop the '|' border char
		lines = append(lines, ln)
		width = max(width, len(ln))
	}
	if len(lines) == 0 || width == 0 {
		return nil, fmt.Errorf("empty visual")
	}

	letter := k.String()[0]
	s := make(Shape, len(lines))
	n := 0
	for y, row := range lines {
		s[y] = make([]Kind, width)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case letter:
				s[y][x] = k
				n++
			case ' ':
			default:
				return nil, fmt.Errorf("unexpected %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	if n != 4 {
		return nil, fmt.Errorf("tetromino has %d cells", n)
	}
	return s, nil
}

// Template returns a fresh copy of the shape for k. It panics when k is not
// one of the seven kinds.
func Template(k Kind) Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("tetromino: unknown kind %d", uint8(k)))
	}
	return templates[k].Clone()
}
