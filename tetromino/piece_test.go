package tetromino

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	expected := map[Kind]Shape{
		I: {{1, 1, 1, 1}},
		J: {{2, 0, 0}, {2, 2, 2}},
		L: {{0, 0, 3}, {3, 3, 3}},
		O: {{4, 4}, {4, 4}},
		S: {{0, 5, 5}, {5, 5, 0}},
		T: {{0, 6, 0}, {6, 6, 6}},
		Z: {{7, 7, 0}, {0, 7, 7}},
	}

	require.Len(t, Kinds, 7)
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := Template(k)
			require.Equal(t, expected[k], s)
			require.Len(t, slices.Collect(s.Cells()), 4)
			for c := range s.Cells() {
				assert.Equal(t, k, c.Kind)
			}
		})
	}
}

func TestTemplateUnknownKind(t *testing.T) {
	require.Panics(t, func() { Template(Empty) })
	require.Panics(t, func() { Template(Z + 1) })
	require.Panics(t, func() { New(Kind(42), 10) })
}

func TestTemplateIsACopy(t *testing.T) {
	p := New(T, 10)
	p.Shape[0][0] = Z
	p.Rotate()

	require.Equal(t, Shape{{0, 6, 0}, {6, 6, 6}}, Template(T))
}

func TestNewAnchor(t *testing.T) {
	cases := []struct {
		kind Kind
		cols int
		x    int
	}{
		{I, 10, 3},
		{O, 10, 4},
		{T, 10, 4},
		{I, 15, 5},
		{J, 15, 6},
	}

	for _, c := range cases {
		p := New(c.kind, c.cols)
		assert.Equal(t, c.kind, p.Kind)
		assert.Equal(t, c.x, p.X, "%s on %d cols", c.kind, c.cols)
		assert.Equal(t, 0, p.Y)
	}
}

func TestRotated(t *testing.T) {
	s := Template(J)
	r := s.Rotated()

	require.Equal(t, Shape{{2, 2}, {2, 0}, {2, 0}}, r)
	require.Equal(t, Shape{{2, 0, 0}, {2, 2, 2}}, s, "receiver must not change")

	i := Template(I).Rotated()
	require.Equal(t, Shape{{1}, {1}, {1}, {1}}, i)
}

func TestRotateFourTimes(t *testing.T) {
	for _, k := range Kinds {
		p := New(k, 10)
		orig := p.Shape.Clone()

		for range 4 {
			h, w := p.Shape.Height(), p.Shape.Width()
			p.Rotate()
			require.Equal(t, w, p.Shape.Height())
			require.Equal(t, h, p.Shape.Width())
			assert.Equal(t, k, p.Kind)
		}
		require.True(t, orig.Equal(p.Shape), "%s after 4 rotations", k)
	}
}

func TestPieceClone(t *testing.T) {
	p := New(S, 10)
	c := p.Clone()
	c.Shape[0][1] = Empty

	require.Equal(t, S, p.Shape[0][1])
}
