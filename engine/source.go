package engine

import (
	"math/rand"
	"time"

	"github.com/ghthor/tartis/tetromino"
)

// Source picks pieces. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type SourceFunc func(n int) int

func (f SourceFunc) Intn(n int) int { return f(n) }

func NewRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func defaultSource() Source {
	return NewRandSource(time.Now().UnixNano())
}

// Sequence returns a Source that yields kinds in order, wrapping around when
// it runs out.
func Sequence(kinds ...tetromino.Kind) Source {
	if len(kinds) == 0 {
		panic("engine: empty piece sequence")
	}
	i := 0
	return SourceFunc(func(n int) int {
		k := kinds[i%len(kinds)]
		i++
		return indexOf(k) % n
	})
}

func indexOf(k tetromino.Kind) int {
	for i, kk := range tetromino.Kinds {
		if kk == k {
			return i
		}
	}
	panic("engine: unknown piece kind " + k.String())
}

func randKind(src Source) tetromino.Kind {
	return tetromino.Kinds[src.Intn(len(tetromino.Kinds))]
}
