package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nurikabe/gridsolve/internal/geom"
)

func square(color geom.Color) Pattern {
	return New(
		Cell{At: geom.Coordinate{I: 0, J: 0}, Color: color},
		Cell{At: geom.Coordinate{I: 0, J: 1}, Color: color},
		Cell{At: geom.Coordinate{I: 1, J: 0}, Color: color},
		Cell{At: geom.Coordinate{I: 1, J: 1}, Color: color},
	)
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	p := square(geom.Dark)
	c1 := p.Canonicalize()
	c2 := c1.Canonicalize()
	require.True(t, c1.Equal(c2))
	require.Equal(t, c1.Cells, c2.Cells)
}

func TestCanonicalizeIgnoresTranslation(t *testing.T) {
	p := square(geom.Dark)
	translated := p.Offset(geom.Coordinate{I: 5, J: -3})
	require.True(t, p.Equal(translated))
}

func TestRotate90FourTimesReturnsOriginal(t *testing.T) {
	l := New(
		Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Dark},
		Cell{At: geom.Coordinate{I: 1, J: 0}, Color: geom.Dark},
		Cell{At: geom.Coordinate{I: 2, J: 0}, Color: geom.Light},
	)
	cur := l.Canonicalize()
	start := cur
	for i := 0; i < 4; i++ {
		cur = cur.Rotate90()
	}
	require.True(t, start.Equal(cur))
}

func TestAllRotationsAndReflectionsOfSquareIsSingleton(t *testing.T) {
	// A solid monochrome square is fully symmetric under D4.
	orbit := square(geom.Dark).AllRotationsAndReflections()
	require.Len(t, orbit, 1)
}

func TestAllRotationsAndReflectionsOfLShapeHasEight(t *testing.T) {
	l := New(
		Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Dark},
		Cell{At: geom.Coordinate{I: 1, J: 0}, Color: geom.Dark},
		Cell{At: geom.Coordinate{I: 1, J: 1}, Color: geom.Light},
	)
	orbit := l.AllRotationsAndReflections()
	require.Len(t, orbit, 8)

	for i := range orbit {
		for j := range orbit {
			if i == j {
				continue
			}
			require.False(t, orbit[i].Equal(orbit[j]), "orbit members must be pairwise distinct")
		}
	}
}

func TestOffsetDoesNotCanonicalize(t *testing.T) {
	p := New(Cell{At: geom.Coordinate{I: 0, J: 0}, Color: geom.Light})
	moved := p.Offset(geom.Coordinate{I: 2, J: 3})
	require.Equal(t, geom.Coordinate{I: 2, J: 3}, moved.Cells[0].At)
}
