package noise

import (
	"math"
	"math/rand"
)

// 2D gradient table: 8 directions around the unit circle plus the diagonals,
// same family of vectors classic Perlin/simplex implementations use.
var (
	gradX = [8]float64{1, -1, 1, -1, 1, -1, 0, 0}
	gradY = [8]float64{1, 1, -1, -1, 0, 0, 1, -1}
)

// Skew factors for the 2D simplex grid.
const (
	skew2D   = 0.366025403784438646 // 0.5*(sqrt(3)-1)
	unskew2D = 0.211324865405187117 // (3-sqrt(3))/6
)

// Table is a 512-entry permutation table. Entries 256..511 duplicate 0..255 so
// lookups never need an index wrap. Every value in [0,255] appears exactly twice.
type Table [512]int

// NewTable shuffles the identity sequence [0..255] with a seed-driven random
// source and duplicates it into the upper half. The same seed always produces
// the same table; seed 0 is a valid seed like any other.
func NewTable(seed float64) Table {
	rnd := rand.New(rand.NewSource(seedSource(seed)))

	var t Table
	for i := 0; i < 256; i++ {
		t[i] = i
	}
	for i := 0; i < 256; i++ {
		j := rnd.Intn(256-i) + i
		t[i], t[j] = t[j], t[i]
		t[i+256] = t[i]
	}
	return t
}

// seedSource maps a float seed onto a rand source seed. Bit reinterpretation
// rather than truncation, so seeds that differ only fractionally still produce
// distinct shuffles.
func seedSource(seed float64) int64 {
	return int64(math.Float64bits(seed))
}

func grad2(hash int, x, y float64) float64 {
	i := hash & 7
	return gradX[i]*x + gradY[i]*y
}

func floorToInt(d float64) int {
	i := int(d)
	if d < float64(i) {
		i--
	}
	return i
}

// Sample evaluates 2D simplex noise at (x, y) using the given permutation
// table. Deterministic in (table, x, y), continuous, and bounded to roughly
// [-1, 1]. Safe for any finite input, including large magnitudes.
func Sample(t Table, x, y float64) float64 {
	// Skew input space to determine the containing simplex cell.
	s := (x + y) * skew2D
	i := floorToInt(x + s)
	j := floorToInt(y + s)

	// Unskew back to (x, y) space; x0/y0 are offsets from the cell origin.
	u := float64(i+j) * unskew2D
	x0 := x - (float64(i) - u)
	y0 := y - (float64(j) - u)

	// The middle corner depends on which triangle of the cell we are in.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskew2D
	y1 := y0 - float64(j1) + unskew2D
	x2 := x0 - 1.0 + 2.0*unskew2D
	y2 := y0 - 1.0 + 2.0*unskew2D

	ii := i & 255
	jj := j & 255

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(t[ii+t[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(t[ii+i1+t[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(t[ii+1+t[jj+1]], x2, y2)
	}

	// Scale the corner contributions so the result fits [-1, 1].
	return 70.0 * (n0 + n1 + n2)
}
