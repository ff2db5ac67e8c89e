package photometric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxGridPoints is the hard ceiling on calculation-plane points a
// single request may produce (spec §4.C).
const MaxGridPoints = 5_000_000

// Grid is a regular calculation plane: every (X[i], Y[j]) pair is a
// point to evaluate, laid out row-major over Y then X (spec §4.C).
type Grid struct {
	X      []float64
	Y      []float64
	Radius float64
}

// NumPoints reports the total point count, len(X)*len(Y).
func (g *Grid) NumPoints() int {
	return len(g.X) * len(g.Y)
}

// BuildGrid lays out a square calculation plane centered on the
// luminaire's ground projection, spanning +/-radius in both axes at
// the given spacing, and refuses to allocate it if the resulting
// point count would exceed MaxGridPoints (spec §4.C).
func BuildGrid(mountingHeight, radiusFactor, spacing float64) (*Grid, error) {
	radius := mountingHeight * radiusFactor
	n := int(math.Round(2*radius/spacing)) + 1
	if n < 1 {
		n = 1
	}

	// Compare via division so a huge n cannot overflow n*n past the check;
	// a count too large for int is reported as math.MaxInt.
	if n > MaxGridPoints/n {
		total := math.MaxInt
		if n <= math.MaxInt/n {
			total = n * n
		}
		return nil, &CapacityError{PointCount: total, Limit: MaxGridPoints}
	}

	x := make([]float64, n)
	y := make([]float64, n)
	floats.Span(x, -radius, radius)
	floats.Span(y, -radius, radius)

	return &Grid{X: x, Y: y, Radius: radius}, nil
}
