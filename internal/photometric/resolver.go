package photometric

import "sort"

// AngleResolver answers candela lookups against a parsed Table,
// folding the query horizontal angle through the table's Symmetry
// regime and bilinearly interpolating across the stored angular grid
// (spec §4.B).
type AngleResolver struct {
	table    *Table
	symmetry Symmetry
}

// NewAngleResolver builds a resolver bound to t.
func NewAngleResolver(t *Table) *AngleResolver {
	return &AngleResolver{
		table:    t,
		symmetry: ClassifySymmetry(t.MaxHorizontalAngle()),
	}
}

// Symmetry reports the regime the resolver folds queries through.
func (r *AngleResolver) Symmetry() Symmetry {
	return r.symmetry
}

// Lookup returns the candela value at world horizontal angle h and
// vertical angle v (both degrees), via bilinear interpolation over the
// table's angular grid. v is clamped to [0, 180] (spec Design Notes,
// vertical-angle clamping).
func (r *AngleResolver) Lookup(h, v float64) float64 {
	folded := r.symmetry.Fold(h)
	v = clamp(v, 0, 180)

	hLo, hHi, hFrac := bracket(r.table.HorizontalAngles, folded)
	vLo, vHi, vFrac := bracket(r.table.VerticalAngles, v)

	c00 := r.table.Candela[hLo][vLo]
	c01 := r.table.Candela[hLo][vHi]
	c10 := r.table.Candela[hHi][vLo]
	c11 := r.table.Candela[hHi][vHi]

	c0 := c00 + (c01-c00)*vFrac
	c1 := c10 + (c11-c10)*vFrac
	return c0 + (c1-c0)*hFrac
}

// LookupBatch evaluates Lookup for every (h[i], v[i]) pair against the
// same resolver (spec §4.B). The engine itself calls Lookup once per
// grid point rather than this batch form.
func (r *AngleResolver) LookupBatch(h, v []float64) []float64 {
	out := make([]float64, len(h))
	for i := range h {
		out[i] = r.Lookup(h[i], v[i])
	}
	return out
}

// bracket finds the pair of indices in a strictly increasing slice
// that bound x, clamping at the ends, and returns the fractional
// position of x between them.
func bracket(xs []float64, x float64) (lo, hi int, frac float64) {
	n := len(xs)
	if n == 1 {
		return 0, 0, 0
	}
	if x <= xs[0] {
		return 0, 1, 0
	}
	if x >= xs[n-1] {
		return n - 2, n - 1, 1
	}

	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return i, i, 0
	}
	lo = i - 1
	hi = i
	span := xs[hi] - xs[lo]
	if span == 0 {
		return lo, hi, 0
	}
	return lo, hi, (x - xs[lo]) / span
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
