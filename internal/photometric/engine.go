package photometric

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// ScalarField is the illuminance value at every (X[i], Y[j]) point of
// a Grid, row-major over Y then X, in the native illuminance unit
// implied by the grid's length unit (spec §4.D).
type ScalarField struct {
	X      []float64
	Y      []float64
	Values [][]float64 // Values[j][i] corresponds to X[i], Y[j]
}

// ComputeField evaluates the point-source illuminance law at every
// point of grid, for a luminaire mounted mountingHeight above grade
// and rotated rx/ry/rz degrees about its own X/Y/Z axes (intrinsic,
// applied local-to-world), reporting illuminance at calcPlaneHeight
// and scaled by llf. Rows are evaluated concurrently via an errgroup,
// since the engine has no cross-row state to share (spec §4.D,
// Concurrency & Resource Model) — cancellation is honored between
// rows, never mid-row, so a cancelled context never yields a partial
// row.
func ComputeField(ctx context.Context, t *Table, grid *Grid, mountingHeight, calcPlaneHeight, llf, rx, ry, rz float64) (*ScalarField, error) {
	resolver := NewAngleResolver(t)
	inv := NewInverseRotation(rx, ry, rz)
	deltaZ := mountingHeight - calcPlaneHeight

	field := &ScalarField{
		X:      grid.X,
		Y:      grid.Y,
		Values: make([][]float64, len(grid.Y)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for j := range grid.Y {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			field.Values[j] = computeRow(resolver, inv, grid.X, grid.Y[j], deltaZ, llf)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return field, nil
}

func computeRow(resolver *AngleResolver, inv *InverseRotation, xs []float64, y, deltaZ, llf float64) []float64 {
	row := make([]float64, len(xs))
	for i, x := range xs {
		row[i] = computePoint(resolver, inv, x, y, deltaZ, llf)
	}
	return row
}

// computePoint evaluates E = I(h, v) * deltaZ / d^3 * llf at one
// ground point, where d is the unrotated world distance from the
// luminaire to the point (distance is invariant under the mounting
// rotation, so it is always computed from the unrotated vector) and
// (h, v) are the luminaire-local angles toward the point after
// undoing the mounting rotation (spec §4.D).
func computePoint(resolver *AngleResolver, inv *InverseRotation, x, y, deltaZ, llf float64) float64 {
	d := math.Sqrt(x*x + y*y + deltaZ*deltaZ)
	if d == 0 {
		return 0
	}

	lx, ly, lz := inv.Apply(x, y, -deltaZ)
	h, v := LocalAngles(lx, ly, lz)

	intensity := resolver.Lookup(h, v)
	e := intensity * deltaZ / (d * d * d)
	return e * llf
}
