package photometric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

func rotX(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotY(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotZ(rad float64) *mat.Dense {
	c, s := math.Cos(rad), math.Sin(rad)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// InverseRotation returns the matrix that carries a world-frame vector
// into the luminaire's local frame, given the intrinsic X->Y->Z
// local-to-world mounting rotation (rx, ry, rz in degrees). It is the
// composition Rx(-rx) . Ry(-ry) . Rz(-rz), the order that undoes an
// intrinsic X->Y->Z rotation (spec Design Notes, rotation convention).
type InverseRotation struct {
	m *mat.Dense
}

// NewInverseRotation builds the inverse rotation for the given mount
// rotation, in degrees.
func NewInverseRotation(rx, ry, rz float64) *InverseRotation {
	rxInv := rotX(deg2rad(-rx))
	ryInv := rotY(deg2rad(-ry))
	rzInv := rotZ(deg2rad(-rz))

	var ryz mat.Dense
	ryz.Mul(ryInv, rzInv)
	var combined mat.Dense
	combined.Mul(rxInv, &ryz)

	return &InverseRotation{m: &combined}
}

// Apply carries world vector (x, y, z) into the luminaire's local
// frame.
func (r *InverseRotation) Apply(x, y, z float64) (lx, ly, lz float64) {
	world := mat.NewVecDense(3, []float64{x, y, z})
	var local mat.VecDense
	local.MulVec(r.m, world)
	return local.AtVec(0), local.AtVec(1), local.AtVec(2)
}

// LocalAngles converts a local-frame vector into the luminaire's
// native (horizontal, vertical) angle pair, with the luminaire's
// un-rotated nadir along -Z: vertical is measured from nadir (0) to
// zenith (180), horizontal is the azimuth around the nadir axis in
// [0, 360) (spec §4.B, §4.D).
func LocalAngles(lx, ly, lz float64) (h, v float64) {
	norm := math.Sqrt(lx*lx + ly*ly + lz*lz)
	if norm == 0 {
		return 0, 0
	}
	v = math.Acos(clamp(-lz/norm, -1, 1)) * 180 / math.Pi
	h = math.Atan2(ly, lx) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h, v
}
