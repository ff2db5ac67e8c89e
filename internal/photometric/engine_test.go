package photometric

import (
	"context"
	"math"
	"testing"
)

// axialTable is a horizontally symmetric (H_max=0) table whose candela
// falls from peak at nadir to 0 at zenith: every horizontal angle reads
// the same candela curve, so rotating
// about the vertical (Z) mounting axis must never change the field.
func axialTable(peak float64) *Table {
	return &Table{
		NumVerticalAngles:   3,
		NumHorizontalAngles: 1,
		PhotometricType:     TypeC,
		CandelaMultiplier:   1,
		VerticalAngles:      []float64{0, 90, 180},
		HorizontalAngles:    []float64{0},
		Candela: [][]float64{
			{peak, peak / 2, 0},
		},
	}
}

func uniformGrid(radius, spacing float64) *Grid {
	g, err := BuildGrid(radius, 1, spacing)
	if err != nil {
		panic(err)
	}
	return g
}

func TestComputeFieldAxialInvariantUnderZRotation(t *testing.T) {
	table := axialTable(1000)
	grid := uniformGrid(10, 2)

	a, err := ComputeField(context.Background(), table, grid, 10, 0, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("ComputeField: %v", err)
	}
	b, err := ComputeField(context.Background(), table, grid, 10, 0, 1, 0, 0, 45)
	if err != nil {
		t.Fatalf("ComputeField: %v", err)
	}

	for j := range a.Values {
		for i := range a.Values[j] {
			if !almostEqual(a.Values[j][i], b.Values[j][i], 1e-9) {
				t.Fatalf("axial table field changed under Z rotation at (%d,%d): %v vs %v",
					i, j, a.Values[j][i], b.Values[j][i])
			}
		}
	}
}

func TestComputeFieldLLFScaling(t *testing.T) {
	table := axialTable(1000)
	grid := uniformGrid(10, 2)

	full, err := ComputeField(context.Background(), table, grid, 10, 0, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("ComputeField: %v", err)
	}
	half, err := ComputeField(context.Background(), table, grid, 10, 0, 0.5, 0, 0, 0)
	if err != nil {
		t.Fatalf("ComputeField: %v", err)
	}

	for j := range full.Values {
		for i := range full.Values[j] {
			want := full.Values[j][i] * 0.5
			if !almostEqual(half.Values[j][i], want, 1e-9) {
				t.Fatalf("LLF scaling mismatch at (%d,%d): got %v, want %v", i, j, half.Values[j][i], want)
			}
		}
	}
}

func TestComputeFieldInverseCubeOnAxis(t *testing.T) {
	table := axialTable(1000)

	pointAt := func(mountingHeight float64) float64 {
		grid := &Grid{X: []float64{0}, Y: []float64{0}, Radius: 0}
		field, err := ComputeField(context.Background(), table, grid, mountingHeight, 0, 1, 0, 0, 0)
		if err != nil {
			t.Fatalf("ComputeField: %v", err)
		}
		return field.Values[0][0]
	}

	e10 := pointAt(10)
	e20 := pointAt(20)

	// Directly below the luminaire, d == mounting height, so E should
	// fall off as 1/d^2 once the deltaZ/d^3 law's extra deltaZ factor
	// is accounted for: E = I*deltaZ/d^3 = I/d^2 on axis.
	ratio := e10 / e20
	want := math.Pow(20.0/10.0, 2)
	if !almostEqual(ratio, want, 1e-6) {
		t.Errorf("on-axis falloff ratio = %v, want %v", ratio, want)
	}
}

func TestComputeFieldCancellation(t *testing.T) {
	table := axialTable(1000)
	grid := uniformGrid(50, 0.5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ComputeField(ctx, table, grid, 10, 0, 1, 0, 0, 0); err == nil {
		t.Fatal("expected error from pre-cancelled context")
	}
}
