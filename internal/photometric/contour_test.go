package photometric

import (
	"math"
	"testing"
)

// syntheticField builds a scalar field of x^2 + y^2 over a square grid,
// whose iso-level-L contour is a circle of radius sqrt(L) centered at
// the origin.
func syntheticField(half, spacing float64) *ScalarField {
	n := int(2*half/spacing) + 1
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = -half + float64(i)*spacing
	}
	values := make([][]float64, n)
	for j, y := range xs {
		row := make([]float64, n)
		for i, x := range xs {
			row[i] = x*x + y*y
		}
		values[j] = row
	}
	return &ScalarField{X: xs, Y: xs, Values: values}
}

// TestContourFaithfulness checks that every vertex marching squares
// emits for the level-25 contour of x^2+y^2 lies within grid
// resolution of the true circle radius 5.
func TestContourFaithfulness(t *testing.T) {
	field := syntheticField(10, 0.1)
	paths := ExtractContours(field, 25)

	if len(paths) == 0 {
		t.Fatal("expected at least one contour path")
	}

	const wantRadius = 5.0
	const tol = 0.15 // a few grid cells of slack at this resolution
	count := 0
	for _, path := range paths {
		for _, p := range path {
			r := math.Hypot(p.X, p.Y)
			if math.Abs(r-wantRadius) > tol {
				t.Errorf("contour point (%v,%v) has radius %v, want ~%v", p.X, p.Y, r, wantRadius)
			}
			count++
		}
	}
	if count == 0 {
		t.Fatal("no contour vertices produced")
	}
}

// TestLabelPositionsSpacing checks the vertex-walk-and-reset algorithm:
// a two-vertex path only ever gets a label at a vertex, never at an
// interpolated point, and the accumulator resets after each label.
func TestLabelPositionsSpacing(t *testing.T) {
	path := []Point{{0, 0}, {100, 0}}
	labels := LabelPositions(path, 40)
	if len(labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(labels))
	}
	if labels[0].X != 100 || labels[0].Y != 0 {
		t.Errorf("labels = %v, want a single label at (100, 0)", labels)
	}
}

func TestLabelPositionsMultipleVertices(t *testing.T) {
	path := []Point{{0, 0}, {20, 0}, {50, 0}, {55, 0}, {100, 0}}
	labels := LabelPositions(path, 40)
	// accum after each vertex: 20, 50(>40 -> label at (50,0), reset),
	// 55-50=5, 5+45=50(>40 -> label at (100,0), reset).
	want := []Point{{50, 0}, {100, 0}}
	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d: %v", len(labels), len(want), labels)
	}
	for i, l := range labels {
		if l != want[i] {
			t.Errorf("labels[%d] = %v, want %v", i, l, want[i])
		}
	}
}

func TestLabelPositionsEmptyBelowInterval(t *testing.T) {
	path := []Point{{0, 0}, {10, 0}}
	if labels := LabelPositions(path, 40); len(labels) != 0 {
		t.Errorf("got %d labels, want 0 for a path shorter than the interval", len(labels))
	}
}

func TestPathLength(t *testing.T) {
	path := []Point{{0, 0}, {3, 4}}
	if got := PathLength(path); got != 5 {
		t.Errorf("PathLength = %v, want 5", got)
	}
}
