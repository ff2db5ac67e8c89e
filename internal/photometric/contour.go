package photometric

import (
	"fmt"
	"math"
)

// Point is a single vertex of an extracted contour polyline.
type Point struct {
	X, Y float64
}

// ExtractContours runs marching squares over field for a single
// level and returns the stitched polylines it found at that level. No contour/isoline extraction library exists
// anywhere in the reference corpus this engine was grounded on, so
// this is a hand-rolled implementation rather than an adapted one
// (spec §4.E).
func ExtractContours(field *ScalarField, level float64) [][]Point {
	segs := marchingSquaresSegments(field, level)
	return stitchSegments(segs)
}

type segment struct {
	a, b Point
}

// marchingSquaresSegments walks every cell of the field and emits the
// line segment(s) where the scalar field crosses level, using the
// standard 16-case marching-squares table with the saddle cases (5,
// 10) resolved by the cell's center average.
func marchingSquaresSegments(field *ScalarField, level float64) []segment {
	var out []segment
	ny := len(field.Y)
	nx := len(field.X)

	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			v00 := field.Values[j][i]
			v10 := field.Values[j][i+1]
			v11 := field.Values[j+1][i+1]
			v01 := field.Values[j+1][i]

			x0, x1 := field.X[i], field.X[i+1]
			y0, y1 := field.Y[j], field.Y[j+1]

			c00 := Point{x0, y0}
			c10 := Point{x1, y0}
			c11 := Point{x1, y1}
			c01 := Point{x0, y1}

			bottom := func() Point { return lerpEdge(c00, c10, v00, v10, level) }
			right := func() Point { return lerpEdge(c10, c11, v10, v11, level) }
			top := func() Point { return lerpEdge(c11, c01, v11, v01, level) }
			left := func() Point { return lerpEdge(c01, c00, v01, v00, level) }

			// A grid value exactly equal to level counts as below it
			// (standard marching-squares stability convention).
			idx := 0
			if v00 > level {
				idx |= 1
			}
			if v10 > level {
				idx |= 2
			}
			if v11 > level {
				idx |= 4
			}
			if v01 > level {
				idx |= 8
			}

			switch idx {
			case 0, 15:
				continue
			case 1, 14:
				out = append(out, segment{left(), bottom()})
			case 2, 13:
				out = append(out, segment{bottom(), right()})
			case 3, 12:
				out = append(out, segment{left(), right()})
			case 4, 11:
				out = append(out, segment{right(), top()})
			case 6, 9:
				out = append(out, segment{bottom(), top()})
			case 7, 8:
				out = append(out, segment{left(), top()})
			case 5:
				if (v00+v10+v11+v01)/4 >= level {
					out = append(out, segment{left(), top()}, segment{bottom(), right()})
				} else {
					out = append(out, segment{left(), bottom()}, segment{right(), top()})
				}
			case 10:
				if (v00+v10+v11+v01)/4 >= level {
					out = append(out, segment{left(), bottom()}, segment{right(), top()})
				} else {
					out = append(out, segment{left(), top()}, segment{bottom(), right()})
				}
			}
		}
	}
	return out
}

func lerpEdge(a, b Point, va, vb, level float64) Point {
	if va == vb {
		return a
	}
	t := (level - va) / (vb - va)
	return Point{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)}
}

// pointKey quantizes a point to a stable map key; marching-squares
// segment endpoints shared between adjacent cells are computed twice
// from the same inputs, so equality needs no fuzz beyond float
// formatting precision.
func pointKey(p Point) string {
	return fmt.Sprintf("%.9g,%.9g", p.X, p.Y)
}

// stitchSegments joins marching-squares segments that share an
// endpoint into polylines. Each endpoint is used by at most two
// segments on a non-saddle grid, so a greedy adjacency walk recovers
// the original open chains and closed loops.
func stitchSegments(segs []segment) [][]Point {
	adj := make(map[string][]int)
	used := make([]bool, len(segs))
	for i, s := range segs {
		adj[pointKey(s.a)] = append(adj[pointKey(s.a)], i)
		adj[pointKey(s.b)] = append(adj[pointKey(s.b)], i)
	}

	other := func(segIdx int, from Point) (Point, bool) {
		s := segs[segIdx]
		if pointKey(s.a) == pointKey(from) {
			return s.b, true
		}
		return s.a, true
	}

	nextUnused := func(key string) (int, bool) {
		for _, idx := range adj[key] {
			if !used[idx] {
				return idx, true
			}
		}
		return 0, false
	}

	var paths [][]Point
	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		path := []Point{segs[start].a, segs[start].b}

		for {
			tailKey := pointKey(path[len(path)-1])
			idx, ok := nextUnused(tailKey)
			if !ok {
				break
			}
			used[idx] = true
			next, _ := other(idx, path[len(path)-1])
			path = append(path, next)
		}

		for {
			headKey := pointKey(path[0])
			idx, ok := nextUnused(headKey)
			if !ok {
				break
			}
			used[idx] = true
			prev, _ := other(idx, path[0])
			path = append([]Point{prev}, path...)
		}

		paths = append(paths, path)
	}
	return paths
}

// PathLength returns the accumulated Euclidean length of a polyline.
func PathLength(path []Point) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// LabelPositions walks path vertex by vertex, accumulating the
// distance since the last label (or the path's start). Whenever that
// accumulated distance exceeds interval, it emits a label at the
// current vertex and resets the accumulator to 0 (spec §4.E; the
// vertex-walk-and-reset algorithm of the reference implementation's
// isoline labeling).
func LabelPositions(path []Point, interval float64) []Point {
	if len(path) < 2 || interval <= 0 {
		return nil
	}

	var labels []Point
	lastPt := path[0]
	accum := 0.0
	for i := 1; i < len(path); i++ {
		pt := path[i]
		dx, dy := pt.X-lastPt.X, pt.Y-lastPt.Y
		accum += math.Sqrt(dx*dx + dy*dy)
		if accum > interval {
			labels = append(labels, pt)
			accum = 0
		}
		lastPt = pt
	}
	return labels
}
