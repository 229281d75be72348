package spline

import "iter"

// Sample returns an iterator over steps+1 evenly spaced points on the curve:
// c(i/steps) for i = 0..steps. This is the polyline-building loop display
// code consumes. steps values below 1 are treated as 1.
//
// Use [slices.Collect] to materialize the polyline.
func Sample(c ParametricCurve, steps int) iter.Seq[Point] {
	if steps < 1 {
		steps = 1
	}
	return func(yield func(Point) bool) {
		for i := range steps + 1 {
			if !yield(c.Eval(float64(i) / float64(steps))) {
				break
			}
		}
	}
}
