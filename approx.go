package spline

import "math"

// ApproxEq reports whether a and b differ by at most epsilon. It is meant for
// verification layers on top of this package; the evaluation code itself
// never compares approximately.
func ApproxEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// ApproxEq reports whether the euclidean distance between pt and o is at most
// epsilon.
func (pt Point) ApproxEq(o Point, epsilon float64) bool {
	return pt.Distance(o) <= epsilon
}

// ApproxEq reports whether the magnitude of v−o is at most epsilon.
func (v Vec2) ApproxEq(o Vec2, epsilon float64) bool {
	return v.Sub(o).Hypot() <= epsilon
}
