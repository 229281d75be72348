package spline

import "math"

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, the quadratic term is ignored and the
// single remaining root is returned; the other root might be out of
// representable range. In the degenerate case where all coefficients are
// zero, so that all values of x satisfy the equation, a single 0.0 is
// returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsNaN(sc0) || math.IsInf(sc1, 0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as a linear equation.
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		}
		if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	if arg < 0.0 {
		return [2]float64{}, 0
	} else if arg == 0.0 {
		return [2]float64{-0.5 * sc1}, 1
	}
	// Compute the root away from cancellation, then the other via the product
	// of roots. See https://math.stackexchange.com/questions/866331
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	// Sort just to be friendly and make results deterministic.
	if root2 < root1 {
		root1, root2 = root2, root1
	}
	return [2]float64{root1, root2}, 2
}
