package spline

// degenerateEpsilon is the derivative magnitude below which normalization is
// skipped. At a cusp, or when control points coincide, the derivative
// vanishes and dividing by its magnitude would be unstable; instead the raw
// near-zero vector is kept, so tangent and normal lines collapse to the curve
// point rather than fail.
const degenerateEpsilon = 1e-6

// direction returns v normalized to unit length, or v unchanged when its
// magnitude does not exceed degenerateEpsilon.
func direction(v Vec2) Vec2 {
	if m := v.Hypot(); m > degenerateEpsilon {
		return v.Mul(1.0 / m)
	}
	return v
}

// Tangent returns the unit tangent vector at t.
//
// In the degenerate case the raw near-zero derivative is returned instead;
// see [CubicBez.TangentLine] for the consequences.
func (cb CubicBez) Tangent(t float64) Vec2 {
	return direction(cb.Derivative(t))
}

// Normal returns the unit normal vector at t, the tangent direction rotated
// 90° counter-clockwise. The same degenerate fallback as [CubicBez.Tangent]
// applies.
func (cb CubicBez) Normal(t float64) Vec2 {
	return direction(cb.Derivative(t).Turn90())
}

// TangentLine returns the tangent segment of the given length at t, centered
// on the curve point and extending ±length/2 along the tangent direction.
//
// In the degenerate case the direction is near-zero and the returned segment
// collapses to the curve point.
func (cb CubicBez) TangentLine(t, length float64) Line {
	return frameLine(cb.Eval(t), cb.Tangent(t), length)
}

// NormalLine returns the normal segment of the given length at t, centered on
// the curve point. It is constructed exactly like [CubicBez.TangentLine], but
// along the normal direction.
func (cb CubicBez) NormalLine(t, length float64) Line {
	return frameLine(cb.Eval(t), cb.Normal(t), length)
}

func frameLine(pt Point, dir Vec2, length float64) Line {
	half := dir.Mul(0.5 * length)
	return Line{
		P0: pt.Translate(half.Negate()),
		P1: pt.Translate(half),
	}
}
