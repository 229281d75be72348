package spline

// CubicBSpline is a single segment of a uniform cubic B-spline, evaluated in
// the basis-function form. The family is approximating, not interpolating: in
// general the curve touches none of its four control points at either
// endpoint.
type CubicBSpline struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ ParametricCurve = CubicBSpline{}

// Eval evaluates the uniform B-spline basis blend. The four control points
// are folded into the polynomial coefficients
//
//	c0 = (−p0 + 3p1 − 3p2 + p3) / 6
//	c1 = (3p0 − 6p1 + 3p2) / 6
//	c2 = (−3p0 + 3p2) / 6
//	c3 = (p0 + 4p1 + p2) / 6
//
// and the cubic c3 + t·(c2 + t·(c1 + t·c0)) is evaluated in Horner form.
// t is not clamped.
func (bs CubicBSpline) Eval(t float64) Point {
	p0 := Vec2(bs.P0)
	p1 := Vec2(bs.P1)
	p2 := Vec2(bs.P2)
	p3 := Vec2(bs.P3)
	c0 := p0.Negate().Add(p1.Mul(3.0)).Sub(p2.Mul(3.0)).Add(p3).Div(6.0)
	c1 := p0.Mul(3.0).Sub(p1.Mul(6.0)).Add(p2.Mul(3.0)).Div(6.0)
	c2 := p2.Sub(p0).Mul(3.0).Div(6.0)
	c3 := p0.Add(p1.Mul(4.0)).Add(p2).Div(6.0)
	return Point(c3.Add(c2.Add(c1.Add(c0.Mul(t)).Mul(t)).Mul(t)))
}

// Start returns the curve point at t=0, (p0 + 4p1 + p2)/6. Unlike the other
// families this is generally not a control point.
func (bs CubicBSpline) Start() Point { return bs.Eval(0) }

// End returns the curve point at t=1, (p1 + 4p2 + p3)/6.
func (bs CubicBSpline) End() Point { return bs.Eval(1) }

// Cubic returns the cubic Bézier that exactly represents this segment, via
// the standard uniform basis change.
//
// Converting gives access to the cubic-only operations: derivatives,
// tangents, normals, subdivision.
func (bs CubicBSpline) Cubic() CubicBez {
	p0 := Vec2(bs.P0)
	p1 := Vec2(bs.P1)
	p2 := Vec2(bs.P2)
	p3 := Vec2(bs.P3)
	return CubicBez{
		Point(p0.Add(p1.Mul(4.0)).Add(p2).Div(6.0)),
		Point(p1.Mul(4.0).Add(p2.Mul(2.0)).Div(6.0)),
		Point(p1.Mul(2.0).Add(p2.Mul(4.0)).Div(6.0)),
		Point(p1.Add(p2.Mul(4.0)).Add(p3).Div(6.0)),
	}
}

func (bs CubicBSpline) BoundingBox() Rect {
	return bs.Cubic().BoundingBox()
}

func (bs CubicBSpline) Transform(aff Affine) CubicBSpline {
	return CubicBSpline{
		P0: bs.P0.Transform(aff),
		P1: bs.P1.Transform(aff),
		P2: bs.P2.Transform(aff),
		P3: bs.P3.Transform(aff),
	}
}

func (bs CubicBSpline) IsInf() bool {
	return bs.P0.IsInf() || bs.P1.IsInf() || bs.P2.IsInf() || bs.P3.IsInf()
}

func (bs CubicBSpline) IsNaN() bool {
	return bs.P0.IsNaN() || bs.P1.IsNaN() || bs.P2.IsNaN() || bs.P3.IsNaN()
}

// Seg returns the tagged-union form of the segment.
func (bs CubicBSpline) Seg() Segment {
	return Segment{Kind: BSplineKind, P0: bs.P0, P1: bs.P1, P2: bs.P2, P3: bs.P3}
}
