package spline

import "sort"

// CubicBez is the cubic Bézier curve family, blending four control points in
// the degree-3 Bernstein basis. It is the only family in this package with
// analytic derivative, tangent, and normal support.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ ParametricCurve = CubicBez{}
var _ Extremer = CubicBez{}

// Eval evaluates the Bernstein blend
// (1−t)³·p0 + 3(1−t)²t·p1 + 3(1−t)t²·p2 + t³·p3.
//
// The curve interpolates P0 at t=0 and P3 at t=1. t is not clamped.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) Start() Point { return cb.P0 }
func (cb CubicBez) End() Point   { return cb.P3 }

// Differentiate returns the derivative of the curve, a quadratic Bézier when
// interpreted as a vector-valued function of t. [CubicBez.Derivative] is the
// pointwise form.
func (cb CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(cb.P1.Sub(cb.P0).Mul(3)),
		Point(cb.P2.Sub(cb.P1).Mul(3)),
		Point(cb.P3.Sub(cb.P2).Mul(3)),
	}
}

// Derivative evaluates the first derivative at t:
// 3(1−t)²·(p1−p0) + 6(1−t)t·(p2−p1) + 3t²·(p3−p2).
func (cb CubicBez) Derivative(t float64) Vec2 {
	mt := 1.0 - t
	return cb.P1.Sub(cb.P0).Mul(3.0 * mt * mt).
		Add(cb.P2.Sub(cb.P1).Mul(6.0 * mt * t)).
		Add(cb.P3.Sub(cb.P2).Mul(3.0 * t * t))
}

// SecondDerivative evaluates the second derivative at t:
// 6(1−t)·(p1−p0) + 6(2t−1)·(p2−p1) + 6t·(p3−p2).
func (cb CubicBez) SecondDerivative(t float64) Vec2 {
	mt := 1.0 - t
	return cb.P1.Sub(cb.P0).Mul(6.0 * mt).
		Add(cb.P2.Sub(cb.P1).Mul(6.0 * (2.0*t - 1.0))).
		Add(cb.P3.Sub(cb.P2).Mul(6.0 * t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (cb CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := cb.Eval(0.5)
	return CubicBez{
			cb.P0,
			cb.P0.Midpoint(cb.P1),
			Point(Vec2(cb.P0).Add(Vec2(cb.P1).Mul(2.0)).Add(Vec2(cb.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(cb.P1).Add(Vec2(cb.P2).Mul(2.0)).Add(Vec2(cb.P3)).Mul(0.25)),
			cb.P2.Midpoint(cb.P3),
			cb.P3,
		}
}

// Subsegment returns the cubic covering the parameter range [t0, t1].
func (cb CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := cb.Eval(t0)
	p3 := cb.Eval(t1)
	d := cb.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (cb CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4
	// possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := cb.P1.Sub(cb.P0)
	d1 := cb.P2.Sub(cb.P1)
	d2 := cb.P3.Sub(cb.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (cb CubicBez) BoundingBox() Rect {
	return BoundingBox(cb)
}

// Tangents returns non-normalized tangent directions at the start and end of
// the curve, falling back to farther control points when the nearer ones
// coincide with the endpoint.
func (cb CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := cb.P1.Sub(cb.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := cb.P2.Sub(cb.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = cb.P3.Sub(cb.P0)
		}
	}
	d23 := cb.P3.Sub(cb.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := cb.P3.Sub(cb.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = cb.P3.Sub(cb.P0)
		}
	}
	return d0, d1
}

func (cb CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: cb.P0.Transform(aff),
		P1: cb.P1.Transform(aff),
		P2: cb.P2.Transform(aff),
		P3: cb.P3.Transform(aff),
	}
}

func (cb CubicBez) IsInf() bool {
	return cb.P0.IsInf() || cb.P1.IsInf() || cb.P2.IsInf() || cb.P3.IsInf()
}

func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}

// Seg returns the tagged-union form of the cubic.
func (cb CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: cb.P0, P1: cb.P1, P2: cb.P2, P3: cb.P3}
}
