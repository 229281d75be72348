package spline

// CatmullRom is the uniform Catmull-Rom curve family. The curve segment runs
// from P1 (t=0) to P2 (t=1); P0 and P3 only shape the tangents at the
// endpoints and are not interpolated.
type CatmullRom struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ ParametricCurve = CatmullRom{}

// Eval evaluates the uniform Catmull-Rom blend
//
//	0.5 · (q0·p0 + q1·p1 + q2·p2 + q3·p3)
//
// with q0 = −t³+2t²−t, q1 = 3t³−5t²+2, q2 = −3t³+4t²+t, q3 = t³−t².
// t is not clamped.
func (cr CatmullRom) Eval(t float64) Point {
	t2 := t * t
	t3 := t2 * t
	q0 := -t3 + 2.0*t2 - t
	q1 := 3.0*t3 - 5.0*t2 + 2.0
	q2 := -3.0*t3 + 4.0*t2 + t
	q3 := t3 - t2
	v := Vec2(cr.P0).Mul(q0).
		Add(Vec2(cr.P1).Mul(q1)).
		Add(Vec2(cr.P2).Mul(q2)).
		Add(Vec2(cr.P3).Mul(q3)).
		Mul(0.5)
	return Point(v)
}

func (cr CatmullRom) Start() Point { return cr.P1 }
func (cr CatmullRom) End() Point   { return cr.P2 }

// Cubic returns the cubic Bézier that exactly represents this segment. The
// inner Bézier control points lie a third of the Catmull-Rom end tangents
// away from the endpoints.
//
// Converting gives access to the cubic-only operations: derivatives,
// tangents, normals, subdivision.
func (cr CatmullRom) Cubic() CubicBez {
	return CubicBez{
		cr.P1,
		cr.P1.Translate(cr.P2.Sub(cr.P0).Div(6)),
		cr.P2.Translate(cr.P3.Sub(cr.P1).Div(6).Negate()),
		cr.P2,
	}
}

func (cr CatmullRom) BoundingBox() Rect {
	return cr.Cubic().BoundingBox()
}

func (cr CatmullRom) Transform(aff Affine) CatmullRom {
	return CatmullRom{
		P0: cr.P0.Transform(aff),
		P1: cr.P1.Transform(aff),
		P2: cr.P2.Transform(aff),
		P3: cr.P3.Transform(aff),
	}
}

func (cr CatmullRom) IsInf() bool {
	return cr.P0.IsInf() || cr.P1.IsInf() || cr.P2.IsInf() || cr.P3.IsInf()
}

func (cr CatmullRom) IsNaN() bool {
	return cr.P0.IsNaN() || cr.P1.IsNaN() || cr.P2.IsNaN() || cr.P3.IsNaN()
}

// Seg returns the tagged-union form of the segment.
func (cr CatmullRom) Seg() Segment {
	return Segment{Kind: CatmullRomKind, P0: cr.P0, P1: cr.P1, P2: cr.P2, P3: cr.P3}
}
