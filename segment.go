package spline

import "fmt"

// SegmentKind selects the curve family of a [Segment]. The set is closed;
// functions switching over it treat any other value as a programming error.
type SegmentKind int

const (
	// A line segment.
	LinearKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// A uniform Catmull-Rom segment.
	CatmullRomKind
	// A uniform cubic B-spline segment.
	BSplineKind
)

func (k SegmentKind) String() string {
	switch k {
	case LinearKind:
		return "Linear"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	case CatmullRomKind:
		return "CatmullRom"
	case BSplineKind:
		return "BSpline"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// ControlPoints returns the number of control points the kind blends: 2 for
// lines, 3 for quadratic Béziers, 4 for the cubic families. Editors use this
// to size their control point arrays.
func (k SegmentKind) ControlPoints() int {
	switch k {
	case LinearKind:
		return 2
	case QuadKind:
		return 3
	case CubicKind, CatmullRomKind, BSplineKind:
		return 4
	default:
		panic(fmt.Sprintf("unhandled kind %v", k))
	}
}

// Segment represents a curve of any of the five families. This type acts as a
// sort of tagged union over [Line], [QuadBez], [CubicBez], [CatmullRom], and
// [CubicBSpline]; unused trailing control points are ignored.
type Segment struct {
	// We don't use an interface for Segment because we want {Line, QuadBez,
	// ...}.Transform to return their respective types, not Segment. But we
	// cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for segments.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = Segment{}

// Line returns the line represented by this segment. This is only valid when
// Kind == LinearKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// CatmullRom returns the Catmull-Rom segment represented by this segment.
// This is only valid when Kind == CatmullRomKind.
func (seg Segment) CatmullRom() CatmullRom {
	return CatmullRom{seg.P0, seg.P1, seg.P2, seg.P3}
}

// BSpline returns the B-spline segment represented by this segment. This is
// only valid when Kind == BSplineKind.
func (seg Segment) BSpline() CubicBSpline {
	return CubicBSpline{seg.P0, seg.P1, seg.P2, seg.P3}
}

// Cubic converts seg to a cubic Bézier tracing the same curve. This is valid
// for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LinearKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	case CatmullRomKind:
		return seg.CatmullRom().Cubic()
	case BSplineKind:
		return seg.BSpline().Cubic()
	default:
		panic(fmt.Sprintf("unhandled kind %v", seg.Kind))
	}
}

// Curve returns the concrete curve represented by this segment.
func (seg Segment) Curve() ParametricCurve {
	switch seg.Kind {
	case LinearKind:
		return seg.Line()
	case QuadKind:
		return seg.Quad()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	case CatmullRomKind:
		return seg.CatmullRom()
	case BSplineKind:
		return seg.BSpline()
	default:
		panic(fmt.Sprintf("unhandled kind %v", seg.Kind))
	}
}

// Eval evaluates the segment's family at parameter t. This is the single
// dispatch point over the closed family set.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LinearKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}.Eval(t)
	case CatmullRomKind:
		return seg.CatmullRom().Eval(t)
	case BSplineKind:
		return seg.BSpline().Eval(t)
	default:
		panic(fmt.Sprintf("unhandled kind %v", seg.Kind))
	}
}

func (seg Segment) Start() Point {
	return seg.Eval(0)
}

func (seg Segment) End() Point {
	return seg.Eval(1)
}

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LinearKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	default:
		return seg.Cubic().BoundingBox()
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	return Segment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

func (seg Segment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}
