package spline

// Line is the linear curve family: the segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}
var _ Extremer = Line{}

// Eval evaluates the blend p0·(1−t) + p1·t.
//
// The blend form (rather than p0 + t·(p1−p0)) guarantees that t=0 yields P0
// exactly and t=1 yields P1 exactly.
func (l Line) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: l.P0.X*mt + l.P1.X*t,
		Y: l.P0.Y*mt + l.P1.Y*t,
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway between the endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Subsegment returns the line covering the parameter range [start, end].
func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Subdivide subdivides the line into halves.
func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Seg returns the tagged-union form of the line.
func (l Line) Seg() Segment {
	return Segment{Kind: LinearKind, P0: l.P0, P1: l.P1}
}
