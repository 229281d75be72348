package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentEvalDispatch(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)
	segs := []struct {
		seg   Segment
		curve ParametricCurve
	}{
		{Line{p0, p1}.Seg(), Line{p0, p1}},
		{QuadBez{p0, p1, p2}.Seg(), QuadBez{p0, p1, p2}},
		{CubicBez{p0, p1, p2, p3}.Seg(), CubicBez{p0, p1, p2, p3}},
		{CatmullRom{p0, p1, p2, p3}.Seg(), CatmullRom{p0, p1, p2, p3}},
		{CubicBSpline{p0, p1, p2, p3}.Seg(), CubicBSpline{p0, p1, p2, p3}},
	}
	for _, tt := range segs {
		for i := range 11 {
			ts := float64(i) / 10
			diff(t, tt.curve.Eval(ts), tt.seg.Eval(ts))
		}
		diff(t, tt.curve.Start(), tt.seg.Start())
		diff(t, tt.curve.End(), tt.seg.End())
		diff(t, tt.curve, tt.seg.Curve())
	}
}

func TestSegmentKindControlPoints(t *testing.T) {
	kinds := map[SegmentKind]int{
		LinearKind:     2,
		QuadKind:       3,
		CubicKind:      4,
		CatmullRomKind: 4,
		BSplineKind:    4,
	}
	for k, want := range kinds {
		if got := k.ControlPoints(); got != want {
			t.Errorf("%v: got %d control points, want %d", k, got, want)
		}
	}
}

func TestSegmentKindString(t *testing.T) {
	diff(t, "CatmullRom", CatmullRomKind.String())
	diff(t, "SegmentKind(99)", SegmentKind(99).String())
}

func TestSegmentCubic(t *testing.T) {
	// Cubic is valid for every kind and traces the same curve.
	p0, p1, p2, p3 := Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)
	segs := []Segment{
		Line{p0, p1}.Seg(),
		QuadBez{p0, p1, p2}.Seg(),
		CubicBez{p0, p1, p2, p3}.Seg(),
		CatmullRom{p0, p1, p2, p3}.Seg(),
		CubicBSpline{p0, p1, p2, p3}.Seg(),
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, seg := range segs {
		c := seg.Cubic()
		for i := range 11 {
			ts := float64(i) / 10
			diff(t, seg.Eval(ts), c.Eval(ts), approx)
		}
	}
}

func TestSegmentTransform(t *testing.T) {
	seg := CatmullRom{Pt(-2, 1), Pt(0, 0), Pt(2, 1), Pt(3, -2)}.Seg()
	aff := RotateAbout(0.3, Pt(1, 1))
	got := seg.Transform(aff)
	approx := cmpopts.EquateApprox(0, 1e-12)
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, seg.Eval(ts).Transform(aff), got.Eval(ts), approx)
	}
}
