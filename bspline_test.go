package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBSplineEvalConstant(t *testing.T) {
	// Four coincident control points reduce the blend to that point.
	bs := CubicBSpline{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)}
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, Pt(0, 0), bs.Eval(ts))
	}

	bs = CubicBSpline{Pt(1.5, -2), Pt(1.5, -2), Pt(1.5, -2), Pt(1.5, -2)}
	diff(t, Pt(1.5, -2), bs.Eval(0.3), cmpopts.EquateApprox(0, 1e-15))
}

func TestCubicBSplineApproximates(t *testing.T) {
	// The family is approximating: with a bent control polygon, the curve
	// touches no control point at either endpoint.
	bs := CubicBSpline{Pt(0, 0), Pt(6, 0), Pt(6, 6), Pt(0, 6)}
	start := bs.Eval(0)
	end := bs.Eval(1)
	diff(t, Pt(5, 1), start) // (p0 + 4p1 + p2)/6
	diff(t, Pt(5, 5), end)   // (p1 + 4p2 + p3)/6
	for _, p := range []Point{bs.P0, bs.P1, bs.P2, bs.P3} {
		if start == p || end == p {
			t.Errorf("curve endpoint coincides with control point %v", p)
		}
	}
}

func TestCubicBSplineCubic(t *testing.T) {
	bs := CubicBSpline{Pt(0, 0), Pt(6, 0), Pt(6, 6), Pt(0, 6)}
	c := bs.Cubic()
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, bs.Start(), c.P0, approx)
	diff(t, bs.End(), c.P3, approx)
	for i := range 21 {
		ts := float64(i) / 20
		diff(t, bs.Eval(ts), c.Eval(ts), approx)
	}
}

func TestCubicBSplineContinuity(t *testing.T) {
	// Sliding the control window by one point continues the curve: the value
	// at t=1 of one segment is the value at t=0 of the next.
	pts := []Point{Pt(0, 0), Pt(2, 3), Pt(5, 1), Pt(7, 4), Pt(9, 0)}
	s0 := CubicBSpline{pts[0], pts[1], pts[2], pts[3]}
	s1 := CubicBSpline{pts[1], pts[2], pts[3], pts[4]}
	diff(t, s0.Eval(1), s1.Eval(0), cmpopts.EquateApprox(0, 1e-12))
}
