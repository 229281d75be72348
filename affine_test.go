package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineIdentity(t *testing.T) {
	diff(t, Pt(3, -4), Pt(3, -4).Transform(Identity))
}

func TestAffineRotate(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-15)
	diff(t, Pt(0, 1), Pt(1, 0).Transform(Rotate(math.Pi/2)), approx)
	diff(t, Pt(-1, 0), Pt(1, 0).Transform(Rotate(math.Pi)), approx)
}

func TestAffineRotateAbout(t *testing.T) {
	center := Pt(5, 5)
	aff := RotateAbout(math.Pi/2, center)
	diff(t, center, center.Transform(aff), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(5, 6), Pt(6, 5).Transform(aff), cmpopts.EquateApprox(0, 1e-12))
}

func TestAffineCompose(t *testing.T) {
	a := Translate(Vec(1, 2)).ThenScale(2, 2)
	diff(t, Pt(4, 6), Pt(1, 1).Transform(a))
}

func TestAffineInvert(t *testing.T) {
	aff := Rotate(0.3).ThenTranslate(Vec(7, -2)).ThenScale(1.5, 0.5)
	pt := Pt(1.25, -3.5)
	diff(t, pt, pt.Transform(aff).Transform(aff.Invert()), cmpopts.EquateApprox(0, 1e-12))
}

func TestAffineDeterminant(t *testing.T) {
	diff(t, 6.0, Scale(2, 3).Determinant())
	diff(t, 1.0, Rotate(0.7).Determinant(), cmpopts.EquateApprox(0, 1e-15))
}
