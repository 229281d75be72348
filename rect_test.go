package spline

import "testing"

func TestRectFromPoints(t *testing.T) {
	// Construction sorts the coordinates.
	diff(t, Rect{0, 0, 1, 1}, NewRectFromPoints(Pt(1, 1), Pt(0, 0)))
	diff(t, Rect{0, 0, 1, 1}, NewRectFromPoints(Pt(0, 1), Pt(1, 0)))
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{0, 0, 3, 4}, r.Union(Rect{2, 2, 3, 4}))
	diff(t, Rect{-1, 0, 1, 2}, r.UnionPoint(Pt(-1, 2)))
	diff(t, r, r.UnionPoint(Pt(0.5, 0.5)))
}

func TestRectDimensions(t *testing.T) {
	r := Rect{1, 2, 4, 8}
	if got := r.Width(); got != 3 {
		t.Errorf("got width %v, want 3", got)
	}
	if got := r.Height(); got != 6 {
		t.Errorf("got height %v, want 6", got)
	}
	diff(t, Pt(2.5, 5), r.Center())
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 2, 2}
	if !r.Contains(Pt(1, 1)) {
		t.Error("interior point should be contained")
	}
	if !r.Contains(Pt(0, 0)) {
		t.Error("min corner should be contained")
	}
	if r.Contains(Pt(2, 2)) {
		t.Error("max corner should not be contained")
	}
}
