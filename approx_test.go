package spline

import "testing"

func TestApproxEq(t *testing.T) {
	tests := []struct {
		a, b, epsilon float64
		want          bool
	}{
		{1.0, 1.0, 0, true},
		{1.0, 1.0 + 1e-9, 1e-6, true},
		{1.0, 1.0 + 1e-3, 1e-6, false},
		{-2.5, -2.5000001, 1e-6, true},
		{0, 1e-6, 1e-6, true}, // the tolerance is inclusive
		{0, 1.0000001e-6, 1e-6, false},
	}
	for _, tt := range tests {
		if got := ApproxEq(tt.a, tt.b, tt.epsilon); got != tt.want {
			t.Errorf("ApproxEq(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.epsilon, got, tt.want)
		}
	}
}

func TestPointApproxEq(t *testing.T) {
	if !Pt(1, 2).ApproxEq(Pt(1+1e-9, 2-1e-9), 1e-6) {
		t.Error("nearby points should compare equal")
	}
	// Component deltas within epsilon can still exceed it in distance.
	if Pt(0, 0).ApproxEq(Pt(1e-6, 1e-6), 1e-6) {
		t.Error("points farther apart than epsilon should not compare equal")
	}
}

func TestVec2ApproxEq(t *testing.T) {
	if !Vec(3, 4).ApproxEq(Vec(3, 4+1e-9), 1e-6) {
		t.Error("nearby vectors should compare equal")
	}
	if Vec(3, 4).ApproxEq(Vec(3, 4.001), 1e-6) {
		t.Error("distant vectors should not compare equal")
	}
}
