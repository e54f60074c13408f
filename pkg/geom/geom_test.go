package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestApplyTranslateScale(t *testing.T) {
	m := Translate(10, 20).Mul(Scale(2))

	got := m.Apply(Pt(1, 2))

	// Right operand first: scale, then translate.
	want := Pt(12, 24)
	if !pointsClose(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestMulOrderMatters(t *testing.T) {
	scaleFirst := Translate(10, 0).Mul(Scale(2))
	translateFirst := Scale(2).Mul(Translate(10, 0))

	p := Pt(1, 0)
	if got := scaleFirst.Apply(p); !pointsClose(got, Pt(12, 0)) {
		t.Errorf("scale-then-translate = %v, want (12,0)", got)
	}
	if got := translateFirst.Apply(p); !pointsClose(got, Pt(22, 0)) {
		t.Errorf("translate-then-scale = %v, want (22,0)", got)
	}
}

func TestMulMatchesSequentialApply(t *testing.T) {
	m := Rotate(0.3)
	n := Translate(5, -2).Mul(ScaleXY(2, 3))
	p := Pt(1.5, -0.5)

	composed := m.Mul(n).Apply(p)
	sequential := m.Apply(n.Apply(p))

	if !pointsClose(composed, sequential) {
		t.Errorf("Mul(m, n).Apply(p) = %v, want %v", composed, sequential)
	}
}

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Mul(Scale(3))

	got := m.ApplyVector(Pt(1, 2))

	want := Pt(3, 6)
	if !pointsClose(got, want) {
		t.Errorf("ApplyVector() = %v, want %v", got, want)
	}
}

func TestFlipY(t *testing.T) {
	got := FlipY().Apply(Pt(3, 4))

	want := Pt(3, -4)
	if !pointsClose(got, want) {
		t.Errorf("FlipY().Apply() = %v, want %v", got, want)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := Rotate(math.Pi / 2).Apply(Pt(1, 0))

	want := Pt(0, 1)
	if !pointsClose(got, want) {
		t.Errorf("Rotate(pi/2).Apply() = %v, want %v", got, want)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0) should not report IsIdentity")
	}
	if !Rotate(0).IsIdentity() {
		t.Error("Rotate(0) should report IsIdentity")
	}
}

func TestPointAddSub(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -1)

	if got := p.Add(q); got != Pt(4, 1) {
		t.Errorf("Add() = %v, want (4,1)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 3) {
		t.Errorf("Sub() = %v, want (-2,3)", got)
	}
}
