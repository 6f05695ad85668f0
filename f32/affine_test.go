// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := 1e-5
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestTransformOffset(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}

	r := Affine2D{}.Offset(o).Transform(p)
	if !eq(r, Pt(3, -1)) {
		t.Errorf("offset transformation mismatch: have %v, want {3 -1}", r)
	}
	i := Affine2D{}.Offset(o).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("offset transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformScale(t *testing.T) {
	p := Point{X: 1, Y: 2}
	s := Point{X: -1, Y: 2}

	r := Affine2D{}.Scale(Point{}, s).Transform(p)
	if !eq(r, Pt(-1, 4)) {
		t.Errorf("scale transformation mismatch: have %v, want {-1 4}", r)
	}
	i := Affine2D{}.Scale(Point{}, s).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("scale transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformMultiply(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}
	s := Point{X: -1, Y: 2}

	r := Affine2D{}.Offset(o).Scale(Point{}, s).Transform(p)
	if !eq(r, Pt(-3, -2)) {
		t.Errorf("complex transformation mismatch: have %v, want {-3 -2}", r)
	}
	i := Affine2D{}.Offset(o).Scale(Point{}, s).Invert().Transform(r)
	if !eq(i, p) {
		t.Errorf("complex transformation inverse mismatch: have %v, want %v", i, p)
	}
}

func TestTransformScaleAround(t *testing.T) {
	p := Pt(-1, -1)
	target := Pt(-6, -13)
	pt := Affine2D{}.Scale(Pt(4, 5), Pt(2, 3)).Transform(p)
	if !eq(pt, target) {
		t.Log(pt, "!=", target)
		t.Error("Scale not as expected")
	}
}

func TestMulOrder(t *testing.T) {
	A := Affine2D{}.Offset(Pt(100, 100))
	B := Affine2D{}.Scale(Point{}, Pt(2, 2))

	T1 := Affine2D{}.Offset(Pt(100, 100)).Scale(Point{}, Pt(2, 2))
	T2 := B.Mul(A)

	if T1 != T2 {
		t.Log(T1)
		t.Log(T2)
		t.Error("multiplication / transform order not as expected")
	}
}

func TestTransformRect(t *testing.T) {
	a := Affine2D{}.Scale(Pt(150, 150), Pt(2, 2))
	got := a.TransformRect(Rect(0, 0, 300, 300))
	if want := Rect(-150, -150, 450, 450); !got.ApproxEq(want, 1e-4) {
		t.Errorf("TransformRect: got %v, want %v", got, want)
	}
}

func TestAff3(t *testing.T) {
	a := Affine2D{}.Scale(Point{}, Pt(2, 2)).Offset(Pt(10, -5))
	m := a.Aff3()
	x, y := 3.0, 4.0
	gx := m[0]*x + m[1]*y + m[2]
	gy := m[3]*x + m[4]*y + m[5]
	want := a.Transform(Pt(3, 4))
	if float32(gx) != want.X || float32(gy) != want.Y {
		t.Errorf("Aff3 mismatch: got (%v, %v), want %v", gx, gy, want)
	}
}
