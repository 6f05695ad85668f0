// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Affine2D represents an affine 2D transformation. The zero value of
// Affine2D represents the identity transform.
type Affine2D struct {
	// To make the zero value the identity transform, the diagonal
	// of the matrix
	//
	// [sx, hx, ox]
	// [hy, sy, oy]
	// [ 0,  0,  1]
	//
	// is stored with 1 subtracted: a = sx-1 and e = sy-1.
	a, b, c float32
	d, e, f float32
}

// NewAffine2D creates a new Affine2D transform from the matrix elements
// in row major order. The rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func NewAffine2D(sx, hx, ox, hy, sy, oy float32) Affine2D {
	return Affine2D{
		a: sx - 1, b: hx, c: ox,
		d: hy, e: sy - 1, f: oy,
	}
}

// Offset the transformation.
func (a Affine2D) Offset(offset Point) Affine2D {
	return Affine2D{
		a.a, a.b, a.c + offset.X,
		a.d, a.e, a.f + offset.Y,
	}
}

// Scale the transformation around the given origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	if origin == (Point{}) {
		return a.scale(factor)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.scale(factor)
	return a.Offset(origin)
}

// Mul returns A*B.
func (A Affine2D) Mul(B Affine2D) (r Affine2D) {
	A.a, A.e = A.a+1, A.e+1
	B.a, B.e = B.a+1, B.e+1
	r.a = A.a*B.a + A.b*B.d - 1
	r.b = A.a*B.b + A.b*B.e
	r.c = A.a*B.c + A.b*B.f + A.c
	r.d = A.d*B.a + A.e*B.d
	r.e = A.d*B.b + A.e*B.e - 1
	r.f = A.d*B.c + A.e*B.f + A.f
	return r
}

// Invert the transformation. Note that if the matrix is close to
// singular numerical errors may become large or infinity.
func (a Affine2D) Invert() Affine2D {
	if a.a == 0 && a.b == 0 && a.d == 0 && a.e == 0 {
		return Affine2D{a: 0, b: 0, c: -a.c, d: 0, e: 0, f: -a.f}
	}
	a.a += 1
	a.e += 1
	det := a.a*a.e - a.b*a.d
	a.a, a.e = a.e/det, a.a/det
	a.b, a.d = -a.b/det, -a.d/det
	temp := a.c
	a.c = -a.a*a.c - a.b*a.f
	a.f = -a.d*temp - a.e*a.f
	a.a -= 1
	a.e -= 1
	return a
}

// Transform p by returning a*p.
func (a Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(a.a+1) + p.Y*a.b + a.c,
		Y: p.X*a.d + p.Y*(a.e+1) + a.f,
	}
}

// TransformRect returns the bounding box of r transformed by a.
func (a Affine2D) TransformRect(r Rectangle) Rectangle {
	return Rectangle{Min: a.Transform(r.Min), Max: a.Transform(r.Max)}.Canon()
}

// Elems returns the matrix elements of the transform in row-major order. The
// rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	return a.a + 1, a.b, a.c, a.d, a.e + 1, a.f
}

// Aff3 returns the transform as a float64 matrix usable with
// golang.org/x/image/draw.
func (a Affine2D) Aff3() f64.Aff3 {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return f64.Aff3{
		float64(sx), float64(hx), float64(ox),
		float64(hy), float64(sy), float64(oy),
	}
}

func (a Affine2D) scale(factor Point) Affine2D {
	return Affine2D{
		(a.a+1)*factor.X - 1, a.b * factor.X, a.c * factor.X,
		a.d * factor.Y, (a.e+1)*factor.Y - 1, a.f * factor.Y,
	}
}

func (a Affine2D) String() string {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return fmt.Sprintf("[[%f %f %f] [%f %f %f]]", sx, hx, ox, hy, sy, oy)
}
