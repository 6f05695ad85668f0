// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import "math"

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
//
// In the terms of a view hierarchy, Min is the (left, top) corner and
// Max the (right, bottom) corner.
type Rectangle struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect is shorthand for Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// The returned rectangle has x0 and y0 swapped with x1 and y1 if
// necessary so that it is well-formed.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	return Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector p/s.
func (p Point) Div(s float32) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Size returns r's width and height.
func (r Rectangle) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of r.
func (r Rectangle) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// Eq reports whether r and s have identical edges.
func (r Rectangle) Eq(s Rectangle) bool {
	return r == s
}

// ApproxEq reports whether every edge of r is within eps of the
// corresponding edge of s.
func (r Rectangle) ApproxEq(s Rectangle, eps float32) bool {
	return near(r.Min.X, s.Min.X, eps) && near(r.Min.Y, s.Min.Y, eps) &&
		near(r.Max.X, s.Max.X, eps) && near(r.Max.Y, s.Max.Y, eps)
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// Lerp returns the rectangle whose edges are linearly interpolated
// between the edges of r (t = 0) and to (t = 1).
func (r Rectangle) Lerp(to Rectangle, t float32) Rectangle {
	return Rectangle{
		Min: Point{
			X: r.Min.X + (to.Min.X-r.Min.X)*t,
			Y: r.Min.Y + (to.Min.Y-r.Min.Y)*t,
		},
		Max: Point{
			X: r.Max.X + (to.Max.X-r.Max.X)*t,
			Y: r.Max.Y + (to.Max.Y-r.Max.Y)*t,
		},
	}
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}
