// SPDX-License-Identifier: Unlicense OR MIT

/*
Package transform implements the geometry of panning and zooming a
content rectangle inside a viewport.

A Transform is a uniform scale followed by a translation. Without a
pivot, a rectangle is scaled about its own center and the offset is
expressed in unscaled content units, so the visual displacement is
Offset*Scale. Gesture deltas arrive in screen pixels and are divided by
the current scale before they are added to an offset.

With a pivot (see At), the rectangle is scaled about the pivot and the
offset is added in screen units afterwards. Pivoted transforms describe
incremental gestures such as a pinch around the fingers; the result is
converted back to the unpivoted form with Solve.
*/
package transform

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"gioui.org/x/zoom/f32"
)

// Transform is a uniform scale and a translation, optionally relative
// to a pivot point.
type Transform struct {
	Scale  float32
	Offset f32.Point

	pivot   f32.Point
	pivoted bool
}

// Insets describe the distance between the edges of a content rectangle
// and the edges of a viewport. A positive inset is slack: the content
// extends that far past the viewport edge and can be panned towards it.
// A negative inset means the content edge is inside the viewport, that
// is, the content is overscrolled.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// Identity is the transform that leaves rectangles unchanged.
var Identity = Transform{Scale: 1}

// ErrDegenerate is returned by Solve when the source rectangle has no
// width and no scale can be derived.
var ErrDegenerate = errors.New("transform: degenerate source rectangle")

// At returns the transform that scales by scale about pivot and then
// translates by offset.
func At(pivot f32.Point, scale float32, offset f32.Point) Transform {
	return Transform{Scale: scale, Offset: offset, pivot: pivot, pivoted: true}
}

// Pivot returns the pivot of t and whether it has one.
func (t Transform) Pivot() (f32.Point, bool) {
	return t.pivot, t.pivoted
}

// Apply returns r transformed by t. The identity transform returns r.
func Apply(r f32.Rectangle, t Transform) f32.Rectangle {
	if !t.pivoted {
		w, h := r.Dx()*t.Scale, r.Dy()*t.Scale
		c := r.Center().Add(t.Offset.Mul(t.Scale))
		return f32.Rectangle{
			Min: f32.Point{X: c.X - w/2, Y: c.Y - h/2},
			Max: f32.Point{X: c.X + w/2, Y: c.Y + h/2},
		}
	}
	p := t.pivot
	return f32.Rectangle{
		Min: f32.Point{
			X: p.X - (p.X-r.Min.X)*t.Scale + t.Offset.X,
			Y: p.Y - (p.Y-r.Min.Y)*t.Scale + t.Offset.Y,
		},
		Max: f32.Point{
			X: p.X + (r.Max.X-p.X)*t.Scale + t.Offset.X,
			Y: p.Y + (r.Max.Y-p.Y)*t.Scale + t.Offset.Y,
		},
	}
}

// Solve returns the unpivoted transform that maps from onto to. The
// scale is derived from the widths; from and to are expected to share
// their aspect ratio.
//
// If from has no width, Solve returns a transform with scale 1 that
// moves the center of from onto the center of to, together with an
// error wrapping ErrDegenerate.
func Solve(from, to f32.Rectangle) (Transform, error) {
	d := to.Center().Sub(from.Center())
	w := from.Dx()
	s := to.Dx() / w
	if w == 0 || s == 0 || !finite(s) {
		return Transform{Scale: 1, Offset: d}, fmt.Errorf("solve %v -> %v: %w", from, to, ErrDegenerate)
	}
	return Transform{Scale: s, Offset: d.Div(s)}, nil
}

// FitCenter returns the largest rectangle with the width to height
// ratio aspect that fits centered inside r. A non-positive aspect
// ratio or an empty r returns r.
func FitCenter(aspect float32, r f32.Rectangle) f32.Rectangle {
	if aspect <= 0 || r.Empty() {
		return r
	}
	w, h := r.Dx(), r.Dy()
	if aspect > w/h {
		h = w / aspect
	} else {
		w = h * aspect
	}
	c := r.Center()
	return f32.Rectangle{
		Min: f32.Point{X: c.X - w/2, Y: c.Y - h/2},
		Max: f32.Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Align moves r to the nearest position legal inside viewport. Along
// an axis where r is not larger than the viewport, r is centered.
// Otherwise r is moved so it covers the viewport without a gap.
func Align(r, viewport f32.Rectangle) f32.Rectangle {
	var d f32.Point
	switch {
	case r.Dx() <= viewport.Dx():
		d.X = viewport.Center().X - r.Center().X
	case r.Min.X > viewport.Min.X:
		d.X = viewport.Min.X - r.Min.X
	case r.Max.X < viewport.Max.X:
		d.X = viewport.Max.X - r.Max.X
	}
	switch {
	case r.Dy() <= viewport.Dy():
		d.Y = viewport.Center().Y - r.Center().Y
	case r.Min.Y > viewport.Min.Y:
		d.Y = viewport.Min.Y - r.Min.Y
	case r.Max.Y < viewport.Max.Y:
		d.Y = viewport.Max.Y - r.Max.Y
	}
	return r.Add(d)
}

// Space returns the insets of content relative to viewport.
func Space(content, viewport f32.Rectangle) Insets {
	return Insets{
		Left:   viewport.Min.X - content.Min.X,
		Top:    viewport.Min.Y - content.Min.Y,
		Right:  content.Max.X - viewport.Max.X,
		Bottom: content.Max.Y - viewport.Max.Y,
	}
}

// Affine returns the affine transformation that maps the points of r
// onto Apply(r, t).
func (t Transform) Affine(r f32.Rectangle) f32.Affine2D {
	s := f32.Point{X: t.Scale, Y: t.Scale}
	if t.pivoted {
		return f32.Affine2D{}.Scale(t.pivot, s).Offset(t.Offset)
	}
	return f32.Affine2D{}.Scale(r.Center(), s).Offset(t.Offset.Mul(t.Scale))
}

// Matrix is like Affine but returns a PDF style transformation matrix
// [a b c d e f] that maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
func (t Transform) Matrix(r f32.Rectangle) matrix.Matrix {
	sx, hx, ox, hy, sy, oy := t.Affine(r).Elems()
	return matrix.Matrix{
		float64(sx), float64(hy),
		float64(hx), float64(sy),
		float64(ox), float64(oy),
	}
}

func (t Transform) String() string {
	if t.pivoted {
		return fmt.Sprintf("scale %g at %v offset %v", t.Scale, t.pivot, t.Offset)
	}
	return fmt.Sprintf("scale %g offset %v", t.Scale, t.Offset)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
