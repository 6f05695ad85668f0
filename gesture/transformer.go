// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture turns classified touch gestures into the pan and zoom
transform of a content area inside a viewport.

A Transformer receives drag samples between Grant and Release, and
decides after a release whether to fling, bounce back into the viewport
or zoom in response to a double tap. Flings and animations advance when
the host calls Tick once per frame.

All methods must be called from the goroutine that delivers gestures
and frames.
*/
package gesture

import (
	"log"
	"math"
	"time"

	"gioui.org/x/zoom/f32"
	"gioui.org/x/zoom/internal/anim"
	"gioui.org/x/zoom/internal/fling"
	"gioui.org/x/zoom/transform"
)

// Transformer holds the transform of a content area and updates it
// from gestures, flings and animations.
type Transformer struct {
	cfg      Config
	listener Listener

	// state is StateIdle or StateDragging.
	state State
	t     transform.Transform
	// Viewport size and its screen position.
	size   f32.Point
	origin f32.Point

	flinger fling.Animation
	anim    anim.Animation
	// Content rectangles animated between.
	from, to f32.Rectangle
}

// State of a Transformer.
type State uint8

// Sample is a drag sample.
type Sample struct {
	// Delta is the movement since the previous sample, in pixels.
	Delta f32.Point
	// Pinch and PrevPinch are the current and previous spans between
	// the touch points. The sample is a pinch if both are non-zero.
	Pinch, PrevPinch float32
	// Position is the screen position of the gesture. For pinches
	// it is the point between the touch points.
	Position f32.Point
}

// Release describes the end of a drag.
type Release struct {
	// Velocity in pixels per millisecond.
	Velocity f32.Point
	// DoubleTap reports whether the drag completed a double tap.
	DoubleTap bool
	// Position is the screen position of the tap.
	Position f32.Point
}

// Listener is notified synchronously after every change to the
// transform.
type Listener interface {
	Transformed(t transform.Transform)
}

// ReleaseListener is implemented by Listeners that want to handle
// released gestures. If Released returns true, the Transformer does
// not fling, bounce or zoom.
type ReleaseListener interface {
	Released(t transform.Transform) bool
}

// StartListener is implemented by Listeners that want to know when a
// drag is granted.
type StartListener interface {
	Started()
}

// TapListener is implemented by Listeners that want confirmed single
// taps, in viewport coordinates.
type TapListener interface {
	Tapped(p f32.Point)
}

const (
	// StateIdle is the default state.
	StateIdle State = iota
	// StateDragging is reported between Grant and Release.
	StateDragging
	// StateFlinging is reported when a fling is in progress.
	StateFlinging
	// StateAnimating is reported during bounce and zoom
	// animations.
	StateAnimating
)

// approxEqual is the tolerance for skipping an animation to the
// current content rectangle.
const approxEqual = 0.01

type nopListener struct{}

func (nopListener) Transformed(transform.Transform) {}

// NewTransformer returns a Transformer with the identity transform. A
// nil listener is valid.
func NewTransformer(cfg Config, l Listener) *Transformer {
	if l == nil {
		l = nopListener{}
	}
	c := &Transformer{
		cfg:      cfg.withDefaults(),
		listener: l,
		t:        transform.Identity,
	}
	c.flinger.Friction = c.cfg.Friction
	return c
}

// Config returns the configuration of c with defaults applied.
func (c *Transformer) Config() Config {
	return c.cfg
}

// SetSize sets the size of the viewport.
func (c *Transformer) SetSize(width, height float32) {
	c.size = f32.Point{X: width, Y: height}
}

// SetOrigin sets the screen position of the viewport. It is used to
// convert gesture positions to viewport coordinates.
func (c *Transformer) SetOrigin(x, y float32) {
	c.origin = f32.Point{X: x, Y: y}
}

// Transform returns the current transform.
func (c *Transformer) Transform() transform.Transform {
	return c.t
}

// SetTransform replaces the current transform. Transforms with a
// non-positive scale are ignored. Running flings and animations are
// stopped.
func (c *Transformer) SetTransform(t transform.Transform) {
	if !validScale(t.Scale) {
		log.Printf("gesture: ignoring transform %v", t)
		return
	}
	c.Stop()
	if _, ok := t.Pivot(); ok {
		r := c.ContentRect()
		t = c.solve(r, transform.Apply(r, t))
	}
	c.commit(t)
}

// SetScale replaces the scale of the current transform. Running flings
// and animations are stopped. Non-positive scales are ignored.
func (c *Transformer) SetScale(s float32) {
	if !validScale(s) {
		log.Printf("gesture: ignoring scale %g", s)
		return
	}
	c.Stop()
	c.commit(transform.Transform{Scale: s, Offset: c.t.Offset})
}

// SetOffset replaces the offset of the current transform. Running
// flings and animations are stopped.
func (c *Transformer) SetOffset(o f32.Point) {
	c.Stop()
	c.commit(transform.Transform{Scale: c.t.Scale, Offset: o})
}

// State reports the gesture state.
func (c *Transformer) State() State {
	switch {
	case c.state == StateDragging:
		return StateDragging
	case c.flinger.Active():
		return StateFlinging
	case c.anim.Active():
		return StateAnimating
	default:
		return StateIdle
	}
}

// Viewport returns the viewport rectangle in viewport coordinates.
func (c *Transformer) Viewport() f32.Rectangle {
	return f32.Rectangle{Max: c.size}
}

// ContentRect returns the untransformed content rectangle.
func (c *Transformer) ContentRect() f32.Rectangle {
	return c.fit(c.Viewport())
}

// TransformedContentRect returns the content rectangle under the
// current transform.
func (c *Transformer) TransformedContentRect() f32.Rectangle {
	return c.fit(transform.Apply(c.Viewport(), c.t))
}

// Space returns the insets of the transformed content relative to
// the viewport.
func (c *Transformer) Space() transform.Insets {
	return transform.Space(c.TransformedContentRect(), c.Viewport())
}

// Stop any fling or animation. The transform keeps its last value.
func (c *Transformer) Stop() {
	c.flinger.Stop()
	c.anim.Stop()
}

// Grant starts a drag and reports whether gestures are enabled. Any
// running fling or animation is stopped.
func (c *Transformer) Grant(now time.Time) bool {
	if c.cfg.DisableTransform {
		return false
	}
	c.Stop()
	c.state = StateDragging
	if l, ok := c.listener.(StartListener); ok {
		l.Started()
	}
	return true
}

// Move applies a drag sample. Pans are locked to the dominant axis of
// the sample. Any running fling or animation is stopped.
func (c *Transformer) Move(now time.Time, s Sample) {
	if c.state != StateDragging || c.cfg.DisableTransform {
		return
	}
	c.Stop()
	d := s.Delta
	if c.cfg.Resistance {
		d = resist(d, c.Space(), c.cfg.ResistanceFactor)
	}
	switch {
	case !c.cfg.DisableScale && s.Pinch != 0 && s.PrevPinch != 0:
		if c.cfg.DisableTranslate {
			d = f32.Point{}
		}
		pivot := s.Position.Sub(c.origin)
		content := c.ContentRect()
		r := transform.Apply(transform.Apply(content, c.t), transform.At(pivot, s.Pinch/s.PrevPinch, d))
		c.commit(c.solve(content, r))
	case !c.cfg.DisableTranslate:
		d = lockAxis(d)
		c.commit(transform.Transform{
			Scale:  c.t.Scale,
			Offset: c.t.Offset.Add(d.Div(c.t.Scale)),
		})
	}
}

// Release ends a drag. Unless a ReleaseListener handles the release, a
// double tap zooms, and other releases fling or bounce the content
// back into the viewport.
func (c *Transformer) Release(now time.Time, r Release) {
	if c.state != StateDragging {
		return
	}
	c.state = StateIdle
	if l, ok := c.listener.(ReleaseListener); ok && l.Released(c.t) {
		return
	}
	switch {
	case r.DoubleTap && c.cfg.DisableScale:
		c.bounce(now)
	case r.DoubleTap:
		c.zoom(now, r.Position.Sub(c.origin))
	case !c.cfg.DisableTranslate:
		c.fling(now, r.Velocity)
	default:
		c.bounce(now)
	}
}

// Cancel ends a drag terminated by the host. It is a Release without
// velocity: a ReleaseListener may handle it, otherwise the content
// bounces back into the viewport.
func (c *Transformer) Cancel(now time.Time) {
	c.Release(now, Release{})
}

// Tap reports a confirmed single tap at the screen position p.
func (c *Transformer) Tap(p f32.Point) {
	if l, ok := c.listener.(TapListener); ok {
		l.Tapped(p.Sub(c.origin))
	}
}

// Animate the transformed content rectangle to target. A running
// fling or animation is replaced.
func (c *Transformer) Animate(now time.Time, target f32.Rectangle) {
	from := c.TransformedContentRect()
	if from.ApproxEq(target, approxEqual) {
		return
	}
	c.Stop()
	c.from, c.to = from, target
	c.anim.Start(now, c.cfg.AnimationDuration, anim.EaseInOut)
}

// Tick advances flings and animations to now and reports whether
// further frames are needed.
func (c *Transformer) Tick(now time.Time) bool {
	if c.flinger.Active() {
		if d := c.flinger.Tick(now); d != (f32.Point{}) {
			c.commit(transform.Transform{
				Scale:  c.t.Scale,
				Offset: c.t.Offset.Add(d.Div(c.t.Scale)),
			})
		}
		if c.flinger.Active() {
			return true
		}
		c.bounce(now)
		return c.anim.Active()
	}
	if c.anim.Active() {
		p, active := c.anim.Progress(now)
		c.commit(c.solve(c.ContentRect(), c.from.Lerp(c.to, p)))
		return active
	}
	return false
}

func (c *Transformer) fling(now time.Time, v f32.Point) {
	v = lockAxis(v.Mul(1000))
	speed := float32(math.Hypot(float64(v.X), float64(v.Y)))
	if min := c.cfg.Metric.PxF(minFlingVelocity); speed < min {
		c.bounce(now)
		return
	}
	if max := c.cfg.Metric.PxF(maxFlingVelocity); speed > max {
		v = v.Mul(max / speed)
	}
	c.Stop()
	c.flinger.Start(now, v, flingBounds(v, c.Space(), c.cfg.Metric.PxF(c.cfg.MaxOverScroll)))
	if !c.flinger.Active() {
		c.bounce(now)
	}
}

// bounce animates the content back into the viewport with its scale
// clamped to [1, MaxScale].
func (c *Transformer) bounce(now time.Time) {
	by := float32(1)
	if s := c.t.Scale; s > c.cfg.MaxScale {
		by = c.cfg.MaxScale / s
	} else if s < 1 {
		by = 1 / s
	}
	vp := c.Viewport()
	r := transform.Apply(c.TransformedContentRect(), transform.At(vp.Center(), by, f32.Point{}))
	c.Animate(now, transform.Align(r, vp))
}

// zoom animates a double tap zoom around pivot, given in viewport
// coordinates. Above the midpoint between 1 and MaxScale the content
// is zoomed out to scale 1, otherwise in to MaxScale.
func (c *Transformer) zoom(now time.Time, pivot f32.Point) {
	s, max := c.t.Scale, c.cfg.MaxScale
	by := max / s
	if s > (1+max)/2 {
		by = 1 / s
	}
	vp := c.Viewport()
	r := transform.Apply(c.TransformedContentRect(), transform.At(pivot, by, f32.Point{}))
	r = r.Add(vp.Center().Sub(pivot))
	c.Animate(now, transform.Align(r, vp))
}

func (c *Transformer) commit(t transform.Transform) {
	c.t = t
	c.listener.Transformed(t)
}

// solve is transform.Solve that logs degenerate geometry.
func (c *Transformer) solve(from, to f32.Rectangle) transform.Transform {
	t, err := transform.Solve(from, to)
	if err != nil {
		log.Printf("gesture: %v", err)
	}
	return t
}

func (c *Transformer) fit(r f32.Rectangle) f32.Rectangle {
	if c.cfg.AspectRatio > 0 && c.size.X > 0 && c.size.Y > 0 {
		return transform.FitCenter(c.cfg.AspectRatio, r)
	}
	return r
}

// resist divides the components of the drag delta d that pull the
// content further past an overscrolled edge by factor.
func resist(d f32.Point, in transform.Insets, factor float32) f32.Point {
	if (d.X > 0 && in.Left < 0) || (d.X < 0 && in.Right < 0) {
		d.X /= factor
	}
	if (d.Y > 0 && in.Top < 0) || (d.Y < 0 && in.Bottom < 0) {
		d.Y /= factor
	}
	return d
}

// lockAxis zeroes the minor component of a vector dominated by the
// other.
func lockAxis(v f32.Point) f32.Point {
	ax, ay := abs(v.X), abs(v.Y)
	switch {
	case ax > 2*ay:
		v.Y = 0
	case ay > 2*ax:
		v.X = 0
	}
	return v
}

// flingBounds returns the range of a fling with velocity v. A fling
// may use the slack in its direction plus overscroll; without slack
// it cannot move along that axis.
func flingBounds(v f32.Point, in transform.Insets, overscroll float32) f32.Rectangle {
	var b f32.Rectangle
	if v.X > 0 {
		if in.Left > 0 {
			b.Max.X = in.Left + overscroll
		}
	} else if in.Right > 0 {
		b.Min.X = -in.Right - overscroll
	}
	if v.Y > 0 {
		if in.Top > 0 {
			b.Max.Y = in.Top + overscroll
		}
	} else if in.Bottom > 0 {
		b.Min.Y = -in.Bottom - overscroll
	}
	return b
}

func validScale(s float32) bool {
	return s > 0 && !math.IsInf(float64(s), 0)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateFlinging:
		return "StateFlinging"
	case StateAnimating:
		return "StateAnimating"
	default:
		panic("unreachable")
	}
}
