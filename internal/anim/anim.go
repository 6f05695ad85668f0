// SPDX-License-Identifier: Unlicense OR MIT

// Package anim drives a progress value from 0 to 1 over a duration
// along an easing curve.
package anim

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves must
// map 0 to 0 and 1 to 1.
type Curve func(t float32) float32

// Animation is a running progress value. The zero value is an
// inactive animation.
type Animation struct {
	start  time.Time
	dur    time.Duration
	curve  Curve
	active bool
}

// Linear is the identity curve.
func Linear(t float32) float32 {
	return t
}

// Ease is the cubic bezier curve with control points (0.42, 0) and
// (1, 1).
var Ease = CubicBezier(0.42, 0, 1, 1)

// EaseInOut runs Ease forwards over the first half of the animation
// and backwards over the second half.
func EaseInOut(t float32) float32 {
	if t < 0.5 {
		return Ease(t*2) / 2
	}
	return 1 - Ease((1-t)*2)/2
}

// Start the animation at now. A running animation is replaced. A nil
// curve is Linear.
func (a *Animation) Start(now time.Time, dur time.Duration, c Curve) {
	if c == nil {
		c = Linear
	}
	a.start = now
	a.dur = dur
	a.curve = c
	a.active = true
}

// Active reports whether the animation has yet to reach progress 1.
func (a *Animation) Active() bool {
	return a.active
}

// Stop the animation.
func (a *Animation) Stop() {
	a.active = false
}

// Progress returns the eased progress at now and whether the animation
// is still running. The animation stops once it reports progress 1.
func (a *Animation) Progress(now time.Time) (float32, bool) {
	if !a.active {
		return 0, false
	}
	if a.dur <= 0 {
		a.active = false
		return 1, false
	}
	t := float32(now.Sub(a.start)) / float32(a.dur)
	if t >= 1 {
		a.active = false
		return 1, false
	} else if t <= 0 {
		return 0, true
	}
	return a.curve(t), true
}

// Lerp interpolates linearly between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// CubicBezier returns the timing curve of a cubic bezier from (0, 0)
// to (1, 1) with control points (x1, y1) and (x2, y2). The x
// coordinates must lie in [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := solveBezier(float64(t), x1, x2)
		return float32(bezier(u, y1, y2))
	}
}

// bezier evaluates one coordinate of the curve at parameter u by de
// Casteljau's algorithm.
func bezier(u, c1, c2 float64) float64 {
	a, b, c := Lerp(0, c1, u), Lerp(c1, c2, u), Lerp(c2, 1, u)
	d, e := Lerp(a, b, u), Lerp(b, c, u)
	return Lerp(d, e, u)
}

// solveBezier finds the parameter u where the x coordinate of the
// curve equals x.
func solveBezier(x, x1, x2 float64) float64 {
	const eps = 1e-7
	u := x
	// Newton's method converges quickly when the slope is not flat.
	for i := 0; i < 8; i++ {
		dx := bezier(u, x1, x2) - x
		if math.Abs(dx) < eps {
			return u
		}
		d := slope(u, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= dx / d
	}
	// Fall back to bisection.
	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 64 && hi-lo > eps; i++ {
		if bezier(u, x1, x2) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func slope(u, c1, c2 float64) float64 {
	v := 1 - u
	return 3*v*v*c1 + 6*v*u*(c2-c1) + 3*u*u*(1-c2)
}
