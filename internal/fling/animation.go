// SPDX-License-Identifier: Unlicense OR MIT

// Package fling implements the decelerating motion that follows a
// released drag.
package fling

import (
	"math"
	"runtime"
	"time"

	"gioui.org/x/zoom/f32"
)

// Animation is a two dimensional fling. Its position starts at the
// origin and is confined to the bounds given to Start.
type Animation struct {
	// Friction is the drag coefficient k in the equation of motion
	// below. It must be negative; zero selects the platform default.
	Friction float32

	// Current offset in pixels.
	x f32.Point
	// Initial time.
	t0 time.Time
	// Initial velocity in pixels pr second.
	v0     f32.Point
	k      float32
	bounds f32.Rectangle
}

const (
	// Pixels/second.
	thresholdVelocity = 1
)

// Start a fling with initial velocity v in pixels per second. The
// position of the fling is clamped to bounds, which should contain
// the origin.
func (f *Animation) Start(now time.Time, v f32.Point, bounds f32.Rectangle) {
	f.t0 = now
	f.v0 = v
	f.x = f32.Point{}
	f.bounds = bounds.Canon()
	f.k = f.Friction
	if f.k >= 0 {
		f.k = defaultFriction()
	}
	if v.X == 0 && v.Y == 0 {
		f.Stop()
	}
}

// Active reports whether the fling is still moving.
func (f *Animation) Active() bool {
	return f.v0 != (f32.Point{})
}

// Stop the fling, leaving its position where it is.
func (f *Animation) Stop() {
	f.v0 = f32.Point{}
}

// Position returns the offset covered since Start.
func (f *Animation) Position() f32.Point {
	return f.x
}

// Tick computes and returns the fling distance since
// the last time Tick was called.
func (f *Animation) Tick(now time.Time) f32.Point {
	if !f.Active() {
		return f32.Point{}
	}
	t := now.Sub(f.t0).Seconds()
	if t < 0 {
		t = 0
	}
	k := float64(f.k)
	// The acceleration x''(t) of a point mass with a drag
	// force, f, proportional with velocity, x'(t), is
	// governed by the equation
	//
	// x''(t) = kx'(t)
	//
	// Given the starting position x(0) = 0, the starting
	// velocity x'(0) = v0, the position is then
	// given by
	//
	// x(t) = v0*e^(k*t)/k - v0/k
	//
	ekt := math.Exp(k * t)
	pos := f32.Point{
		X: clamp(float32(float64(f.v0.X)*(ekt-1)/k), f.bounds.Min.X, f.bounds.Max.X),
		Y: clamp(float32(float64(f.v0.Y)*(ekt-1)/k), f.bounds.Min.Y, f.bounds.Max.Y),
	}
	dist := pos.Sub(f.x)
	f.x = pos
	// Solving for the velocity x'(t) gives us
	//
	// x'(t) = v0*e^(k*t)
	v := f.v0.Mul(float32(ekt))
	doneX := f.v0.X == 0 || (v.X < thresholdVelocity && v.X > -thresholdVelocity) || saturated(pos.X, f.v0.X, f.bounds.Min.X, f.bounds.Max.X)
	doneY := f.v0.Y == 0 || (v.Y < thresholdVelocity && v.Y > -thresholdVelocity) || saturated(pos.Y, f.v0.Y, f.bounds.Min.Y, f.bounds.Max.Y)
	if doneX && doneY {
		f.Stop()
	}
	return dist
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// saturated reports whether a position moving with velocity v has
// reached the bound in its direction of motion.
func saturated(x, v, min, max float32) bool {
	return (v > 0 && x >= max) || (v < 0 && x <= min)
}

func defaultFriction() float32 {
	switch runtime.GOOS {
	case "darwin", "ios":
		return -2 // iOS
	default:
		return -4.2 // Android and default
	}
}
