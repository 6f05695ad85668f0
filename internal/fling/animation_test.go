// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"testing"
	"time"

	"gioui.org/x/zoom/f32"
)

const frame = 16 * time.Millisecond

// run ticks f until it comes to rest and returns the summed deltas and
// the number of ticks.
func run(t *testing.T, f *Animation, start time.Time) (f32.Point, int) {
	t.Helper()
	var sum f32.Point
	now := start
	n := 0
	for f.Active() {
		now = now.Add(frame)
		sum = sum.Add(f.Tick(now))
		n++
		if n > 10000 {
			t.Fatal("fling never came to rest")
		}
	}
	return sum, n
}

func TestFlingUnbounded(t *testing.T) {
	f := Animation{Friction: -4}
	start := time.Unix(0, 0)
	inf := float32(math.Inf(1))
	f.Start(start, f32.Pt(800, -400), f32.Rectangle{Min: f32.Pt(-inf, -inf), Max: f32.Pt(inf, inf)})
	sum, _ := run(t, &f, start)
	// The total distance approaches -v0/k.
	if d := sum.X - 200; d > 1 || d < -1 {
		t.Errorf("horizontal distance %v, want about 200", sum.X)
	}
	if d := sum.Y + 100; d > 1 || d < -1 {
		t.Errorf("vertical distance %v, want about -100", sum.Y)
	}
	if d := sum.Sub(f.Position()); d.X*d.X+d.Y*d.Y > 1e-4 {
		t.Errorf("summed deltas %v differ from position %v", sum, f.Position())
	}
}

func TestFlingBounded(t *testing.T) {
	f := Animation{Friction: -4}
	start := time.Unix(0, 0)
	bounds := f32.Rect(-10, 0, 50, 0)
	f.Start(start, f32.Pt(800, 300), bounds)
	now := start
	for i := 0; f.Active(); i++ {
		now = now.Add(frame)
		f.Tick(now)
		p := f.Position()
		if p.X < bounds.Min.X || p.X > bounds.Max.X || p.Y < bounds.Min.Y || p.Y > bounds.Max.Y {
			t.Fatalf("tick %d: position %v outside %v", i, p, bounds)
		}
	}
	if got, want := f.Position(), f32.Pt(50, 0); got != want {
		t.Errorf("final position %v, want %v", got, want)
	}
}

func TestFlingSaturatesEarly(t *testing.T) {
	f := Animation{Friction: -4}
	start := time.Unix(0, 0)
	f.Start(start, f32.Pt(5000, 0), f32.Rect(0, 0, 20, 0))
	_, n := run(t, &f, start)
	// 5000px/s covers 20px in the first few frames.
	if n > 5 {
		t.Errorf("saturated fling took %d ticks to stop", n)
	}
}

func TestFlingStop(t *testing.T) {
	f := Animation{}
	start := time.Unix(0, 0)
	f.Start(start, f32.Pt(1000, 0), f32.Rect(-1000, -1000, 1000, 1000))
	f.Tick(start.Add(frame))
	p := f.Position()
	f.Stop()
	if f.Active() {
		t.Fatal("fling active after Stop")
	}
	if d := f.Tick(start.Add(2 * frame)); d != (f32.Point{}) {
		t.Errorf("stopped fling moved by %v", d)
	}
	if f.Position() != p {
		t.Errorf("Stop changed position from %v to %v", p, f.Position())
	}
}

func TestFlingZeroVelocity(t *testing.T) {
	var f Animation
	f.Start(time.Unix(0, 0), f32.Point{}, f32.Rect(-10, -10, 10, 10))
	if f.Active() {
		t.Error("fling with zero velocity is active")
	}
}

func TestDefaultFriction(t *testing.T) {
	var f Animation
	f.Start(time.Unix(0, 0), f32.Pt(1, 0), f32.Rect(0, 0, 1, 0))
	if f.k >= 0 {
		t.Errorf("default friction %v is not negative", f.k)
	}
}
