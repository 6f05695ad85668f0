// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

Gesture thresholds such as overscroll distances and fling velocities
are specified in dps and converted to pixels with a Metric.

*/
package unit

import (
	"fmt"
	"math"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
	// UnitSp is like UnitDp but for font sizes.
	UnitSp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Sp returns the Value for v scaled dps.
func Sp(v float32) Value {
	return Value{V: v, U: UnitSp}
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

// Px converts v to pixels, rounded to the nearest integer value.
func (c Metric) Px(v Value) int {
	return int(math.Round(float64(c.PxF(v))))
}

// PxF converts v to fractional pixels.
func (c Metric) PxF(v Value) float32 {
	switch v.U {
	case UnitPx:
		return v.V
	case UnitDp:
		return v.V * nonZero(c.PxPerDp)
	case UnitSp:
		return v.V * nonZero(c.PxPerSp)
	default:
		panic("unknown unit")
	}
}

// Dp converts v dps to pixels.
func (c Metric) Dp(v float32) int {
	return c.Px(Dp(v))
}

// Sp converts v sps to pixels.
func (c Metric) Sp(v float32) int {
	return c.Px(Sp(v))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v int) Value {
	return Dp(float32(v) / nonZero(c.PxPerDp))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
