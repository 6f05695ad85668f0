// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"gioui.org/x/zoom/unit"
)

// Config controls a Transformer. The zero value enables panning and
// scaling with the defaults documented on each field.
type Config struct {
	// DisableTransform ignores all gestures.
	DisableTransform bool
	// DisableScale ignores pinches and double taps.
	DisableScale bool
	// DisableTranslate ignores pans and flings.
	DisableTranslate bool
	// MaxOverScroll is how far a fling may carry the content past the
	// viewport edge before bouncing back. Zero means
	// DefaultMaxOverScroll.
	MaxOverScroll unit.Value
	// MaxScale is the largest scale a bounce settles at, and the
	// scale a double tap zooms in to. Values below 1 are not
	// rejected but make zooming behave unintuitively. Zero means 1.
	MaxScale float32
	// AspectRatio is the width to height ratio of the content. If
	// positive, the content is fitted centered inside the viewport
	// before it is transformed.
	AspectRatio float32
	// Resistance damps drags that pull the content further past a
	// viewport edge.
	Resistance bool
	// ResistanceFactor divides damped drag deltas. Zero means
	// DefaultResistanceFactor.
	ResistanceFactor float32
	// AnimationDuration is the duration of bounce and zoom
	// animations. Zero means DefaultAnimationDuration.
	AnimationDuration time.Duration
	// Friction is the drag coefficient of flings. Zero selects the
	// platform default.
	Friction float32
	// Metric converts dp values to pixels.
	Metric unit.Metric
}

var (
	DefaultMaxOverScroll = unit.Dp(20)

	// Pixels/second.
	minFlingVelocity = unit.Dp(50)
	maxFlingVelocity = unit.Dp(8000)
)

const (
	DefaultResistanceFactor  = 3
	DefaultAnimationDuration = 200 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.MaxOverScroll.V == 0 {
		c.MaxOverScroll = DefaultMaxOverScroll
	}
	if c.MaxScale == 0 {
		c.MaxScale = 1
	}
	if c.ResistanceFactor == 0 {
		c.ResistanceFactor = DefaultResistanceFactor
	}
	if c.AnimationDuration == 0 {
		c.AnimationDuration = DefaultAnimationDuration
	}
	return c
}
