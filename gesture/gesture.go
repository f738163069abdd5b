// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture classifies multi-touch samples into scroll and pinch
gestures.

A Classifier consumes touch samples and decides, against distance
thresholds, whether the in-progress gesture scrolls horizontally,
scrolls vertically, or pinches. Classification is sticky: once an axis
qualifies it stays qualified for the rest of the gesture, even if a
later sample's delta drops below the threshold again.
*/
package gesture

import (
	"pankit.org/f32"
	"pankit.org/io/touch"
	"pankit.org/unit"
)

// Axis is a scroll direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// State of a Classifier.
type State uint8

const (
	// StateIdle is the default state; no touch is active.
	StateIdle State = iota
	// StateTracking is reported while a gesture is in progress.
	StateTracking
)

var (
	// scrollSlop is the centroid travel required before a drag
	// counts as a scroll on an axis.
	scrollSlop = unit.Dp(5)
	// scaleSlop is the spread change required before a
	// multi-touch gesture counts as a pinch.
	scaleSlop = unit.Dp(3)
)

// Delta is the classified movement of one sample.
type Delta struct {
	// X and Y are the centroid travel since the gesture anchor,
	// valid for axes reported as scrolling.
	X, Y float32
	// ScaleFactor multiplies the current scale. It is 1 unless the
	// sample was dispatched as a pinch.
	ScaleFactor float32
	// ScrollingH, ScrollingV and Scaling mirror the sticky
	// classification after this sample.
	ScrollingH, ScrollingV, Scaling bool
}

// Classifier is the per-gesture scroll and pinch recognizer.
// Its zero value is ready to use.
type Classifier struct {
	// ScrollSlop and ScaleSlop override the default
	// recognition thresholds when non-zero.
	ScrollSlop unit.Dp
	ScaleSlop  unit.Dp

	state        State
	anchor       f32.Point
	anchorSpread float32
	velocity     f32.Point

	scrollingH bool
	scrollingV bool
	scaling    bool
}

// Start begins tracking a gesture from the press sample. The spread
// anchor is seeded to 0 on a single-touch start so that a pinch
// cannot trigger until a second touch exists.
func (c *Classifier) Start(e touch.Event) {
	*c = Classifier{
		ScrollSlop: c.ScrollSlop,
		ScaleSlop:  c.ScaleSlop,
		state:      StateTracking,
		anchor:     e.Centroid,
		velocity:   e.Velocity,
	}
	if e.Touches > 1 {
		c.anchorSpread = e.Spread
	}
}

// Update classifies the sample against the gesture anchor and returns
// the movement to dispatch. canH and canV gate the axis thresholds;
// an axis that cannot scroll never qualifies.
//
// A pinch sample moves the anchor spread forward so that successive
// samples report incremental scale factors rather than compounding
// growth from the original anchor.
func (c *Classifier) Update(m unit.Metric, canH, canV bool, e touch.Event) Delta {
	d := Delta{ScaleFactor: 1}
	if c.state != StateTracking {
		return d
	}
	c.velocity = e.Velocity
	dx := c.anchor.X - e.Centroid.X
	dy := c.anchor.Y - e.Centroid.Y
	dd := c.anchorSpread - e.Spread
	if !c.scrollingH && canH && abs(dx) >= m.Dp(c.scrollSlop()) {
		c.scrollingH = true
	}
	if !c.scrollingV && canV && abs(dy) >= m.Dp(c.scrollSlop()) {
		c.scrollingV = true
	}
	if !c.scaling && e.Spread != 0 && abs(dd) > m.Dp(c.scaleSlop()) {
		c.scaling = true
	}
	d.ScrollingH, d.ScrollingV, d.Scaling = c.scrollingH, c.scrollingV, c.scaling
	if c.scaling && e.Spread != 0 {
		d.ScaleFactor = (e.Spread - 0.5*dd) / e.Spread
		c.anchorSpread = e.Spread
		return d
	}
	d.X, d.Y = dx, dy
	return d
}

// Drop re-anchors the gesture after a touch point lifts while others
// remain. When the remaining points no longer have a spread the axis
// flags are cleared; the surviving touch must cross the slop again
// before scrolling resumes from the new anchor.
func (c *Classifier) Drop(e touch.Event) {
	if c.state != StateTracking {
		return
	}
	c.anchor = e.Centroid
	c.anchorSpread = e.Spread
	if e.Spread == 0 {
		c.scrollingH = false
		c.scrollingV = false
	}
}

// End finishes the gesture and resets all transient state.
func (c *Classifier) End() {
	*c = Classifier{ScrollSlop: c.ScrollSlop, ScaleSlop: c.ScaleSlop}
}

// State reports the tracking state.
func (c *Classifier) State() State {
	return c.state
}

// Scrolling reports the sticky classification for an axis.
func (c *Classifier) Scrolling(a Axis) bool {
	if a == Horizontal {
		return c.scrollingH
	}
	return c.scrollingV
}

// Scaling reports the sticky pinch classification.
func (c *Classifier) Scaling() bool {
	return c.scaling
}

// Recognized reports whether the gesture qualified as a scroll or a
// pinch at any point.
func (c *Classifier) Recognized() bool {
	return c.scrollingH || c.scrollingV || c.scaling
}

// Velocity returns the centroid velocity of the latest sample.
func (c *Classifier) Velocity() f32.Point {
	return c.velocity
}

func (c *Classifier) scrollSlop() unit.Dp {
	if c.ScrollSlop != 0 {
		return c.ScrollSlop
	}
	return scrollSlop
}

func (c *Classifier) scaleSlop() unit.Dp {
	if c.ScaleSlop != 0 {
		return c.ScaleSlop
	}
	return scaleSlop
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateTracking:
		return "StateTracking"
	default:
		panic("unreachable")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
