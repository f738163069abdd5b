// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim provides evaluable timing curves and timed transitions.

A Curve is a cubic Bézier easing in the CSS transition-timing-function
sense, anchored at (0,0) and (1,1). Unlike CSS, a Curve can be
evaluated directly, which lets a scroll engine recover the visual
position of an in-flight transition when a new touch captures it.
*/
package anim

import (
	"time"

	"pankit.org/f32"
)

// Curve is a cubic Bézier timing curve with implicit
// endpoints (0,0) and (1,1). X coordinates must lie in
// [0,1]; Y coordinates may exceed that range to express
// overshoot or reversal.
type Curve struct {
	X1, Y1, X2, Y2 float32
}

var (
	// Linear progresses at constant speed.
	Linear = Curve{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75}
	// Decelerate starts at the release speed and eases to a stop.
	Decelerate = Curve{X1: 0, Y1: 0.5, X2: 0.5, Y2: 1}
	// Snap returns briskly from overscroll to the nearest bound.
	Snap = Curve{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	// Reverse lets remaining outward momentum carry past the start
	// before returning. The curve dips below 0 early on.
	Reverse = Curve{X1: 0.5, Y1: -0.3, X2: 0.5, Y2: 1}
)

// maxOvershoot caps synthesized overshoot so extreme flings
// do not produce absurd rebounds.
const maxOvershoot = 0.4

// Overshoot returns a decelerating curve that passes its target by
// amount, expressed as a fraction of the travel distance, before
// settling back. Larger amounts produce a more pronounced rebound.
func Overshoot(amount float32) Curve {
	if amount < 0 {
		amount = -amount
	}
	if amount > maxOvershoot {
		amount = maxOvershoot
	}
	return Curve{X1: 0.2, Y1: 0.6, X2: 0.45, Y2: 1 + amount}
}

// Ease maps time progress t in [0,1] to value progress.
// Values outside [0,1] are clamped before evaluation.
func (c Curve) Ease(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	// The x component is monotonic for x control points in [0,1],
	// so the curve parameter can be found by bisection.
	lo, hi := float32(0), float32(1)
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if bezier(c.X1, c.X2, mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return bezier(c.Y1, c.Y2, (lo+hi)/2)
}

// bezier evaluates the one dimensional cubic Bézier with inner
// control values p1, p2 and endpoints 0, 1 at parameter s.
func bezier(p1, p2, s float32) float32 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

// Transition is a single timed move of a scroll position and scale.
// It mirrors the animated reposition handed to the sink so that the
// engine can recover the instantaneous position mid-flight.
type Transition struct {
	Start    time.Time
	Duration time.Duration
	Curve    Curve

	From, To           f32.Point
	FromScale, ToScale float32
}

// Done reports whether the transition has run to completion at now.
func (t *Transition) Done(now time.Time) bool {
	return !now.Before(t.Start.Add(t.Duration))
}

// Value returns the interpolated position and scale at now.
func (t *Transition) Value(now time.Time) (f32.Point, float32) {
	if t.Duration <= 0 || t.Done(now) {
		return t.To, t.ToScale
	}
	p := float32(now.Sub(t.Start)) / float32(t.Duration)
	e := t.Curve.Ease(p)
	pos := t.From.Add(t.To.Sub(t.From).Mul(e))
	scale := t.FromScale + (t.ToScale-t.FromScale)*e
	return pos, scale
}
