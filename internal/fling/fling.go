// SPDX-License-Identifier: Unlicense OR MIT

// Package fling computes how one scroll axis settles after the last
// touch lifts: a snap back from overscroll, a reverse-then-return
// bounce, or a decelerating slide that may rubber-band off an edge.
package fling

import (
	"time"

	"pankit.org/anim"
)

// reverseVelocity is the outward speed below which an overscrolled
// release is still moving away from its bound and gets the reversing
// curve instead of a plain snap.
const reverseVelocity = 0.2

// overscrollDuration scales the snap-back time by how far past the
// bound the release happened, relative to the container size.
const overscrollDuration = 0.8

// Plan is the terminal state and timing for one axis.
type Plan struct {
	Target   float32
	Duration time.Duration
	Curve    anim.Curve
}

// Release decides the settling behavior for an axis released at
// offset with the given velocity in pixels per millisecond. min and
// max are the axis bounds, container its viewport size and decel the
// constant deceleration rate.
func Release(offset, velocity, min, max, container, decel float32) Plan {
	switch {
	case offset > max:
		curve := anim.Snap
		if velocity < reverseVelocity {
			curve = anim.Reverse
		}
		return Plan{
			Target:   max,
			Duration: seconds(overscrollDuration * safeDiv(offset-max, container)),
			Curve:    curve,
		}
	case offset < min:
		curve := anim.Snap
		if velocity > -reverseVelocity {
			curve = anim.Reverse
		}
		return Plan{
			Target:   min,
			Duration: seconds(overscrollDuration * safeDiv(min-offset, container)),
			Curve:    curve,
		}
	}
	if velocity == 0 || decel <= 0 {
		return Plan{Target: offset, Curve: anim.Decelerate}
	}
	// Constant-deceleration kinematics: distance = v²/2a.
	distance := velocity * velocity * 1000 / (2 * decel)
	if velocity < 0 {
		distance = -distance
	}
	landing := offset - distance
	duration := seconds(abs(velocity / decel))
	switch {
	case landing > max:
		return Plan{
			Target:   max,
			Duration: duration,
			Curve:    anim.Overshoot(safeDiv(landing-max, container)),
		}
	case landing < min:
		return Plan{
			Target:   min,
			Duration: duration,
			Curve:    anim.Overshoot(safeDiv(min-landing, container)),
		}
	}
	return Plan{Target: landing, Duration: duration, Curve: anim.Decelerate}
}

func seconds(s float32) time.Duration {
	if s < 0 {
		s = 0
	}
	return time.Duration(float64(s) * float64(time.Second))
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
