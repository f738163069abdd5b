// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"

	"pankit.org/anim"
)

func TestOverscrollRelease(t *testing.T) {
	for _, tc := range []struct {
		label    string
		offset   float32
		velocity float32
		want     float32
		curve    anim.Curve
	}{
		// Still moving away from the bound: reverse first.
		{"high still outbound", 320, 0.1, 300, anim.Reverse},
		// Already returning: plain snap.
		{"high returning", 320, 0.5, 300, anim.Snap},
		{"low still outbound", -20, -0.1, 0, anim.Reverse},
		{"low returning", -20, -0.5, 0, anim.Snap},
	} {
		t.Run(tc.label, func(t *testing.T) {
			p := Release(tc.offset, tc.velocity, 0, 300, 300, 3)
			if p.Target != tc.want {
				t.Errorf("got target %g, want %g", p.Target, tc.want)
			}
			if p.Curve != tc.curve {
				t.Errorf("got curve %v, want %v", p.Curve, tc.curve)
			}
			if p.Duration <= 0 {
				t.Error("overscroll release produced no duration")
			}
		})
	}
}

func TestOverscrollDuration(t *testing.T) {
	p := Release(350, 0.1, 0, 300, 300, 3)
	// 0.8 * excess / container.
	frac := 0.8 * 50.0 / 300.0
	want := time.Duration(frac * float64(time.Second))
	if diff := p.Duration - want; diff > time.Millisecond || diff < -time.Millisecond {
		t.Errorf("got duration %v, want %v", p.Duration, want)
	}
}

func TestInBoundsLanding(t *testing.T) {
	// distance = v²·1000/2a = 1000/6 ≈ 166.7, against the velocity
	// sign.
	p := Release(200, 1, 0, 300, 300, 3)
	if got, want := p.Target, float32(200-1000.0/6.0); !approx(got, want) {
		t.Errorf("got target %g, want %g", got, want)
	}
	if p.Curve != anim.Decelerate {
		t.Errorf("got curve %v, want Decelerate", p.Curve)
	}
	secs := 1.0 / 3.0
	want := time.Duration(secs * float64(time.Second))
	if diff := p.Duration - want; diff > time.Millisecond || diff < -time.Millisecond {
		t.Errorf("got duration %v, want %v", p.Duration, want)
	}
}

func TestLandingPastBoundOvershoots(t *testing.T) {
	// landing = 100 - (-1000/6) ≈ 266.7 past max 200.
	p := Release(100, -1, 0, 200, 300, 3)
	if p.Target != 200 {
		t.Errorf("got target %g, want clamped 200", p.Target)
	}
	if p.Curve.Y2 <= 1 {
		t.Errorf("overshoot curve does not pass its target: Y2 = %g", p.Curve.Y2)
	}
}

func TestZeroVelocity(t *testing.T) {
	p := Release(150, 0, 0, 300, 300, 3)
	if p.Target != 150 || p.Duration != 0 {
		t.Errorf("got target %g duration %v, want 150 and 0", p.Target, p.Duration)
	}
}

func TestZeroContainer(t *testing.T) {
	// A zero container must not propagate NaN into the duration.
	p := Release(50, 0.1, 0, 0, 0, 3)
	if p.Duration != 0 {
		t.Errorf("got duration %v, want 0", p.Duration)
	}
	if p.Target != 0 {
		t.Errorf("got target %g, want 0", p.Target)
	}
}

func approx(got, want float32) bool {
	const eps = 1e-3
	d := got - want
	return d < eps && d > -eps
}
