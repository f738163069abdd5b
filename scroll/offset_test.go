// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"testing"

	"pankit.org/gesture"
)

var testBounds = Bounds{MinH: 0, MaxH: 300, MinV: 0, MaxV: 200, MinScale: 0.5, MaxScale: 2}

func TestWriteClamps(t *testing.T) {
	var s offsetStore
	if got := s.write(gesture.Horizontal, 450, testBounds, 300, false); got != 300 {
		t.Errorf("got %g, want clamped 300", got)
	}
	if got := s.read(gesture.Horizontal, testBounds, Start); got != 300 {
		t.Errorf("read after clamped write = %g, want 300", got)
	}
	if got := s.write(gesture.Horizontal, -50, testBounds, 300, false); got != 0 {
		t.Errorf("got %g, want clamped 0", got)
	}
}

func TestSoftWriteSkipsClamping(t *testing.T) {
	var s offsetStore
	if got := s.write(gesture.Horizontal, 350, testBounds, 300, true); got != 350 {
		t.Errorf("soft write stored %g, want 350", got)
	}
}

func TestReadDefault(t *testing.T) {
	var s offsetStore
	if got := s.read(gesture.Horizontal, testBounds, End); got != 300 {
		t.Errorf("unset trailing read = %g, want 300", got)
	}
	s.write(gesture.Horizontal, 10, testBounds, 300, false)
	if got := s.read(gesture.Horizontal, testBounds, End); got != 10 {
		t.Errorf("read after write = %g, want 10", got)
	}
}

func TestRelativePercent(t *testing.T) {
	var s offsetStore
	s.write(gesture.Horizontal, 150, testBounds, 300, false)
	if !s.hasPct[gesture.Horizontal] {
		t.Fatal("non-zero write did not record relative position")
	}
	// (150 + 150) / (300 + 300).
	if got, want := s.relPct[gesture.Horizontal], float32(0.5); got != want {
		t.Errorf("got relative position %g, want %g", got, want)
	}
	// A zero write leaves the recorded position alone.
	s.write(gesture.Horizontal, 0, testBounds, 300, false)
	if got := s.relPct[gesture.Horizontal]; got != 0.5 {
		t.Errorf("zero write changed relative position to %g", got)
	}
}

func TestWriteScale(t *testing.T) {
	for _, tc := range []struct {
		label    string
		v        float32
		canScale bool
		soft     bool
		want     float32
	}{
		{"disabled pins to one", 1.7, false, false, 1},
		{"disabled pins soft too", 0.2, false, true, 1},
		{"hard clamp high", 3, true, false, 2},
		{"hard clamp low", 0.1, true, false, 0.5},
		{"soft margin high", 2.1, true, true, 2.1},
		{"soft margin limit", 5, true, true, 2.2},
		{"soft margin low", 0.4, true, true, 0.45},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var s offsetStore
			if got := s.writeScale(tc.v, testBounds, tc.canScale, tc.soft); !approxScale(got, tc.want) {
				t.Errorf("got %g, want %g", got, tc.want)
			}
		})
	}
}

func approxScale(got, want float32) bool {
	const eps = 1e-5
	d := got - want
	return d < eps && d > -eps
}
