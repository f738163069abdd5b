// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for lengths independent of
the underlying display device. Gesture thresholds are defined in dps so
that a drag or pinch feels the same on a phone and on a high density
laptop screen.

A Metric converts dps to display dependent pixels.
*/
package unit

// Dp represents device independent pixels. 1 dp has
// the same apparent size across platforms and
// display resolutions.
type Dp float32

// Metric converts device independent units to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

// Dp converts v to pixels. The zero Metric converts
// 1 dp to 1 pixel.
func (m Metric) Dp(v Dp) float32 {
	scale := m.PxPerDp
	if scale == 0 {
		scale = 1
	}
	return float32(v) * scale
}
