// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"pankit.org/f32"
	"pankit.org/gesture"
)

// softScaleMargin is how far a pinch may transiently push scale past
// its configured limits before release bounces it back.
const softScaleMargin = 0.1

// offsetStore owns the authoritative scroll state. Every mutation of
// offsets or scale funnels through it: normal writes clamp to the
// current bounds, soft writes during an active touch gesture skip
// clamping and leave damping to the caller.
//
// On every non-zero offset write the store records the relative
// position through the scroll range, so a later content resize can
// restore the visually anchored proportion.
type offsetStore struct {
	val   [2]float32
	set   [2]bool
	scale float32

	relPct [2]float32
	hasPct [2]bool
}

// write stores an offset for the axis and returns the stored value,
// which is the clamped value unless soft. Callers must not assume
// round-trip fidelity of out-of-bounds writes outside a gesture.
func (s *offsetStore) write(a gesture.Axis, v float32, b Bounds, container float32, soft bool) float32 {
	if !soft {
		v = f32.Clamp(v, b.Min(a), b.Max(a))
	}
	s.val[a] = v
	s.set[a] = true
	if v != 0 {
		if denom := b.Max(a) + container; denom != 0 {
			s.relPct[a] = (v + container/2) / denom
			s.hasPct[a] = true
		}
	}
	return v
}

// writeScale stores the scale. A view that cannot scale always stores
// 1; a soft write widens the bounds by the elastic margin.
func (s *offsetStore) writeScale(v float32, b Bounds, canScale, soft bool) float32 {
	switch {
	case !canScale:
		v = 1
	case soft:
		v = f32.Clamp(v, b.MinScale*(1-softScaleMargin), b.MaxScale*(1+softScaleMargin))
	default:
		v = f32.Clamp(v, b.MinScale, b.MaxScale)
	}
	s.scale = v
	return v
}

// read returns the last stored offset, or the alignment-derived
// default if the axis was never written.
func (s *offsetStore) read(a gesture.Axis, b Bounds, align Alignment) float32 {
	if !s.set[a] {
		return restOffset(b, a, align)
	}
	return s.val[a]
}

func (s *offsetStore) readScale() float32 {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}
