// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"math"

	"pankit.org/f32"
	"pankit.org/gesture"
)

// Alignment selects where content rests on an axis it does not
// overflow.
type Alignment uint8

const (
	// Start pins non-overflowing content to the leading edge.
	Start Alignment = iota
	// Middle centers non-overflowing content.
	Middle
	// End pins non-overflowing content to the trailing edge.
	End
)

// Bounds are the derived offset and scale limits of a View. They are
// recomputed from the viewport snapshot on every size, alignment or
// scrollability change and never stored as independent truth.
type Bounds struct {
	MinH, MaxH         float32
	MinV, MaxV         float32
	MinScale, MaxScale float32
}

// Min returns the minimum offset for an axis.
func (b Bounds) Min(a gesture.Axis) float32 {
	if a == gesture.Horizontal {
		return b.MinH
	}
	return b.MinV
}

// Max returns the maximum offset for an axis.
func (b Bounds) Max(a gesture.Axis) float32 {
	if a == gesture.Horizontal {
		return b.MaxH
	}
	return b.MaxV
}

// viewport is the cached container and content measurement snapshot.
// The surrounding layout system owns the real frames; the engine only
// sees explicit updates.
type viewport struct {
	container f32.Point
	content   f32.Point
}

func (vp viewport) axisContainer(a gesture.Axis) float32 {
	if a == gesture.Horizontal {
		return vp.container.X
	}
	return vp.container.Y
}

func (vp viewport) axisContent(a gesture.Axis) float32 {
	if a == gesture.Horizontal {
		return vp.content.X
	}
	return vp.content.Y
}

// computeBounds derives the offset and scale limits from the viewport
// snapshot, the per-axis alignment and the scrollability flags.
func computeBounds(vp viewport, align [2]Alignment, canH, canV, canScale bool, minScale, maxScale float32) Bounds {
	var b Bounds
	b.MinH, b.MaxH = axisBounds(vp.container.X, vp.content.X, align[gesture.Horizontal], canH)
	b.MinV, b.MaxV = axisBounds(vp.container.Y, vp.content.Y, align[gesture.Vertical], canV)
	if canScale {
		b.MinScale, b.MaxScale = minScale, maxScale
	} else {
		b.MinScale, b.MaxScale = 1, 1
	}
	return b
}

// axisBounds returns the offset range for one axis. Content that does
// not overflow the container is pinned: both bounds collapse to the
// alignment-determined value. An axis that cannot scroll has its
// content clamped to the container first, pinning it the same way.
func axisBounds(container, content float32, align Alignment, can bool) (min, max float32) {
	if !can && content > container {
		content = container
	}
	if content <= container {
		p := pinnedOffset(container, content, align)
		return p, p
	}
	return 0, content - container
}

// pinnedOffset is the rest offset for content no larger than its
// container.
func pinnedOffset(container, content float32, align Alignment) float32 {
	switch align {
	case End:
		return -(container - content)
	case Middle:
		return -float32(math.Round(float64(container-content) / 2))
	default:
		return 0
	}
}

// restOffset is the offset an axis reads before any write: the
// alignment-derived default within the current bounds.
func restOffset(b Bounds, a gesture.Axis, align Alignment) float32 {
	min, max := b.Min(a), b.Max(a)
	switch align {
	case End:
		return max
	case Middle:
		return float32(math.Round(float64(min+max) / 2))
	default:
		return min
	}
}
