// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"pankit.org/f32"
	"pankit.org/gesture"
)

// SetContainerSize updates the cached container frame and reflows.
func (v *View) SetContainerSize(size f32.Point) {
	v.begin()
	defer v.end()
	if size == v.vp.container {
		return
	}
	v.vp.container = size
	v.reflow(false)
}

// SetContentSize updates the cached content measurement and reflows.
// Content size changes additionally restore the recorded relative
// scroll position, so the visual anchor survives a resize such as a
// zoom-driven remeasure.
func (v *View) SetContentSize(size f32.Point) {
	v.begin()
	defer v.end()
	if size == v.vp.content {
		return
	}
	v.vp.content = size
	v.reflow(true)
}

// SetAlignment sets the rest alignment of one axis and reflows.
func (v *View) SetAlignment(a gesture.Axis, align Alignment) {
	v.begin()
	defer v.end()
	if v.align[a] == align {
		return
	}
	v.align[a] = align
	v.reflow(false)
}

// AttachScroller attaches, or with nil detaches, the scrollbar widget
// of one axis. Scrollability of the axis follows the scroller's
// presence and visibility.
func (v *View) AttachScroller(a gesture.Axis, s Scroller) {
	v.begin()
	defer v.end()
	v.scrollers[a] = s
	v.fade[a] = fadeTimer{}
	v.reflow(false)
}

// SetScrollable toggles scrolling on one axis. A disabled axis is
// pinned like one without overflow, independently of the attached
// scroller.
func (v *View) SetScrollable(a gesture.Axis, enabled bool) {
	v.begin()
	defer v.end()
	if v.disabled[a] == !enabled {
		return
	}
	v.disabled[a] = !enabled
	v.reflow(false)
}

// SetAutohide makes the axis scroller visibility follow content
// overflow.
func (v *View) SetAutohide(a gesture.Axis, enabled bool) {
	v.begin()
	defer v.end()
	if v.autohide[a] == enabled {
		return
	}
	v.autohide[a] = enabled
	v.reflow(false)
}

// SetScaleEnabled toggles pinch scaling. Disabling forces the stored
// scale back to 1.
func (v *View) SetScaleEnabled(enabled bool) {
	v.begin()
	defer v.end()
	if v.zoom == enabled {
		return
	}
	v.zoom = enabled
	if !enabled {
		if v.store.writeScale(1, v.bounds, false, false) != v.lastScale {
			v.invalidate()
		}
	}
	v.reflow(false)
}

// reflow reacts to any container, content, alignment or scrollability
// change. Each step is independent and idempotent: recompute bounds,
// realign offsets that fell outside them, refresh scroller proportion
// and visibility, and reposition the content.
func (v *View) reflow(contentResized bool) {
	// Autohide first: visibility feeds the scrollability flags the
	// bounds derive from.
	for a := Horizontal; a <= Vertical; a++ {
		if v.autohide[a] && v.scrollers[a] != nil {
			v.scrollers[a].SetVisible(v.vp.axisContent(a) > v.vp.axisContainer(a))
		}
	}
	v.recomputeBounds()
	for a := Horizontal; a <= Vertical; a++ {
		min, max := v.bounds.Min(a), v.bounds.Max(a)
		container := v.vp.axisContainer(a)
		before := v.offset(a)
		switch {
		case min == max:
			// No scroll range: content is always realigned to the
			// pinned value, never left at a stale offset.
			v.store.write(a, min, v.bounds, container, false)
		case contentResized && v.store.hasPct[a]:
			off := v.store.relPct[a]*(max+container) - container/2
			v.store.write(a, off, v.bounds, container, false)
		default:
			// Re-clamp into the new bounds.
			v.store.write(a, before, v.bounds, container, false)
		}
		if v.offset(a) != before {
			v.invalidate()
			v.fadeIn(a)
		}
		if sc := v.scrollers[a]; sc != nil {
			sc.SetRange(min, max)
			if content := v.vp.axisContent(a); content > 0 {
				p := container / content
				if p > 1 {
					p = 1
				}
				sc.SetProportion(p)
			}
			sc.SetValue(v.offset(a))
			v.lastVal[a] = v.offset(a)
		}
	}
	v.invalidate()
}

func (v *View) recomputeBounds() {
	v.bounds = computeBounds(
		v.vp, v.align,
		v.canScroll(Horizontal), v.canScroll(Vertical),
		v.zoom, v.cfg.MinScale, v.cfg.MaxScale,
	)
}
