// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"time"

	"pankit.org/gesture"
)

// fadeTimer is the cancellable fade-out deadline of one axis. The
// zero value is an empty handle.
type fadeTimer struct {
	pending  bool
	deadline time.Time
}

// fadeIn shows the axis scroller and schedules its fade-out. Activity
// while a fade-out is pending moves the deadline instead of stacking
// another timer. Axes that cannot scroll never fade.
func (v *View) fadeIn(a gesture.Axis) {
	if !v.canScroll(a) {
		return
	}
	deadline := v.now.Add(v.cfg.fadeOutDelay())
	if v.fade[a].pending {
		v.fade[a].deadline = deadline
		return
	}
	v.scrollers[a].FadeIn()
	v.fade[a] = fadeTimer{pending: true, deadline: deadline}
}
