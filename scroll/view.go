// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scroll implements the touch driven scrolling and zooming
engine of a scrollable container.

A View turns multi-touch samples into a continuously updated
(horizontal offset, vertical offset, scale) triple with inertial
deceleration, elastic overscroll and edge bounce-back. It owns no
rendering: computed positions are handed to a Sink, scrollbar state to
optional per-axis Scrollers.

The engine is single-threaded and cooperative. All state transitions
happen inside Touch, the Set* notifications and Tick; timers are
deadlines fired by Tick. Within one event turn all axis writes
coalesce into a single reposition.
*/
package scroll

import (
	"errors"
	"time"

	"pankit.org/anim"
	"pankit.org/f32"
	"pankit.org/gesture"
	"pankit.org/internal/fling"
	"pankit.org/io/touch"
	"pankit.org/unit"
)

// Horizontal and Vertical alias the gesture axes for callers of the
// axis-addressed View operations.
const (
	Horizontal = gesture.Horizontal
	Vertical   = gesture.Vertical
)

// scaleBounceDuration is the fixed time a released out-of-bounds
// scale takes to return to its nearest limit. Scale has no inertial
// slide, only bounce-back.
const scaleBounceDuration = 250 * time.Millisecond

// Sink applies computed content positions. left and top are the
// content element position, the negated scroll offsets.
type Sink interface {
	// Reposition applies the position and scale instantly.
	Reposition(left, top, scale float32)
	// Transition runs a timed move to the position and scale.
	Transition(left, top, scale float32, d time.Duration, curve anim.Curve)
}

// Scroller is a scrollbar widget attached to one axis. Its rendering
// and fade effects are its own; the View only drives its state.
type Scroller interface {
	SetRange(min, max float32)
	SetProportion(p float32)
	SetValue(v float32)
	SetVisible(visible bool)
	Visible() bool
	FadeIn()
	FadeOut()
}

// State of a View.
type State uint8

const (
	// StateIdle is the default state.
	StateIdle State = iota
	// StateDragging is reported while a touch gesture is active.
	StateDragging
	// StateSettling is reported while a release animation runs.
	StateSettling
)

// View is the scrolling and zooming engine of one container.
type View struct {
	cfg    Config
	metric unit.Metric
	sink   Sink

	scrollers [2]Scroller
	autohide  [2]bool
	disabled  [2]bool
	align     [2]Alignment
	zoom      bool

	vp     viewport
	bounds Bounds
	store  offsetStore
	class  gesture.Classifier

	// dragStart holds the offsets at gesture start; drag deltas
	// are applied relative to it.
	dragStart [2]float32
	dragging  bool
	wantGrab  bool
	pressTime time.Duration

	trans *anim.Transition
	fade  [2]fadeTimer
	now   time.Time

	turn      int
	needPos   bool
	pending   *pendingTransition
	lastPos   f32.Point
	lastScale float32
	lastVal   [2]float32
	sent      bool
}

type pendingTransition struct {
	d     time.Duration
	curve anim.Curve
}

// New creates a View delivering positions to sink. A nil sink is the
// one fatal construction error: without a reposition target the
// container cannot function.
func New(sink Sink, cfg Config) (*View, error) {
	if sink == nil {
		return nil, errors.New("scroll: view requires a reposition sink")
	}
	v := &View{
		cfg:  cfg.withDefaults(),
		sink: sink,
	}
	v.zoom = v.cfg.Zoom
	v.store.scale = 1
	v.lastScale = 1
	v.class.ScrollSlop = v.cfg.ScrollSlop
	v.class.ScaleSlop = v.cfg.ScaleSlop
	v.recomputeBounds()
	return v, nil
}

// SetMetric sets the display metric used to convert the dp gesture
// thresholds.
func (v *View) SetMetric(m unit.Metric) {
	v.metric = m
}

// Offset returns the current scroll offsets.
func (v *View) Offset() f32.Point {
	return f32.Pt(v.offset(Horizontal), v.offset(Vertical))
}

// Scale returns the current scale.
func (v *View) Scale() float32 {
	return v.store.readScale()
}

// Bounds returns the current derived offset and scale limits.
func (v *View) Bounds() Bounds {
	return v.bounds
}

// State reports the gesture state.
func (v *View) State() State {
	switch {
	case v.dragging:
		return StateDragging
	case v.trans != nil:
		return StateSettling
	default:
		return StateIdle
	}
}

// Dragging reports whether a touch gesture is active.
func (v *View) Dragging() bool {
	return v.dragging
}

// Flinging reports whether a release animation is in flight.
func (v *View) Flinging() bool {
	return v.trans != nil
}

// WantsCapture reports whether the view wants exclusive handling of
// the active gesture. It becomes true once a drag or pinch crosses
// its recognition threshold.
func (v *View) WantsCapture() bool {
	return v.wantGrab
}

// ScrollTo scrolls to the clamped offsets and reports whether either
// offset changed.
func (v *View) ScrollTo(x, y float32) bool {
	v.begin()
	defer v.end()
	return v.scrollTo(x, y)
}

// ScrollBy scrolls by the given distances and reports whether either
// offset changed.
func (v *View) ScrollBy(dx, dy float32) bool {
	v.begin()
	defer v.end()
	return v.scrollTo(v.offset(Horizontal)+dx, v.offset(Vertical)+dy)
}

// Wheel applies a linear wheel delta. It is a thin special case of
// ScrollBy with no gesture physics attached.
func (v *View) Wheel(delta f32.Point) bool {
	return v.ScrollBy(delta.X, delta.Y)
}

// ScrollLine scrolls one line increment along the axis in the given
// direction.
func (v *View) ScrollLine(a gesture.Axis, dir int) bool {
	return v.scrollAxisBy(a, float32(dir)*v.cfg.LineIncrement)
}

// ScrollPage scrolls one page along the axis in the given direction.
func (v *View) ScrollPage(a gesture.Axis, dir int) bool {
	return v.scrollAxisBy(a, float32(dir)*v.vp.axisContainer(a)*v.cfg.PageFraction)
}

// ScrollToRect brings r, in content coordinates, into the visible
// container area and reports whether any offset changed. A rect that
// does not fit reveals its top/left edge first.
func (v *View) ScrollToRect(r f32.Rectangle) bool {
	r = r.Canon()
	x := reveal(r.Min.X, r.Max.X, v.offset(Horizontal), v.vp.container.X)
	y := reveal(r.Min.Y, r.Max.Y, v.offset(Vertical), v.vp.container.Y)
	return v.ScrollTo(x, y)
}

// SetScale writes the scale, clamped to the configured limits, and
// reports whether it changed. A view without zoom always stores 1.
func (v *View) SetScale(s float32) bool {
	v.begin()
	defer v.end()
	old := v.store.readScale()
	if v.store.writeScale(s, v.bounds, v.zoom, false) == old {
		return false
	}
	v.invalidate()
	return true
}

// Touch feeds one multi-touch sample to the engine. now anchors the
// release animation and fade deadlines; events carry their own
// relative timestamps.
func (v *View) Touch(now time.Time, e touch.Event) {
	v.now = now
	v.begin()
	defer v.end()
	switch e.Kind {
	case touch.Press:
		v.press(now, e)
	case touch.Move:
		v.move(e)
	case touch.Drop:
		v.class.Drop(e)
		v.dragStart[Horizontal] = v.offset(Horizontal)
		v.dragStart[Vertical] = v.offset(Vertical)
	case touch.Release:
		vel := e.Velocity
		if vel == (f32.Point{}) {
			// Sources that do not track release velocity fall back
			// to the tracked velocity of the last move sample.
			vel = v.class.Velocity()
		}
		v.release(vel)
	case touch.Cancel:
		v.release(f32.Point{})
	case touch.Scroll:
		v.scrollTo(v.offset(Horizontal)+e.Scroll.X, v.offset(Vertical)+e.Scroll.Y)
	}
}

// Tick fires due timers: pending scroller fade-outs and release
// animation completion. The host event loop calls it whenever time
// passes.
func (v *View) Tick(now time.Time) {
	v.now = now
	for a := Horizontal; a <= Vertical; a++ {
		f := v.fade[a]
		if f.pending && !now.Before(f.deadline) {
			// Null the handle before firing so a fade-in from
			// the callback cannot double-invoke it.
			v.fade[a] = fadeTimer{}
			if sc := v.scrollers[a]; sc != nil {
				sc.FadeOut()
			}
		}
	}
	if t := v.trans; t != nil && t.Done(now) {
		v.trans = nil
	}
}

func (v *View) press(now time.Time, e touch.Event) {
	if t := v.trans; t != nil {
		// Capture the in-flight animation at its current visual
		// position so the new gesture starts without a jump. The
		// position may be mid-bounce outside the bounds, so the
		// writes are soft.
		pos, scale := t.Value(now)
		v.trans = nil
		v.store.write(Horizontal, -pos.X, v.bounds, v.vp.container.X, true)
		v.store.write(Vertical, -pos.Y, v.bounds, v.vp.container.Y, true)
		v.store.writeScale(scale, v.bounds, v.zoom, true)
		v.invalidate()
	}
	v.class.Start(e)
	v.dragStart[Horizontal] = v.offset(Horizontal)
	v.dragStart[Vertical] = v.offset(Vertical)
	v.dragging = true
	v.wantGrab = false
	v.pressTime = e.Time
}

func (v *View) move(e touch.Event) {
	if !v.dragging {
		return
	}
	if e.Priority < touch.Grabbed && e.Time-v.pressTime < v.cfg.captureDelay() {
		// Descendant views keep the gesture for the configured
		// pass-through window.
		return
	}
	canH, canV := v.canScroll(Horizontal), v.canScroll(Vertical)
	d := v.class.Update(v.metric, canH, canV, e)
	if v.class.Scaling() {
		if d.ScaleFactor != 1 {
			v.store.writeScale(v.Scale()*d.ScaleFactor, v.bounds, v.zoom, true)
			v.invalidate()
		}
	} else {
		if d.ScrollingH {
			v.dragAxis(Horizontal, v.dragStart[Horizontal]+d.X)
		}
		if d.ScrollingV {
			v.dragAxis(Vertical, v.dragStart[Vertical]+d.Y)
		}
	}
	if v.class.Recognized() {
		v.wantGrab = true
	}
}

// dragAxis applies a soft, slip-damped offset write for an active
// drag. Distance past a bound is scaled by the slip factor, producing
// the rubber-band resistance.
func (v *View) dragAxis(a gesture.Axis, want float32) {
	min, max := v.bounds.Min(a), v.bounds.Max(a)
	if want > max {
		want = max + v.cfg.SlipFactor*(want-max)
	} else if want < min {
		want = min + v.cfg.SlipFactor*(want-min)
	}
	v.store.write(a, want, v.bounds, v.vp.axisContainer(a), true)
	v.fadeIn(a)
	v.invalidate()
}

// release runs the inertia decision for each axis and the scale
// bounce-back, hard-writes the terminal values and plans the single
// combined transition. An unrecognized tap runs the plan too: the
// press may have captured an out-of-bounds mid-bounce position that
// must return into bounds.
func (v *View) release(vel f32.Point) {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.wantGrab = false
	scrollH := v.class.Scrolling(Horizontal)
	scrollV := v.class.Scrolling(Vertical)
	v.class.End()
	v.dragStart = [2]float32{}

	var vh, vv float32
	if scrollH {
		vh = vel.X
	}
	if scrollV {
		vv = vel.Y
	}
	fromH, fromV := v.offset(Horizontal), v.offset(Vertical)
	ph := fling.Release(fromH, vh, v.bounds.MinH, v.bounds.MaxH, v.vp.container.X, v.cfg.DecelerationRate)
	pv := fling.Release(fromV, vv, v.bounds.MinV, v.bounds.MaxV, v.vp.container.Y, v.cfg.DecelerationRate)

	scale := v.Scale()
	targetScale := f32.Clamp(scale, v.bounds.MinScale, v.bounds.MaxScale)
	var durScale time.Duration
	if targetScale != scale {
		durScale = scaleBounceDuration
	}

	v.store.write(Horizontal, ph.Target, v.bounds, v.vp.container.X, false)
	v.store.write(Vertical, pv.Target, v.bounds, v.vp.container.Y, false)
	v.store.writeScale(targetScale, v.bounds, v.zoom, false)
	if scrollH {
		v.fadeIn(Horizontal)
	}
	if scrollV {
		v.fadeIn(Vertical)
	}
	v.invalidate()

	// Both axes and the scale drive one combined transition, so the
	// longest duration wins and the other components stretch with
	// it. An accepted approximation, not worth independent
	// transitions per axis.
	dur := ph.Duration
	curve := ph.Curve
	if pv.Duration > dur {
		dur, curve = pv.Duration, pv.Curve
	}
	if durScale > dur {
		dur, curve = durScale, anim.Snap
	}
	if dur <= 0 {
		return
	}
	v.trans = &anim.Transition{
		Start:     v.now,
		Duration:  dur,
		Curve:     curve,
		From:      f32.Pt(-fromH, -fromV),
		To:        f32.Pt(-ph.Target, -pv.Target),
		FromScale: scale,
		ToScale:   targetScale,
	}
	v.pending = &pendingTransition{d: dur, curve: curve}
}

func (v *View) scrollTo(x, y float32) bool {
	h0, v0 := v.offset(Horizontal), v.offset(Vertical)
	h := v.store.write(Horizontal, x, v.bounds, v.vp.container.X, false)
	vv := v.store.write(Vertical, y, v.bounds, v.vp.container.Y, false)
	if h == h0 && vv == v0 {
		return false
	}
	v.invalidate()
	return true
}

func (v *View) scrollAxisBy(a gesture.Axis, delta float32) bool {
	v.begin()
	defer v.end()
	if a == gesture.Horizontal {
		return v.scrollTo(v.offset(Horizontal)+delta, v.offset(Vertical))
	}
	return v.scrollTo(v.offset(Horizontal), v.offset(Vertical)+delta)
}

func (v *View) offset(a gesture.Axis) float32 {
	return v.store.read(a, v.bounds, v.align[a])
}

// canScroll reports whether the axis is enabled and has an attached,
// visible scroller.
func (v *View) canScroll(a gesture.Axis) bool {
	sc := v.scrollers[a]
	return !v.disabled[a] && sc != nil && sc.Visible()
}

// reveal returns the offset that brings the span [lo, hi] into a
// viewport of the given size currently at off. A span already fully
// visible keeps the offset; anything else aligns the leading edge,
// which also reveals the top/left first when the span does not fit.
func reveal(lo, hi, off, size float32) float32 {
	if lo >= off && hi <= off+size {
		return off
	}
	return lo
}

// begin and end bracket one event turn. Writes mark the position
// dirty; the last end of the turn flushes a single reposition.
func (v *View) begin() {
	v.turn++
}

func (v *View) end() {
	v.turn--
	if v.turn == 0 && v.needPos {
		v.flush()
	}
}

func (v *View) invalidate() {
	v.needPos = true
}

// flush delivers the coalesced position to the sink and mirrors the
// offsets into the scrollers. Identical consecutive positions are
// dropped so redundant writes cause no layout work.
func (v *View) flush() {
	v.needPos = false
	h, vv := v.offset(Horizontal), v.offset(Vertical)
	scale := v.Scale()
	// 0-x rather than -x so a zero offset stays positive zero.
	left, top := 0-h, 0-vv
	p := v.pending
	v.pending = nil
	if v.sent && left == v.lastPos.X && top == v.lastPos.Y && scale == v.lastScale && p == nil {
		return
	}
	for a := Horizontal; a <= Vertical; a++ {
		val := v.offset(a)
		if sc := v.scrollers[a]; sc != nil && (!v.sent || val != v.lastVal[a]) {
			sc.SetValue(val)
		}
		v.lastVal[a] = val
	}
	if p != nil {
		v.sink.Transition(left, top, scale, p.d, p.curve)
	} else {
		v.sink.Reposition(left, top, scale)
	}
	v.lastPos = f32.Pt(left, top)
	v.lastScale = scale
	v.sent = true
}
