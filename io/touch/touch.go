// SPDX-License-Identifier: Unlicense OR MIT

/*
Package touch defines the multi-touch sample events consumed by the
gesture and scroll packages.

A touch source reduces all active touch points on a target to one
sample per event: the centroid of the points, their average pairwise
distance (the spread), and the tracked velocity of the centroid. The
reduction lets gesture recognizers treat a multi-finger gesture as one
logical pointer plus a pinch signal.
*/
package touch

import (
	"strings"
	"time"

	"pankit.org/f32"
	"pankit.org/io/event"
)

var _ event.Event = Event{}

// Event is one multi-touch sample.
type Event struct {
	Kind   Kind
	Source Source
	// Priority is the priority of the receiving handler
	// for this event. Handlers see Shared events until they
	// claim the gesture with a grab.
	Priority Priority
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Centroid is the average position of all active
	// touch points, in the local coordinate system of
	// the receiving tag.
	Centroid f32.Point
	// Spread is the average pairwise distance between
	// active touch points. It is 0 while a single touch
	// is active.
	Spread float32
	// Velocity is the tracked velocity of the centroid,
	// in pixels per millisecond.
	Velocity f32.Point
	// Touches is the number of active touch points.
	Touches int
	// Scroll is the wheel scroll distance, if any.
	Scroll f32.Point
}

// Kind of an Event.
type Kind uint8

// Priority of an Event.
type Priority uint8

// Source of an Event.
type Source uint8

const (
	// Cancel is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = iota
	// Press of the first touch point.
	Press
	// Move of one or more touch points.
	Move
	// Release of the last touch point.
	Release
	// Drop of a touch point that is not the last; the
	// sample describes the remaining points.
	Drop
	// Scroll from a wheel or similar linear device.
	Scroll
)

const (
	// Shared priority is for handlers that
	// are part of a matching set larger than 1.
	Shared Priority = iota
	// Foremost priority is like Shared, but the
	// handler is the foremost of the matching set.
	Foremost
	// Grabbed is used for matching sets of size 1.
	Grabbed
)

const (
	// Touch generated event.
	Touch Source = iota
	// Mouse generated event.
	Mouse
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	case Drop:
		return "Drop"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

func (p Priority) String() string {
	switch p {
	case Shared:
		return "Shared"
	case Foremost:
		return "Foremost"
	case Grabbed:
		return "Grabbed"
	default:
		panic("unknown priority")
	}
}

func (s Source) String() string {
	switch s {
	case Touch:
		return "Touch"
	case Mouse:
		return "Mouse"
	default:
		panic("unknown source")
	}
}

func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteByte('(')
	b.WriteString(e.Source.String())
	b.WriteByte(')')
	return b.String()
}

func (Event) ImplementsEvent() {}
