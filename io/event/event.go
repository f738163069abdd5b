// SPDX-License-Identifier: Unlicense OR MIT

// Package event defines the marker interface satisfied by the event
// types of this module.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
