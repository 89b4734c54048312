// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package gesture turns drag, fling and pinch events into scroll offsets.
// Every offset is written through the scroll handler.
package gesture

import (
	"maycharts/chartlog"
	"maycharts/scroll"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateScrolling
	StateFlinging
	numStates
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScrolling:
		return "scrolling"
	case StateFlinging:
		return "flinging"
	}
	return "unknown"
}

type event int

const (
	eventTouchDown event = iota
	eventDrag
	eventFlingStart
	eventRelease
	eventFlingEnd
	numEvents
)

var transitions = [numStates][numEvents]State{
	StateIdle: {
		eventTouchDown:  StateIdle,
		eventDrag:       StateScrolling,
		eventFlingStart: StateFlinging,
		eventRelease:    StateIdle,
		eventFlingEnd:   StateIdle,
	},
	StateScrolling: {
		eventTouchDown:  StateScrolling,
		eventDrag:       StateScrolling,
		eventFlingStart: StateFlinging,
		eventRelease:    StateIdle,
		eventFlingEnd:   StateScrolling,
	},
	StateFlinging: {
		// Touching the chart stops the fling.
		eventTouchDown:  StateIdle,
		eventDrag:       StateScrolling,
		eventFlingStart: StateFlinging,
		eventRelease:    StateFlinging,
		eventFlingEnd:   StateIdle,
	},
}

// Pincher applies a zoom step and returns the scroll delta keeping the focal point in place.
type Pincher interface {
	Pinch(focalX, multiplier float64) (scrollDelta float64, ok bool)
}

// Handler is the gesture state machine of a chart.
type Handler struct {
	scroll  *scroll.Handler
	pincher Pincher
	state   State

	fling       Fling
	flingStart  time.Time
	startScroll float64
	// pinched is set if a pinch wrote the offset since the last frame.
	pinched bool
}

// NewHandler creates a gesture handler writing to s. pincher may be nil, in
// which case pinches are ignored.
func NewHandler(s *scroll.Handler, pincher Pincher) *Handler {
	return &Handler{scroll: s, pincher: pincher}
}

func (h *Handler) State() State {
	return h.state
}

func (h *Handler) IsFlinging() bool {
	return h.state == StateFlinging
}

func (h *Handler) transition(e event) {
	next := transitions[h.state][e]
	if next == h.state {
		return
	}
	if h.state == StateFlinging {
		chartlog.Logger().Debug("fling stopped", "state", next)
	}
	h.state = next
}

func (h *Handler) OnTouchDown() {
	h.transition(eventTouchDown)
}

// OnDragDelta moves the content by dx pixels. Moving the content to the right
// reveals earlier entries and reduces the scroll offset.
func (h *Handler) OnDragDelta(dx float64) {
	h.transition(eventDrag)
	h.scroll.SetScroll(h.scroll.CurrentScroll() - dx)
}

// OnFlingStart starts decelerating with the release velocity, in px/s
// in the direction of the drag.
func (h *Handler) OnFlingStart(velocity float64) {
	f := Fling{Velocity: velocity, Friction: DefaultFriction}
	if _, moving := f.Offset(0); !moving || !h.scroll.CanScroll() {
		h.transition(eventRelease)
		return
	}
	h.transition(eventFlingStart)
	h.fling = f
	h.flingStart = time.Time{}
	h.startScroll = h.scroll.CurrentScroll()
	chartlog.Logger().Debug("fling started", "velocity", velocity, "scroll", h.startScroll)
}

func (h *Handler) OnRelease() {
	h.transition(eventRelease)
}

// OnPinch applies a zoom step around focalX. A running fling continues from
// the adjusted offset.
func (h *Handler) OnPinch(focalX, multiplier float64) bool {
	if h.pincher == nil {
		return false
	}
	delta, ok := h.pincher.Pinch(focalX, multiplier)
	if !ok {
		return false
	}
	before := h.scroll.CurrentScroll()
	h.scroll.SetScroll(before + delta)
	if h.state == StateFlinging {
		h.startScroll += h.scroll.CurrentScroll() - before
		h.pinched = true
	}
	return true
}

// ComputeScrollOffset writes the offset of a running fling and returns true
// while the fling is still moving. It is called once per frame.
func (h *Handler) ComputeScrollOffset(now time.Time) bool {
	if h.state != StateFlinging {
		h.pinched = false
		return false
	}
	if h.flingStart.IsZero() {
		h.flingStart = now
	}
	offset, moving := h.fling.Offset(now.Sub(h.flingStart))
	target := h.startScroll - offset
	if h.pinched {
		// The pinch already wrote the offset of this frame.
		h.pinched = false
	} else {
		h.scroll.SetScroll(target)
	}
	if target < 0 || target > h.scroll.MaxScroll() {
		moving = false
	}
	if !moving {
		h.transition(eventFlingEnd)
	}
	return moving
}
