// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package scroll tracks the horizontal scroll offset of a chart.
package scroll

import (
	"maycharts/stockval"
)

// Handler owns the current scroll offset, which always stays within [0, MaxScroll].
// Not safe for concurrent use, it is driven by the draw and gesture callbacks.
type Handler struct {
	currentScroll float64
	maxScroll     float64
	onScroll      func(scroll float64)
}

func NewHandler(onScroll func(scroll float64)) *Handler {
	return &Handler{onScroll: onScroll}
}

func (h *Handler) CurrentScroll() float64 {
	return h.currentScroll
}

func (h *Handler) MaxScroll() float64 {
	return h.maxScroll
}

func (h *Handler) CanScroll() bool {
	return h.maxScroll > 0
}

// SetScroll clamps px and stores it. The callback fires only if the stored value changed.
func (h *Handler) SetScroll(px float64) bool {
	if !stockval.IsFinite(px) {
		return false
	}
	clamped := stockval.Clamp(px, 0, h.maxScroll)
	if clamped == h.currentScroll {
		return false
	}
	h.currentScroll = clamped
	h.notify()
	return true
}

func (h *Handler) HandleScrollDelta(delta float64) bool {
	return h.SetScroll(h.currentScroll + delta)
}

// UpdateMaxScroll is called once per frame with the scroll range of the data set.
// The current offset is pulled back into range if the content shrank.
func (h *Handler) UpdateMaxScroll(maxScroll float64) {
	if !stockval.IsFinite(maxScroll) || maxScroll < 0 {
		maxScroll = 0
	}
	h.maxScroll = maxScroll
	if h.currentScroll > maxScroll {
		h.currentScroll = maxScroll
		h.notify()
	}
}

func (h *Handler) notify() {
	if h.onScroll != nil {
		h.onScroll(h.currentScroll)
	}
}
