// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

// RendererViewState is transient per-frame state threaded through a draw call.
type RendererViewState struct {
	HorizontalScroll float64
	MarkerTouchPoint *Point
	// IsLTR is false for right-to-left layouts, where the first entry is drawn on the right.
	IsLTR bool
}

func (s *RendererViewState) SetMarkerTouchPoint(p Point) {
	s.MarkerTouchPoint = &p
}

func (s *RendererViewState) ClearMarkerTouchPoint() {
	s.MarkerTouchPoint = nil
}

func (s *RendererViewState) HasMarkerTouchPoint() bool {
	return s.MarkerTouchPoint != nil
}
