// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package stockplot contains the data sets drawn by a chart and the layout
// dividing the chart area between data and axes.
package stockplot

import (
	"maycharts/canvas"
	"maycharts/marker"
	"maycharts/stockval"
	"maycharts/zoom"
	"slices"
)

// UpdateRequestListener is notified when a data set changed and the chart needs
// to recompute its layout and redraw.
type UpdateRequestListener interface {
	OnUpdateRequested()
}

// DataSet provides the data of a chart. The chart calls these functions once per frame.
type DataSet interface {
	zoom.State
	Bounds() stockval.Bounds
	SetBounds(b stockval.Bounds)
	// SetToAxisModel stores the value range of the data in m.
	SetToAxisModel(m *stockval.AxisModel)
	// SegmentProperties at the current zoom.
	SegmentProperties() stockval.SegmentProperties
	// MaxScrollAmount is the content width exceeding the bounds.
	MaxScrollAmount() float64
	IsHorizontalScrollEnabled() bool
	// Draw draws the data and returns the entries below the marker touch point,
	// if there is a marker and a touch point.
	Draw(c canvas.Canvas, state *stockval.RendererViewState, segment stockval.SegmentProperties, mk marker.Marker) []marker.MarkedEntry
	AddListener(l UpdateRequestListener)
	RemoveListener(l UpdateRequestListener)
}

// Base implements the bookkeeping shared by all data sets.
type Base struct {
	zoom.Controller
	bounds    stockval.Bounds
	segment   stockval.SegmentProperties
	listeners []UpdateRequestListener
	// HorizontalScrollDisabled fits all entries into the bounds instead of scrolling.
	HorizontalScrollDisabled bool
}

func newBase(segment stockval.SegmentProperties) Base {
	b := Base{segment: segment}
	b.Reset()
	return b
}

func (b *Base) Bounds() stockval.Bounds {
	return b.bounds
}

func (b *Base) SetBounds(bounds stockval.Bounds) {
	b.bounds = bounds
}

func (b *Base) IsHorizontalScrollEnabled() bool {
	return !b.HorizontalScrollDisabled
}

// SetSegment changes the unscaled cell and margin width of the entries.
func (b *Base) SetSegment(s stockval.SegmentProperties) {
	b.segment = s
	b.NotifyUpdate()
}

// segmentProperties returns the segment at the current zoom. If scrolling is
// disabled, count entries are fit into the bounds.
func (b *Base) segmentProperties(count int) stockval.SegmentProperties {
	if b.HorizontalScrollDisabled && count > 0 && b.segment.SegmentWidth() > stockval.NearZero {
		fit := b.bounds.Width() / (float64(count) * b.segment.SegmentWidth())
		return b.segment.Scaled(fit)
	}
	return b.segment.Scaled(b.Zoom())
}

func (b *Base) maxScrollAmount(count int) float64 {
	if b.HorizontalScrollDisabled {
		return 0
	}
	content := float64(count) * b.segmentProperties(count).SegmentWidth()
	return max(content-b.bounds.Width(), 0)
}

func (b *Base) AddListener(l UpdateRequestListener) {
	if l == nil || slices.Contains(b.listeners, l) {
		return
	}
	b.listeners = append(b.listeners, l)
}

func (b *Base) RemoveListener(l UpdateRequestListener) {
	b.listeners = slices.DeleteFunc(b.listeners, func(e UpdateRequestListener) bool { return e == l })
}

// NotifyUpdate requests a layout update and redraw from all listeners.
func (b *Base) NotifyUpdate() {
	for _, l := range b.listeners {
		l.OnUpdateRequested()
	}
}

// markerIndex returns the index of the entry below the marker touch point, or -1.
func (b *Base) markerIndex(state *stockval.RendererViewState, segment stockval.SegmentProperties, count int) int {
	if state == nil || state.MarkerTouchPoint == nil {
		return -1
	}
	p := *state.MarkerTouchPoint
	if !b.bounds.Contains(p.X, p.Y) {
		return -1
	}
	x := b.bounds.MirrorX(p.X, state.IsLTR)
	i := segment.IndexAt(x, b.bounds.Left, state.HorizontalScroll)
	if i < 0 || i >= count {
		return -1
	}
	return i
}

// entryX returns the horizontal center of entry i.
func (b *Base) entryX(state *stockval.RendererViewState, segment stockval.SegmentProperties, i int) float64 {
	return b.bounds.MirrorX(segment.CenterX(i, b.bounds.Left, state.HorizontalScroll), state.IsLTR)
}

// visibleRange returns the range of entries to draw, including one entry on each
// side so that lines leave the bounds.
func (b *Base) visibleRange(state *stockval.RendererViewState, segment stockval.SegmentProperties, count int) (first, last int) {
	first, last = segment.VisibleRange(b.bounds.Width(), state.HorizontalScroll, count)
	if last < first {
		return first, last
	}
	return max(first-1, 0), min(last+1, count-1)
}

// xStep returns the smallest positive distance between two X values, or 1.
func xStep(xs func(i int) float64, count int) float64 {
	step := 0.0
	for i := 1; i < count; i++ {
		d := xs(i) - xs(i-1)
		if d > stockval.NearZero && (step == 0 || d < step) {
			step = d
		}
	}
	if step == 0 {
		return 1
	}
	return step
}
