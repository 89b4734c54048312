// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package stockviz contains the chart view, which connects data set, axes,
// marker and gestures and draws them in the right order.
package stockviz

import (
	"maycharts/axis"
	"maycharts/canvas"
	"maycharts/chartlog"
	"maycharts/formatter"
	"maycharts/gesture"
	"maycharts/marker"
	"maycharts/scroll"
	"maycharts/stockplot"
	"maycharts/stockval"
	"maycharts/zoom"
	"time"
)

// ChartView owns the interaction state of one chart. All functions are called
// from the UI thread, either from a gesture callback or during Draw.
type ChartView struct {
	content    stockval.Bounds
	dataBounds stockval.Bounds
	model      stockval.AxisModel
	scroll     *scroll.Handler
	gesture    *gesture.Handler
	layout     stockplot.VirtualLayout
	axes       axis.Manager
	state      stockval.RendererViewState
	dataSet    stockplot.DataSet
	marker     marker.Marker

	zoomEnabled bool
	layoutDirty bool
	// measurer of the last frame, used for layouts outside of Draw.
	measurer canvas.Measurer
	// RequestRedraw is called when a data set requested an update, if set.
	RequestRedraw func()
}

var _ stockplot.UpdateRequestListener = (*ChartView)(nil)

func NewChartView() *ChartView {
	v := &ChartView{
		layout:      stockplot.VirtualLayout{IsLTR: true},
		state:       stockval.RendererViewState{IsLTR: true},
		zoomEnabled: true,
		layoutDirty: true,
	}
	v.scroll = scroll.NewHandler(v.onScroll)
	v.gesture = gesture.NewHandler(v.scroll, chartPincher{v})
	return v
}

func (v *ChartView) onScroll(s float64) {
	v.state.HorizontalScroll = s
	v.state.ClearMarkerTouchPoint()
}

func (v *ChartView) OnUpdateRequested() {
	v.layoutDirty = true
	if v.RequestRedraw != nil {
		v.RequestRedraw()
	}
}

func (v *ChartView) DataSet() stockplot.DataSet {
	return v.dataSet
}

// SetDataSet replaces the data set. The view stops listening to the old data set
// before the new one is attached. Passing nil removes the data set.
func (v *ChartView) SetDataSet(ds stockplot.DataSet) {
	if v.dataSet != nil {
		v.dataSet.RemoveListener(v)
	}
	v.dataSet = ds
	v.gesture.OnTouchDown()
	v.state.ClearMarkerTouchPoint()
	if ds != nil {
		ds.AddListener(v)
	}
	chartlog.Logger().Debug("data set changed", "empty", ds == nil)
	v.recomputeBounds()
}

// recomputeBounds runs the layout with the current model and updates the scroll range.
// Before the first frame there is nothing to measure text with, and the layout
// is postponed to Draw.
func (v *ChartView) recomputeBounds() {
	v.layoutDirty = true
	if v.dataSet == nil || v.measurer == nil {
		return
	}
	var model stockval.AxisModel
	v.dataSet.SetToAxisModel(&model)
	v.model = model
	v.dataBounds = v.layout.SetBounds(v.content, v.dataSet, &v.model, &v.axes, v.marker, v.measurer)
	v.layoutDirty = false
	v.scroll.UpdateMaxScroll(v.dataSet.MaxScrollAmount())
}

func (v *ChartView) SetStartAxis(r axis.Renderer) {
	v.setAxis(axis.PositionStart, r)
}

func (v *ChartView) SetTopAxis(r axis.Renderer) {
	v.setAxis(axis.PositionTop, r)
}

func (v *ChartView) SetEndAxis(r axis.Renderer) {
	v.setAxis(axis.PositionEnd, r)
}

func (v *ChartView) SetBottomAxis(r axis.Renderer) {
	v.setAxis(axis.PositionBottom, r)
}

func (v *ChartView) setAxis(p axis.Position, r axis.Renderer) {
	if r == nil {
		v.axes.ClearAxis(p)
	} else {
		if r.Position() != p {
			panic("axis renderer at wrong position: " + r.Position().String())
		}
		v.axes.SetAxis(r)
	}
	v.layoutDirty = true
}

func (v *ChartView) Axes() *axis.Manager {
	return &v.axes
}

// SetHorizontalValueFormatter changes the labels of the top and bottom axis,
// if they are default axes.
func (v *ChartView) SetHorizontalValueFormatter(f formatter.ValueFormatter) {
	for _, r := range []axis.Renderer{v.axes.TopAxis, v.axes.BottomAxis} {
		if a, ok := r.(*axis.Axis); ok {
			a.ValueFormatter = f
		}
	}
	v.layoutDirty = true
}

func (v *ChartView) SetMarker(mk marker.Marker) {
	v.marker = mk
	v.layoutDirty = true
}

func (v *ChartView) SetContentBounds(b stockval.Bounds) {
	if b == v.content {
		return
	}
	v.content = b
	v.layoutDirty = true
}

func (v *ChartView) ContentBounds() stockval.Bounds {
	return v.content
}

// DataBounds are the bounds of the data area computed by the last layout.
func (v *ChartView) DataBounds() stockval.Bounds {
	return v.dataBounds
}

func (v *ChartView) SetLayoutDirection(isLTR bool) {
	if v.state.IsLTR == isLTR {
		return
	}
	v.state.IsLTR = isLTR
	v.layout.IsLTR = isLTR
	v.layoutDirty = true
}

func (v *ChartView) IsLTR() bool {
	return v.state.IsLTR
}

func (v *ChartView) SetZoomEnabled(enabled bool) {
	v.zoomEnabled = enabled
}

// Zoom is the zoom factor of the data set.
func (v *ChartView) Zoom() float64 {
	if v.dataSet == nil {
		return zoom.DefaultZoom
	}
	return v.dataSet.Zoom()
}

func (v *ChartView) Scroll() *scroll.Handler {
	return v.scroll
}

func (v *ChartView) GestureState() gesture.State {
	return v.gesture.State()
}

func (v *ChartView) ViewState() stockval.RendererViewState {
	return v.state
}

func (v *ChartView) canScrollHorizontally() bool {
	return v.dataSet != nil && v.dataSet.IsHorizontalScrollEnabled()
}

func (v *ChartView) OnTouchDown() {
	v.gesture.OnTouchDown()
}

// OnDragDelta moves the content by dx pixels in screen direction.
func (v *ChartView) OnDragDelta(dx float64) {
	if !v.canScrollHorizontally() {
		return
	}
	if !v.state.IsLTR {
		dx = -dx
	}
	v.gesture.OnDragDelta(dx)
}

// OnFlingStart starts a fling with the release velocity in px/s in screen direction.
func (v *ChartView) OnFlingStart(velocity float64) {
	if !v.canScrollHorizontally() {
		v.gesture.OnRelease()
		return
	}
	if !v.state.IsLTR {
		velocity = -velocity
	}
	v.gesture.OnFlingStart(velocity)
}

func (v *ChartView) OnRelease() {
	v.gesture.OnRelease()
}

// OnPinch zooms by multiplier, keeping the content at screen position focalX in place.
func (v *ChartView) OnPinch(focalX, multiplier float64) bool {
	return v.gesture.OnPinch(focalX, multiplier)
}

func (v *ChartView) SetMarkerTouchPoint(p stockval.Point) {
	v.state.SetMarkerTouchPoint(p)
}

func (v *ChartView) ClearMarkerTouchPoint() {
	v.state.ClearMarkerTouchPoint()
}

type chartPincher struct {
	v *ChartView
}

func (p chartPincher) Pinch(focalX, multiplier float64) (float64, bool) {
	v := p.v
	if !v.zoomEnabled || v.dataSet == nil {
		return 0, false
	}
	x := v.dataBounds.MirrorX(focalX, v.state.IsLTR)
	delta, ok := zoom.Apply(v.dataSet, x, multiplier, v.dataBounds.Left, v.scroll.CurrentScroll())
	if !ok {
		return 0, false
	}
	v.scroll.UpdateMaxScroll(v.dataSet.MaxScrollAmount())
	return delta, true
}

// Draw draws one frame and returns true while a fling is running and further
// frames are needed.
//
// The order is fixed: fling offset, axis model, layout, segment properties,
// scroll range, axes behind the data, data, axes above the data and marker.
func (v *ChartView) Draw(c canvas.Canvas, now time.Time) bool {
	animating := v.gesture.ComputeScrollOffset(now)
	ds := v.dataSet
	if ds == nil {
		return false
	}

	v.measurer = c
	var model stockval.AxisModel
	ds.SetToAxisModel(&model)
	if v.layoutDirty || model != v.model {
		v.model = model
		v.dataBounds = v.layout.SetBounds(v.content, ds, &v.model, &v.axes, v.marker, c)
		v.layoutDirty = false
	}

	segment := ds.SegmentProperties()
	v.scroll.UpdateMaxScroll(ds.MaxScrollAmount())

	dc := axis.DrawContext{
		Canvas:     c,
		DataBounds: v.dataBounds,
		Model:      &v.model,
		Segment:    segment,
		State:      &v.state,
		IsLTR:      v.state.IsLTR,
	}
	v.axes.DrawBehindDataSet(dc)
	entries := ds.Draw(c, &v.state, segment, v.marker)
	v.axes.DrawAboveDataSet(dc, v.marker, entries)
	return animating
}
