// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"image"
	"math"
	"maycharts/canvas"
	"maycharts/canvas/giocanvas"
	"maycharts/stockval"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
)

// Zoom step of one mouse wheel notch.
const wheelZoomStep = 1.1

// Drags older than this are not used for the fling velocity.
const maxFlingAge = 100 * time.Millisecond

// ChartWidget shows a ChartView in a gio window and feeds pointer events into it.
type ChartWidget struct {
	View *ChartView

	sizes    *canvas.MeasureCache
	pressed  bool
	lastPos  f32.Point
	lastTime time.Duration
	velocity float64
}

func NewChartWidget(v *ChartView) *ChartWidget {
	return &ChartWidget{View: v, sizes: canvas.NewMeasureCache()}
}

func (w *ChartWidget) handleInput(gtx layout.Context) {
	for _, gtxEvent := range gtx.Events(w) {
		e, ok := gtxEvent.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Type {
		case pointer.Press:
			w.pressed = true
			w.lastPos = e.Position
			w.lastTime = e.Time
			w.velocity = 0
			w.View.OnTouchDown()
		case pointer.Drag:
			dx := float64(e.Position.X - w.lastPos.X)
			if dt := e.Time - w.lastTime; dt > 0 {
				w.velocity = dx / dt.Seconds()
			}
			w.lastPos = e.Position
			w.lastTime = e.Time
			w.View.OnDragDelta(dx)
		case pointer.Release:
			if w.pressed && e.Time-w.lastTime < maxFlingAge && w.velocity != 0 {
				w.View.OnFlingStart(w.velocity)
			} else {
				w.View.OnRelease()
			}
			w.pressed = false
		case pointer.Cancel:
			w.pressed = false
			w.View.OnRelease()
		case pointer.Move:
			w.View.SetMarkerTouchPoint(stockval.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)})
		case pointer.Leave:
			w.View.ClearMarkerTouchPoint()
		case pointer.Scroll:
			if m, ok := wheelZoomMultiplier(e.Scroll.Y); ok {
				w.View.OnPinch(float64(e.Position.X), m)
			}
		}
	}
}

// wheelZoomMultiplier maps a vertical wheel step to a zoom step.
// Horizontal scrolling does not zoom.
func wheelZoomMultiplier(scrollY float32) (float64, bool) {
	switch {
	case scrollY < 0:
		return wheelZoomStep, true
	case scrollY > 0:
		return 1 / wheelZoomStep, true
	}
	return 0, false
}

// Layout draws the chart into the full constraints of gtx.
func (w *ChartWidget) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	w.handleInput(gtx)

	size := gtx.Constraints.Max
	w.View.SetContentBounds(stockval.Bounds{Right: float64(size.X), Bottom: float64(size.Y)})
	area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   w,
		Types: pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Leave | pointer.Scroll | pointer.Cancel,
		ScrollBounds: image.Rectangle{
			Min: image.Point{Y: math.MinInt32},
			Max: image.Point{Y: math.MaxInt32},
		},
	}.Add(gtx.Ops)
	c := giocanvas.New(gtx, th)
	c.Sizes = w.sizes
	if w.View.Draw(c, gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	area.Pop()
	return layout.Dimensions{Size: size}
}
