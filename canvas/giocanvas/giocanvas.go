// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package giocanvas records chart drawing as Gio operations.
package giocanvas

import (
	"image"
	"image/color"
	"math"
	"maycharts/canvas"
	"maycharts/stockval"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	// The builtin gio stroke has a lot of issues, one being that horizontal and vertical lines
	// may have different thickness, even if the same width is specified.
	// We use the "x/stroke" extension instead.
	"gioui.org/x/stroke"
)

type Canvas struct {
	gtx   layout.Context
	th    *material.Theme
	clips []clip.Stack
	// Sizes caches text measurements across frames, if set.
	Sizes *canvas.MeasureCache
}

var _ canvas.Canvas = (*Canvas)(nil)

// New creates a canvas adding operations to gtx.Ops.
// Text is only drawn and measured if th is not nil.
func New(gtx layout.Context, th *material.Theme) *Canvas {
	return &Canvas{gtx: gtx, th: th}
}

func pt(p stockval.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func (c *Canvas) ops() *op.Ops {
	return c.gtx.Ops
}

func (c *Canvas) textSize(size float64) unit.Sp {
	if c.gtx.Metric.PxPerSp > 0 {
		return unit.Sp(size / float64(c.gtx.Metric.PxPerSp))
	}
	return unit.Sp(size)
}

func (c *Canvas) recordLabel(s string, size float64, col color.NRGBA) (op.CallOp, image.Point) {
	gtx := c.gtx
	gtx.Constraints.Min = image.Point{}
	if gtx.Constraints.Max == (image.Point{}) {
		gtx.Constraints.Max = image.Pt(math.MaxInt32, math.MaxInt32)
	}
	macro := op.Record(gtx.Ops)
	lbl := material.Label(c.th, c.textSize(size), s)
	lbl.Color = col
	lbl.Alignment = text.Start
	dims := lbl.Layout(gtx)
	return macro.Stop(), dims.Size
}

func (c *Canvas) MeasureText(s string, size float64) (w, h float64) {
	if c.th == nil || len(s) == 0 {
		return 0, 0
	}
	measure := func() (float64, float64) {
		_, textSize := c.recordLabel(s, size, color.NRGBA{})
		return float64(textSize.X), float64(textSize.Y)
	}
	if c.Sizes != nil {
		return c.Sizes.Measure(s, size, measure)
	}
	return measure()
}

func (c *Canvas) FillRect(r stockval.Bounds, radius float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || r.Width() <= 0 {
		return
	}
	if radius > 0 {
		rect := image.Rect(int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom)))
		radius = min(radius, r.Width()/2, r.Height()/2)
		paint.FillShape(c.ops(), col, clip.UniformRRect(rect, int(radius)).Op(c.ops()))
		return
	}
	// clip.Rect has integer resolution and will lead to jumping of rectangles during scrolling.
	// Therefore, rectangles are drawn as "thick lines" with a flat cap.
	top, bottom := r.Top, r.Bottom
	if math.Round(top) == math.Round(bottom) {
		bottom++ // Stroke does not draw zero length lines, see https://github.com/andybalholm/stroke/issues/3
	}
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(f32.Pt(float32(r.CenterX()), float32(top))),
		stroke.LineTo(f32.Pt(float32(r.CenterX()), float32(bottom))),
	}
	paint.FillShape(c.ops(), col, stroke.Stroke{Path: path, Width: float32(r.Width()), Cap: stroke.FlatCap}.Op(c.ops()))
}

func (c *Canvas) StrokeRect(r stockval.Bounds, radius float64, width float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || width <= 0 {
		return
	}
	if radius > 0 {
		rect := image.Rect(int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom)))
		radius = min(radius, r.Width()/2, r.Height()/2)
		rr := clip.UniformRRect(rect, int(radius))
		paint.FillShape(c.ops(), col, clip.Stroke{Path: rr.Path(c.ops()), Width: float32(width)}.Op())
		return
	}
	tl := f32.Pt(float32(r.Left), float32(r.Top))
	tr := f32.Pt(float32(r.Right), float32(r.Top))
	br := f32.Pt(float32(r.Right), float32(r.Bottom))
	bl := f32.Pt(float32(r.Left), float32(r.Bottom))
	var path stroke.Path
	path.Segments = []stroke.Segment{
		stroke.MoveTo(tl), stroke.LineTo(tr),
		stroke.MoveTo(tr), stroke.LineTo(br),
		stroke.MoveTo(br), stroke.LineTo(bl),
		stroke.MoveTo(bl), stroke.LineTo(tl),
	}
	// Square caps close the corners.
	paint.FillShape(c.ops(), col, stroke.Stroke{Path: path, Width: float32(width), Cap: stroke.SquareCap}.Op(c.ops()))
}

func (c *Canvas) DrawLine(from, to stockval.Point, width float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || width <= 0 || from == to {
		return
	}
	var path stroke.Path
	path.Segments = []stroke.Segment{stroke.MoveTo(pt(from)), stroke.LineTo(pt(to))}
	paint.FillShape(c.ops(), col, stroke.Stroke{Path: path, Width: float32(width), Cap: stroke.FlatCap}.Op(c.ops()))
}

func (c *Canvas) DrawPolyline(points []stockval.Point, width float64, col color.NRGBA) {
	if len(points) < 2 || canvas.IsTransparent(col) || width <= 0 {
		return
	}
	var path stroke.Path
	path.Segments = make([]stroke.Segment, 0, len(points))
	path.Segments = append(path.Segments, stroke.MoveTo(pt(points[0])))
	for _, p := range points[1:] {
		path.Segments = append(path.Segments, stroke.LineTo(pt(p)))
	}
	// Draw all data with a single stroke.
	paint.FillShape(c.ops(), col, stroke.Stroke{Path: path, Width: float32(width), Join: stroke.RoundJoin}.Op(c.ops()))
}

func (c *Canvas) DrawText(s string, pos stockval.Point, size float64, col color.NRGBA) {
	if c.th == nil || len(s) == 0 || canvas.IsTransparent(col) {
		return
	}
	// Record drawing to pre-calculate text size.
	call, _ := c.recordLabel(s, size, col)
	stack := op.Offset(image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y)))).Push(c.ops())
	// Run recorded drawing.
	call.Add(c.ops())
	stack.Pop()
}

func (c *Canvas) PushClip(r stockval.Bounds) {
	rect := image.Rect(int(math.Floor(r.Left)), int(math.Floor(r.Top)), int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)))
	c.clips = append(c.clips, clip.Rect(rect).Push(c.ops()))
}

func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		return
	}
	last := len(c.clips) - 1
	c.clips[last].Pop()
	c.clips = c.clips[:last]
}

// Depth returns the number of clip areas currently pushed.
func (c *Canvas) Depth() int {
	return len(c.clips)
}
