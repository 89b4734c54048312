// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"image/color"
	"maycharts/canvas"
	"maycharts/stockval"
)

type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpLine
	OpPolyline
	OpText
	OpPushClip
	OpPopClip
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Bounds stockval.Bounds
	From   stockval.Point
	To     stockval.Point
	Points []stockval.Point
	Text   string
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// Canvas records all drawing calls. Text is measured with a fixed
// advance of half the text size per byte, the height is the text size.
type Canvas struct {
	Ops   []Op
	depth int
}

var _ canvas.Canvas = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) MeasureText(s string, size float64) (w, h float64) {
	if len(s) == 0 {
		return 0, 0
	}
	return float64(len(s)) * size / 2, size
}

func (c *Canvas) FillRect(r stockval.Bounds, radius float64, col color.NRGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpFillRect, Bounds: r, Radius: radius, Color: col})
}

func (c *Canvas) StrokeRect(r stockval.Bounds, radius float64, width float64, col color.NRGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpStrokeRect, Bounds: r, Radius: radius, Width: width, Color: col})
}

func (c *Canvas) DrawLine(from, to stockval.Point, width float64, col color.NRGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpLine, From: from, To: to, Width: width, Color: col})
}

func (c *Canvas) DrawPolyline(points []stockval.Point, width float64, col color.NRGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpPolyline, Points: append([]stockval.Point(nil), points...), Width: width, Color: col})
}

func (c *Canvas) DrawText(s string, pos stockval.Point, size float64, col color.NRGBA) {
	c.Ops = append(c.Ops, Op{Kind: OpText, Text: s, From: pos, Width: size, Color: col})
}

func (c *Canvas) PushClip(r stockval.Bounds) {
	c.depth++
	c.Ops = append(c.Ops, Op{Kind: OpPushClip, Bounds: r})
}

func (c *Canvas) PopClip() {
	c.depth--
	c.Ops = append(c.Ops, Op{Kind: OpPopClip})
}

// ClipDepth is the number of clip areas not yet popped.
func (c *Canvas) ClipDepth() int {
	return c.depth
}

func (c *Canvas) Reset() {
	c.Ops = nil
	c.depth = 0
}

func (c *Canvas) OpsOfKind(kind OpKind) []Op {
	var ops []Op
	for _, o := range c.Ops {
		if o.Kind == kind {
			ops = append(ops, o)
		}
	}
	return ops
}

func (c *Canvas) Texts() []string {
	var texts []string
	for _, o := range c.OpsOfKind(OpText) {
		texts = append(texts, o.Text)
	}
	return texts
}

// IndexOf returns the index of the first recorded op matching f, or -1.
func (c *Canvas) IndexOf(f func(o Op) bool) int {
	for i, o := range c.Ops {
		if f(o) {
			return i
		}
	}
	return -1
}
