// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package component

import (
	"image/color"
	"maycharts/canvas"
	"maycharts/stockval"
)

type HorizontalPosition int

const (
	// Text starts at the anchor and extends to the right.
	HorizontalStart HorizontalPosition = iota
	HorizontalCenter
	// Text ends at the anchor.
	HorizontalEnd
)

type VerticalPosition int

const (
	VerticalTop VerticalPosition = iota
	VerticalCenter
	VerticalBottom
)

// TextComponent draws a single line label with an optional background.
type TextComponent struct {
	Color      color.NRGBA
	Size       float64
	Background Component
	// Padding between text and the edge of the background.
	Padding stockval.Point
}

// Measure returns the size of the label including padding.
func (t *TextComponent) Measure(m canvas.Measurer, s string) (w, h float64) {
	if len(s) == 0 {
		return 0, 0
	}
	w, h = m.MeasureText(s, t.Size)
	return w + 2*t.Padding.X, h + 2*t.Padding.Y
}

// Draw places the label relative to the anchor point and returns the bounds it covers.
func (t *TextComponent) Draw(c canvas.Canvas, s string, anchor stockval.Point, hp HorizontalPosition, vp VerticalPosition) stockval.Bounds {
	w, h := t.Measure(c, s)
	if w == 0 {
		return stockval.Bounds{Left: anchor.X, Top: anchor.Y, Right: anchor.X, Bottom: anchor.Y}
	}
	b := stockval.Bounds{Left: anchor.X, Top: anchor.Y}
	switch hp {
	case HorizontalCenter:
		b.Left -= w / 2
	case HorizontalEnd:
		b.Left -= w
	}
	switch vp {
	case VerticalCenter:
		b.Top -= h / 2
	case VerticalBottom:
		b.Top -= h
	}
	b.Right = b.Left + w
	b.Bottom = b.Top + h
	if t.Background != nil {
		t.Background.Draw(c, b)
	}
	c.DrawText(s, stockval.Point{X: b.Left + t.Padding.X, Y: b.Top + t.Padding.Y}, t.Size, t.Color)
	return b
}
