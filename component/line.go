// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package component

import (
	"image/color"
	"maycharts/canvas"
	"maycharts/stockval"
)

// LineComponent is a line of a given thickness. It is used for axis lines,
// ticks, guidelines and candle parts. A line with transparent Color and a
// visible stroke is drawn hollow.
type LineComponent struct {
	Color       color.NRGBA
	Thickness   float64
	StrokeColor color.NRGBA
	StrokeWidth float64
	Shape       Shape
}

func NewLineComponent(c color.NRGBA, thickness float64) LineComponent {
	return LineComponent{Color: c, Thickness: thickness}
}

func (l LineComponent) shape() ShapeComponent {
	return ShapeComponent{Color: l.Color, Shape: l.Shape, StrokeColor: l.StrokeColor, StrokeWidth: l.StrokeWidth}
}

func (l LineComponent) hasStroke() bool {
	return l.StrokeWidth > 0 && !canvas.IsTransparent(l.StrokeColor)
}

// IsVisible reports whether drawing the line paints anything.
func (l LineComponent) IsVisible() bool {
	return l.Thickness > 0 && (!canvas.IsTransparent(l.Color) || l.hasStroke())
}

// VisibleColor returns the fill color, or the stroke color of a hollow line.
func (l LineComponent) VisibleColor() color.NRGBA {
	if canvas.IsTransparent(l.Color) && l.hasStroke() {
		return l.StrokeColor
	}
	return l.Color
}

// CopyWithColor returns a copy using c for fill and stroke.
// A transparent fill or stroke stays transparent.
func (l LineComponent) CopyWithColor(c color.NRGBA) LineComponent {
	if !canvas.IsTransparent(l.Color) {
		l.Color = c
	}
	if !canvas.IsTransparent(l.StrokeColor) {
		l.StrokeColor = c
	}
	return l
}

func (l LineComponent) Draw(c canvas.Canvas, b stockval.Bounds) {
	l.shape().Draw(c, b)
}

// DrawVertical draws the line from top to bottom centered on x.
// The thickness is multiplied by thicknessScale, e.g. to follow zoom.
func (l LineComponent) DrawVertical(c canvas.Canvas, top, bottom, x, thicknessScale float64) {
	half := l.Thickness * thicknessScale / 2
	l.Draw(c, stockval.Bounds{Left: x - half, Top: top, Right: x + half, Bottom: bottom})
}

// DrawHorizontal draws the line from left to right centered on y.
func (l LineComponent) DrawHorizontal(c canvas.Canvas, left, right, y float64) {
	half := l.Thickness / 2
	l.Draw(c, stockval.Bounds{Left: left, Top: y - half, Right: right, Bottom: y + half})
}
