// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package component contains the drawable building blocks of a chart:
// filled shapes, lines with optional strokes, overlays and text labels.
// All of them are immutable values, variants are created by copying.
package component

import (
	"image/color"
	"maycharts/canvas"
	"maycharts/stockval"
)

type Component interface {
	Draw(c canvas.Canvas, b stockval.Bounds)
}

// Shape of a component outline. The zero value is a sharp rectangle.
type Shape struct {
	CornerRadius float64
	// Pill rounds the shorter side completely, CornerRadius is ignored.
	Pill bool
}

var (
	RectShape = Shape{}
	PillShape = Shape{Pill: true}
)

func RoundedShape(radius float64) Shape {
	return Shape{CornerRadius: radius}
}

func (s Shape) radius(b stockval.Bounds) float64 {
	if s.Pill {
		return min(b.Width(), b.Height()) / 2
	}
	return s.CornerRadius
}

type ShapeComponent struct {
	Color       color.NRGBA
	Shape       Shape
	StrokeColor color.NRGBA
	StrokeWidth float64
}

func (s ShapeComponent) Draw(c canvas.Canvas, b stockval.Bounds) {
	if b.IsEmpty() {
		return
	}
	r := s.Shape.radius(b)
	c.FillRect(b, r, s.Color)
	if s.StrokeWidth > 0 {
		c.StrokeRect(b, r, s.StrokeWidth, s.StrokeColor)
	}
}

// OverlayingComponent draws Inner on top of Outer, inset by InnerPadding on all sides.
type OverlayingComponent struct {
	Outer        Component
	Inner        Component
	InnerPadding float64
}

func (o OverlayingComponent) Draw(c canvas.Canvas, b stockval.Bounds) {
	if o.Outer != nil {
		o.Outer.Draw(c, b)
	}
	if o.Inner != nil {
		p := o.InnerPadding
		o.Inner.Draw(c, b.Inset(p, p, p, p))
	}
}
