// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package canvas defines the drawing primitives the chart core calls into.
// The core decides where and in which order things are drawn, a backend decides how.
package canvas

import (
	"image/color"
	"maycharts/stockval"
)

type Measurer interface {
	// MeasureText returns width and height of s at the given text size in pixels.
	MeasureText(s string, size float64) (w, h float64)
}

type Canvas interface {
	Measurer
	// FillRect fills r. A positive radius rounds the corners.
	FillRect(r stockval.Bounds, radius float64, c color.NRGBA)
	// StrokeRect draws the outline of r, centered on its edges.
	StrokeRect(r stockval.Bounds, radius float64, width float64, c color.NRGBA)
	DrawLine(from, to stockval.Point, width float64, c color.NRGBA)
	DrawPolyline(points []stockval.Point, width float64, c color.NRGBA)
	// DrawText draws s with its top left corner at pos.
	DrawText(s string, pos stockval.Point, size float64, c color.NRGBA)
	// PushClip restricts drawing to r until the matching PopClip.
	PushClip(r stockval.Bounds)
	PopClip()
}

func IsTransparent(c color.NRGBA) bool {
	return c.A == 0
}
