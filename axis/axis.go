// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package axis contains the axis renderers of a chart and the manager
// drawing them in the right order around the data.
package axis

import (
	"maycharts/canvas"
	"maycharts/stockval"
)

type Position int

const (
	PositionStart Position = iota
	PositionTop
	PositionEnd
	PositionBottom
	numPositions
)

func (p Position) String() string {
	switch p {
	case PositionStart:
		return "start"
	case PositionTop:
		return "top"
	case PositionEnd:
		return "end"
	case PositionBottom:
		return "bottom"
	default:
		panic("invalid axis position")
	}
}

func (p Position) IsVertical() bool {
	return p == PositionStart || p == PositionEnd
}

// IsLeft reports whether a vertical axis is placed on the left side.
// In right-to-left layouts, start and end are swapped.
func (p Position) IsLeft(isLTR bool) bool {
	return (p == PositionStart) == isLTR
}

// DrawContext contains everything an axis needs to draw itself during one frame.
type DrawContext struct {
	Canvas canvas.Canvas
	// AxisBounds are set by the manager for each axis.
	AxisBounds stockval.Bounds
	DataBounds stockval.Bounds
	Model      *stockval.AxisModel
	Segment    stockval.SegmentProperties
	State      *stockval.RendererViewState
	IsLTR      bool
}

// Renderer is an axis at a fixed position.
type Renderer interface {
	Position() Position
	// RequiredSpace returns the width of a vertical axis or the height of a horizontal
	// axis. available is the length along the axis.
	RequiredSpace(m canvas.Measurer, model *stockval.AxisModel, available float64) float64
	// Draw is called twice per frame: with background set before the data is drawn,
	// and without afterwards.
	Draw(dc DrawContext, background bool)
}
