// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"maycharts/axis"
	"maycharts/canvas"
	"maycharts/chartlog"
	"maycharts/marker"
	"maycharts/stockval"
)

// VirtualLayout divides the content bounds between axes, marker and data.
type VirtualLayout struct {
	IsLTR bool
}

func requiredSpace(r axis.Renderer, m canvas.Measurer, model *stockval.AxisModel, available float64) float64 {
	if r == nil {
		return 0
	}
	return max(r.RequiredSpace(m, model, available), 0)
}

// SetBounds computes the data bounds within content and stores them in the
// data set. The bounds of all axes are stored in mgr.
//
// Vertical axes are measured first, horizontal axes are measured for the
// remaining width. If the axes of one orientation need more space than available,
// they get no space at all. The result never has a negative size and only
// depends on the arguments.
func (l *VirtualLayout) SetBounds(content stockval.Bounds, ds DataSet, model *stockval.AxisModel, mgr *axis.Manager,
	mk marker.Marker, m canvas.Measurer) stockval.Bounds {
	content = content.Normalized()
	width := content.Width()
	height := content.Height()

	var markerTop, markerBottom float64
	if p, ok := mk.(marker.InsetProvider); ok {
		markerTop, markerBottom = p.Insets(m, model)
		markerTop, markerBottom = max(markerTop, 0), max(markerBottom, 0)
		if markerTop+markerBottom > height {
			chartlog.Logger().Debug("no space for marker", "height", height)
			markerTop, markerBottom = 0, 0
		}
	}
	available := height - markerTop - markerBottom

	start := requiredSpace(mgr.StartAxis, m, model, available)
	end := requiredSpace(mgr.EndAxis, m, model, available)
	if start+end > width {
		chartlog.Logger().Debug("no space for vertical axes", "width", width, "start", start, "end", end)
		start, end = 0, 0
	}
	dataWidth := width - start - end

	top := requiredSpace(mgr.TopAxis, m, model, dataWidth)
	bottom := requiredSpace(mgr.BottomAxis, m, model, dataWidth)
	if top+bottom > available {
		chartlog.Logger().Debug("no space for horizontal axes", "height", available, "top", top, "bottom", bottom)
		top, bottom = 0, 0
	}

	left, right := start, end
	if !l.IsLTR {
		left, right = end, start
	}
	data := stockval.Bounds{
		Left:   content.Left + left,
		Top:    content.Top + top + markerTop,
		Right:  content.Right - right,
		Bottom: content.Bottom - bottom - markerBottom,
	}

	startBounds := stockval.Bounds{Left: content.Left, Top: data.Top, Right: data.Left, Bottom: data.Bottom}
	endBounds := stockval.Bounds{Left: data.Right, Top: data.Top, Right: content.Right, Bottom: data.Bottom}
	if !l.IsLTR {
		startBounds, endBounds = endBounds, startBounds
	}
	mgr.SetAxisBounds(axis.PositionStart, startBounds)
	mgr.SetAxisBounds(axis.PositionEnd, endBounds)
	mgr.SetAxisBounds(axis.PositionTop, stockval.Bounds{Left: data.Left, Top: content.Top, Right: data.Right, Bottom: content.Top + top})
	mgr.SetAxisBounds(axis.PositionBottom, stockval.Bounds{Left: data.Left, Top: data.Bottom, Right: data.Right, Bottom: data.Bottom + bottom})

	if ds != nil {
		ds.SetBounds(data)
	}
	return data
}
