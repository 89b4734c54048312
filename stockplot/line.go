// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"math"
	"maycharts/canvas"
	"maycharts/component"
	"maycharts/marker"
	"maycharts/stockval"
)

const DefaultLineSegmentWidth = 12.0

// LineDataSet draws the entries as a single line with optional points.
type LineDataSet struct {
	Base
	entries []stockval.LineEntry
	Line    component.LineComponent
	// Point is drawn on every entry if set.
	Point     component.Component
	PointSize float64
	// Reused between frames.
	points []stockval.Point
}

var _ DataSet = (*LineDataSet)(nil)

func NewLineDataSet(line component.LineComponent, entries []stockval.LineEntry) *LineDataSet {
	return &LineDataSet{
		Base:    newBase(stockval.SegmentProperties{CellWidth: DefaultLineSegmentWidth}),
		entries: entries,
		Line:    line,
	}
}

func (d *LineDataSet) Entries() []stockval.LineEntry {
	return d.entries
}

func (d *LineDataSet) SetEntries(entries []stockval.LineEntry) {
	d.entries = entries
	d.NotifyUpdate()
}

func (d *LineDataSet) SetToAxisModel(m *stockval.AxisModel) {
	count := len(d.entries)
	if count == 0 {
		return
	}
	m.MinX = d.entries[0].X
	m.MaxX = d.entries[count-1].X
	m.XStep = xStep(func(i int) float64 { return d.entries[i].X }, count)
	m.MinY = math.Inf(1)
	m.MaxY = math.Inf(-1)
	for _, e := range d.entries {
		m.MinY = math.Min(m.MinY, e.Y)
		m.MaxY = math.Max(m.MaxY, e.Y)
	}
}

func (d *LineDataSet) SegmentProperties() stockval.SegmentProperties {
	return d.segmentProperties(len(d.entries))
}

func (d *LineDataSet) MaxScrollAmount() float64 {
	return d.maxScrollAmount(len(d.entries))
}

func (d *LineDataSet) Draw(c canvas.Canvas, state *stockval.RendererViewState, segment stockval.SegmentProperties, mk marker.Marker) []marker.MarkedEntry {
	count := len(d.entries)
	if count == 0 || d.bounds.IsEmpty() {
		return nil
	}
	var model stockval.AxisModel
	d.SetToAxisModel(&model)
	proj := stockval.NewProjection(&model, d.bounds)
	first, last := d.visibleRange(state, segment, count)

	// Reuse point buffer from previous frame.
	points := d.points[:0]
	pxPosI, pyPosI := math.MinInt, math.MinInt
	for i := first; i <= last; i++ {
		xPos := d.entryX(state, segment, i)
		yPos := proj.GetYpos(d.entries[i].Y)
		// Performance: We only draw a line if we hit a different pixel.
		if int(xPos) == pxPosI && int(yPos) == pyPosI {
			continue
		}
		pxPosI, pyPosI = int(xPos), int(yPos)
		points = append(points, stockval.Point{X: xPos, Y: yPos})
	}
	d.points = points

	// Only draw within the plot area.
	c.PushClip(d.bounds)
	if len(points) > 1 {
		c.DrawPolyline(points, d.Line.Thickness, d.Line.VisibleColor())
	}
	if d.Point != nil && d.PointSize > 0 {
		half := d.PointSize / 2
		for _, p := range points {
			d.Point.Draw(c, stockval.Bounds{Left: p.X - half, Top: p.Y - half, Right: p.X + half, Bottom: p.Y + half})
		}
	}
	c.PopClip()

	if mk == nil {
		return nil
	}
	i := d.markerIndex(state, segment, count)
	if i < 0 {
		return nil
	}
	return []marker.MarkedEntry{{
		Index:    i,
		Location: stockval.Point{X: d.entryX(state, segment, i), Y: proj.GetYpos(d.entries[i].Y)},
		Value:    d.entries[i].Y,
		Color:    d.Line.VisibleColor(),
	}}
}
