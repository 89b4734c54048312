// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package marker highlights the entries below the touch point of a chart.
package marker

import (
	"image/color"
	"maycharts/canvas"
	"maycharts/component"
	"maycharts/formatter"
	"maycharts/stockval"
	"strings"
)

// MarkedEntry is a data entry selected by the marker touch point.
type MarkedEntry struct {
	Index int
	// Pixel position of the entry value.
	Location stockval.Point
	Value    float64
	Color    color.NRGBA
}

type Marker interface {
	// Draw is called after everything else within the data bounds.
	Draw(c canvas.Canvas, bounds stockval.Bounds, entries []MarkedEntry, model *stockval.AxisModel)
}

// InsetProvider is implemented by markers which need space outside the data bounds.
type InsetProvider interface {
	Insets(m canvas.Measurer, model *stockval.AxisModel) (top, bottom float64)
}

// Default draws a vertical guideline through the marked entries,
// a point on each entry and a label above the data bounds.
type Default struct {
	Label     *component.TextComponent
	Guideline *component.LineComponent
	Indicator component.Component
	// IndicatorSize is the diameter of the indicator.
	IndicatorSize float64
	// LabelMargin between label and data bounds.
	LabelMargin    float64
	ValueFormatter formatter.ValueFormatter
}

var _ InsetProvider = (*Default)(nil)

func NewDefault(textColor, bgColor, lineColor color.NRGBA, textSize float64) *Default {
	guideline := component.NewLineComponent(lineColor, 1)
	return &Default{
		Label: &component.TextComponent{
			Color:      textColor,
			Size:       textSize,
			Background: component.ShapeComponent{Color: bgColor, Shape: component.RoundedShape(4)},
			Padding:    stockval.Point{X: 6, Y: 2},
		},
		Guideline:      &guideline,
		IndicatorSize:  8,
		LabelMargin:    2,
		ValueFormatter: formatter.DefaultValueFormatter{},
	}
}

func (d *Default) labelText(entries []MarkedEntry, model *stockval.AxisModel) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.ValueFormatter.FormatValue(e.Value, model))
	}
	return sb.String()
}

func (d *Default) Insets(m canvas.Measurer, model *stockval.AxisModel) (top, bottom float64) {
	if d.Label == nil {
		return 0, 0
	}
	// The label height does not depend on the value.
	_, h := d.Label.Measure(m, "0")
	return h + d.LabelMargin, 0
}

func (d *Default) Draw(c canvas.Canvas, bounds stockval.Bounds, entries []MarkedEntry, model *stockval.AxisModel) {
	if len(entries) == 0 {
		return
	}
	x := entries[0].Location.X
	if d.Guideline != nil {
		d.Guideline.DrawVertical(c, bounds.Top, bounds.Bottom, x, 1)
	}
	if d.IndicatorSize > 0 {
		half := d.IndicatorSize / 2
		for _, e := range entries {
			b := stockval.Bounds{Left: e.Location.X - half, Top: e.Location.Y - half, Right: e.Location.X + half, Bottom: e.Location.Y + half}
			if d.Indicator != nil {
				d.Indicator.Draw(c, b)
			} else {
				component.ShapeComponent{Color: e.Color, Shape: component.PillShape}.Draw(c, b)
			}
		}
	}
	if d.Label == nil {
		return
	}
	text := d.labelText(entries, model)
	w, _ := d.Label.Measure(c, text)
	// Keep the label horizontally within the data bounds.
	center := stockval.Clamp(x, bounds.Left+w/2, max(bounds.Right-w/2, bounds.Left+w/2))
	d.Label.Draw(c, text, stockval.Point{X: center, Y: bounds.Top - d.LabelMargin}, component.HorizontalCenter, component.VerticalBottom)
}
