// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axis

import (
	"image/color"
	"math"
	"maycharts/canvas"
	"maycharts/component"
	"maycharts/formatter"
	"maycharts/stockval"
)

const (
	DefaultTickLength    = 4.0
	DefaultMaxLabelCount = 100
	// Vertical distance between two labels of a vertical axis, relative to the label height.
	labelDistanceFactor = 2.5
)

// Axis is the default Renderer. Vertical axes label rounded values of the
// value range, horizontal axes label the X values of the segments.
type Axis struct {
	position       Position
	Label          *component.TextComponent
	Line           *component.LineComponent
	Tick           *component.LineComponent
	Guideline      *component.LineComponent
	TickLength     float64
	ValueFormatter formatter.ValueFormatter
	// MaxLabelCount limits the labels of a vertical axis.
	MaxLabelCount int
	// LabelSpacing labels every n-th segment of a horizontal axis.
	// It is increased automatically if labels would overlap.
	LabelSpacing int
}

var _ Renderer = (*Axis)(nil)

// New creates an axis with lines, ticks and guidelines in the given colors.
func New(p Position, textColor, lineColor, guidelineColor color.NRGBA, textSize float64) *Axis {
	line := component.NewLineComponent(lineColor, 1)
	tick := component.NewLineComponent(lineColor, 1)
	guideline := component.NewLineComponent(guidelineColor, 1)
	return &Axis{
		position: p,
		Label: &component.TextComponent{
			Color:   textColor,
			Size:    textSize,
			Padding: stockval.Point{X: 4, Y: 2},
		},
		Line:           &line,
		Tick:           &tick,
		Guideline:      &guideline,
		TickLength:     DefaultTickLength,
		ValueFormatter: formatter.DefaultValueFormatter{},
		MaxLabelCount:  DefaultMaxLabelCount,
		LabelSpacing:   1,
	}
}

func (a *Axis) Position() Position {
	return a.position
}

func lineThickness(l *component.LineComponent) float64 {
	if l == nil {
		return 0
	}
	return l.Thickness
}

func (a *Axis) tickLength() float64 {
	if a.Tick == nil {
		return 0
	}
	return a.TickLength
}

func (a *Axis) format(v float64, model *stockval.AxisModel) string {
	if a.ValueFormatter == nil {
		return formatter.DefaultValueFormatter{}.FormatValue(v, model)
	}
	return a.ValueFormatter.FormatValue(v, model)
}

func (a *Axis) RequiredSpace(m canvas.Measurer, model *stockval.AxisModel, available float64) float64 {
	space := lineThickness(a.Line) + a.tickLength()
	if a.Label == nil {
		return space
	}
	if !a.position.IsVertical() {
		_, h := a.Label.Measure(m, "0")
		return space + h
	}
	var maxWidth float64
	for _, v := range a.labelValues(m, model, available) {
		w, _ := a.Label.Measure(m, a.format(v, model))
		maxWidth = max(maxWidth, w)
	}
	return space + maxWidth
}

// labelValues returns the values labeled on a vertical axis of the given length.
func (a *Axis) labelValues(m canvas.Measurer, model *stockval.AxisModel, length float64) []float64 {
	if length <= 0 {
		return nil
	}
	if model.LengthY() <= stockval.NearZero {
		if model.MaxY == 0 && model.MinY == 0 {
			return nil
		}
		// A flat value range is labeled once, in the center.
		return []float64{model.MinY}
	}
	labelHeight := 1.0
	if a.Label != nil {
		_, labelHeight = a.Label.Measure(m, "0")
	}
	count := int(length / max(labelHeight*labelDistanceFactor, 1))
	if a.MaxLabelCount > 0 {
		count = min(count, a.MaxLabelCount)
	}
	if count < 1 {
		return nil
	}
	step := niceStep(model.LengthY() / float64(count))
	first := math.Ceil(model.MinY/step) * step
	// Counting by index, v += step does not advance for large values and tiny steps.
	var values []float64
	for i := 0; i <= count; i++ {
		v := first + float64(i)*step
		if v > model.MaxY+step*stockval.NearZero {
			break
		}
		// we do not want negative zero on our label
		if v < 0 && v > -stockval.NearZero {
			v = 0
		}
		if len(values) > 0 && v == values[len(values)-1] {
			continue
		}
		values = append(values, v)
	}
	return values
}

// niceStep rounds rough up to 1, 2 or 5 times a power of ten.
func niceStep(rough float64) float64 {
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	switch f := rough / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// labelStep returns n so that every n-th segment of a horizontal axis is labeled.
func (a *Axis) labelStep(m canvas.Measurer, model *stockval.AxisModel, segmentWidth float64) int {
	step := max(a.LabelSpacing, 1)
	if a.Label == nil || segmentWidth <= stockval.NearZero {
		return step
	}
	w, _ := a.Label.Measure(m, a.format(model.MaxX, model))
	w = max(w, a.Label.Size)
	for float64(step)*segmentWidth < w {
		step += max(a.LabelSpacing, 1)
	}
	return step
}

func (a *Axis) Draw(dc DrawContext, background bool) {
	if dc.Model == nil {
		return
	}
	if a.position.IsVertical() {
		a.drawVertical(dc, background)
	} else {
		a.drawHorizontal(dc, background)
	}
}

func (a *Axis) drawVertical(dc DrawContext, background bool) {
	c := dc.Canvas
	data := dc.DataBounds
	proj := stockval.NewProjection(dc.Model, data)
	values := a.labelValues(c, dc.Model, data.Height())
	if background {
		if a.Guideline == nil {
			return
		}
		c.PushClip(data)
		for _, v := range values {
			a.Guideline.DrawHorizontal(c, data.Left, data.Right, proj.GetYpos(v))
		}
		c.PopClip()
		return
	}

	left := a.position.IsLeft(dc.IsLTR)
	ab := dc.AxisBounds
	thickness := lineThickness(a.Line)
	var lineX, tickFrom, tickTo float64
	if left {
		lineX = ab.Right - thickness/2
		tickFrom, tickTo = ab.Right-thickness-a.tickLength(), ab.Right-thickness
	} else {
		lineX = ab.Left + thickness/2
		tickFrom, tickTo = ab.Left+thickness, ab.Left+thickness+a.tickLength()
	}
	if a.Line != nil {
		a.Line.DrawVertical(c, data.Top, data.Bottom, lineX, 1)
	}
	var labelText string
	for _, v := range values {
		y := proj.GetYpos(v)
		if y < data.Top-stockval.NearZero || y > data.Bottom+stockval.NearZero {
			continue
		}
		if a.Tick != nil {
			a.Tick.DrawHorizontal(c, tickFrom, tickTo, y)
		}
		if a.Label == nil {
			continue
		}
		newLabelText := a.format(v, dc.Model)
		if newLabelText == labelText {
			continue // do not print text twice if it is unchanged due to precision
		}
		labelText = newLabelText
		if left {
			a.Label.Draw(c, labelText, stockval.Point{X: tickFrom, Y: y}, component.HorizontalEnd, component.VerticalCenter)
		} else {
			a.Label.Draw(c, labelText, stockval.Point{X: tickTo, Y: y}, component.HorizontalStart, component.VerticalCenter)
		}
	}
}

func (a *Axis) drawHorizontal(dc DrawContext, background bool) {
	c := dc.Canvas
	data := dc.DataBounds
	model := dc.Model
	count := model.EntryCount()
	segmentWidth := dc.Segment.SegmentWidth()
	if count == 0 || segmentWidth <= stockval.NearZero {
		return
	}
	var scroll float64
	if dc.State != nil {
		scroll = dc.State.HorizontalScroll
	}
	first, last := dc.Segment.VisibleRange(data.Width(), scroll, count)
	step := a.labelStep(c, model, segmentWidth)
	first -= first % step
	if background {
		if a.Guideline == nil {
			return
		}
		c.PushClip(data)
		for i := first; i <= last; i += step {
			a.Guideline.DrawVertical(c, data.Top, data.Bottom, a.segmentX(dc, i, scroll), 1)
		}
		c.PopClip()
		return
	}

	ab := dc.AxisBounds
	thickness := lineThickness(a.Line)
	top := a.position == PositionTop
	var lineY, tickFrom, tickTo float64
	if top {
		lineY = ab.Bottom - thickness/2
		tickFrom, tickTo = ab.Bottom-thickness-a.tickLength(), ab.Bottom-thickness
	} else {
		lineY = ab.Top + thickness/2
		tickFrom, tickTo = ab.Top+thickness, ab.Top+thickness+a.tickLength()
	}
	if a.Line != nil {
		a.Line.DrawHorizontal(c, data.Left, data.Right, lineY)
	}
	c.PushClip(stockval.Bounds{Left: data.Left, Top: ab.Top, Right: data.Right, Bottom: ab.Bottom})
	for i := first; i <= last; i += step {
		x := a.segmentX(dc, i, scroll)
		if a.Tick != nil {
			a.Tick.DrawVertical(c, tickFrom, tickTo, x, 1)
		}
		if a.Label == nil {
			continue
		}
		labelText := a.format(model.MinX+float64(i)*model.XStep, model)
		if top {
			a.Label.Draw(c, labelText, stockval.Point{X: x, Y: tickFrom}, component.HorizontalCenter, component.VerticalBottom)
		} else {
			a.Label.Draw(c, labelText, stockval.Point{X: x, Y: tickTo}, component.HorizontalCenter, component.VerticalTop)
		}
	}
	c.PopClip()
}

// segmentX is the horizontal center of segment i, mirrored in right-to-left layouts.
func (a *Axis) segmentX(dc DrawContext, i int, scroll float64) float64 {
	return dc.DataBounds.MirrorX(dc.Segment.CenterX(i, dc.DataBounds.Left, scroll), dc.IsLTR)
}
