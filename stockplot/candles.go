// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"math"
	"maycharts/candle"
	"maycharts/canvas"
	"maycharts/component"
	"maycharts/marker"
	"maycharts/stockval"
)

const DefaultCandleSpacing = 4.0

// Overlay is a line drawn on top of the candles, e.g. an indicator.
// Values has one entry per candle, NaN values are not drawn.
type Overlay struct {
	Name   string
	Values []float64
	Line   component.LineComponent
}

type CandleDataSet struct {
	Base
	config   *candle.Config
	entries  []stockval.CandleEntry
	overlays []Overlay
}

var _ DataSet = (*CandleDataSet)(nil)

// NewCandleDataSet creates a data set drawing entries with the candles of cfg.
// The cell width is the widest candle of cfg.
func NewCandleDataSet(cfg *candle.Config, entries []stockval.CandleEntry) *CandleDataSet {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &CandleDataSet{
		Base:    newBase(stockval.SegmentProperties{CellWidth: cfg.MaxThickness(), MarginWidth: DefaultCandleSpacing}),
		config:  cfg,
		entries: entries,
	}
}

func (d *CandleDataSet) Entries() []stockval.CandleEntry {
	return d.entries
}

func (d *CandleDataSet) SetEntries(entries []stockval.CandleEntry) {
	d.entries = entries
	d.NotifyUpdate()
}

func (d *CandleDataSet) SetConfig(cfg *candle.Config) {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	d.config = cfg
	d.segment.CellWidth = cfg.MaxThickness()
	d.NotifyUpdate()
}

func (d *CandleDataSet) Overlays() []Overlay {
	return d.overlays
}

// SetOverlays replaces all overlays.
func (d *CandleDataSet) SetOverlays(overlays []Overlay) {
	d.overlays = overlays
	d.NotifyUpdate()
}

func (d *CandleDataSet) SetToAxisModel(m *stockval.AxisModel) {
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
		m.MinY = math.Min(m.MinY, e.Low)
		m.MaxY = math.Max(m.MaxY, e.High)
	}
	for _, o := range d.overlays {
		for _, v := range o.Values {
			if stockval.IsFinite(v) {
				m.MinY = math.Min(m.MinY, v)
				m.MaxY = math.Max(m.MaxY, v)
			}
		}
	}
}

func (d *CandleDataSet) SegmentProperties() stockval.SegmentProperties {
	return d.segmentProperties(len(d.entries))
}

func (d *CandleDataSet) MaxScrollAmount() float64 {
	return d.maxScrollAmount(len(d.entries))
}

// candleFor returns the appearance of entry i, classified by the absolute and relative trend.
func (d *CandleDataSet) candleFor(i int) *candle.Candle {
	return d.config.Candle(stockval.AbsoluteTrend(d.entries[i]), stockval.RelativeTrend(d.entries, i))
}

func (d *CandleDataSet) Draw(c canvas.Canvas, state *stockval.RendererViewState, segment stockval.SegmentProperties, mk marker.Marker) []marker.MarkedEntry {
	count := len(d.entries)
	if count == 0 || d.bounds.IsEmpty() {
		return nil
	}
	var model stockval.AxisModel
	d.SetToAxisModel(&model)
	proj := stockval.NewProjection(&model, d.bounds)
	first, last := d.visibleRange(state, segment, count)

	// Only draw within the plot area.
	c.PushClip(d.bounds)
	for i := first; i <= last; i++ {
		d.plotSingleCandle(c, i, d.entryX(state, segment, i), proj, segment)
	}
	for _, o := range d.overlays {
		d.plotOverlay(c, o, first, last, state, segment, proj)
	}
	c.PopClip()

	if mk == nil {
		return nil
	}
	i := d.markerIndex(state, segment, count)
	if i < 0 {
		return nil
	}
	x := d.entryX(state, segment, i)
	entries := []marker.MarkedEntry{{
		Index:    i,
		Location: stockval.Point{X: x, Y: proj.GetYpos(d.entries[i].Close)},
		Value:    d.entries[i].Close,
		Color:    d.candleFor(i).Body.VisibleColor(),
	}}
	for _, o := range d.overlays {
		if i < len(o.Values) && stockval.IsFinite(o.Values[i]) {
			entries = append(entries, marker.MarkedEntry{
				Index:    i,
				Location: stockval.Point{X: x, Y: proj.GetYpos(o.Values[i])},
				Value:    o.Values[i],
				Color:    o.Line.VisibleColor(),
			})
		}
	}
	return entries
}

func (d *CandleDataSet) plotSingleCandle(c canvas.Canvas, i int, x float64, proj stockval.Projection, segment stockval.SegmentProperties) {
	e := d.entries[i]
	cd := d.candleFor(i)
	scale := segment.CellWidth / max(d.segment.CellWidth, stockval.NearZero)
	candleWidth, lineWidth := getCandleWidth(cd.Body.Thickness, cd.TopWick.Thickness, scale, segment.CellWidth)

	bodyTop := proj.GetYpos(math.Max(e.Open, e.Close))
	bodyBottom := proj.GetYpos(math.Min(e.Open, e.Close))
	if bodyBottom-bodyTop < 1 {
		bodyBottom = bodyTop + 1 // flat candles are drawn as a thin line
	}
	highPos := proj.GetYpos(e.High)
	lowPos := proj.GetYpos(e.Low)

	if highPos < bodyTop {
		cd.TopWick.DrawVertical(c, highPos, bodyTop, x, lineWidth/max(cd.TopWick.Thickness, stockval.NearZero))
	}
	if lowPos > bodyBottom {
		cd.BottomWick.DrawVertical(c, bodyBottom, lowPos, x, lineWidth/max(cd.BottomWick.Thickness, stockval.NearZero))
	}
	cd.Body.DrawVertical(c, bodyTop, bodyBottom, x, candleWidth/max(cd.Body.Thickness, stockval.NearZero))
}

func (d *CandleDataSet) plotOverlay(c canvas.Canvas, o Overlay, first, last int, state *stockval.RendererViewState,
	segment stockval.SegmentProperties, proj stockval.Projection) {
	var points []stockval.Point
	flush := func() {
		if len(points) > 1 {
			c.DrawPolyline(points, o.Line.Thickness, o.Line.VisibleColor())
		}
		points = points[:0]
	}
	for i := first; i <= last && i < len(o.Values); i++ {
		v := o.Values[i]
		if !stockval.IsFinite(v) {
			// Gaps split the line.
			flush()
			continue
		}
		points = append(points, stockval.Point{X: d.entryX(state, segment, i), Y: proj.GetYpos(v)})
	}
	flush()
}
