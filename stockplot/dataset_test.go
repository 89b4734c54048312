// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image/color"
	"math"
	"maycharts/candle"
	"maycharts/component"
	"maycharts/marker"
	"maycharts/mock"
	"maycharts/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testColors = candle.DefaultColors{
		Green: color.NRGBA{G: 255, A: 255},
		Red:   color.NRGBA{R: 255, A: 255},
		Gray:  color.NRGBA{R: 128, G: 128, B: 128, A: 255},
	}
	testLine = component.NewLineComponent(color.NRGBA{B: 255, A: 255}, 2)
)

// Increasing, decreasing and flat candle.
var testCandles = []stockval.CandleEntry{
	{X: 0, Open: 10, High: 12, Low: 9, Close: 11},
	{X: 1, Open: 11, High: 11.5, Low: 8, Close: 9},
	{X: 2, Open: 9, High: 10, Low: 9, Close: 9},
}

type countingListener struct {
	count int
}

func (l *countingListener) OnUpdateRequested() {
	l.count++
}

func newTestCandleDataSet() *CandleDataSet {
	var b candle.StandardBuilder
	ds := NewCandleDataSet(b.Build(testColors), testCandles)
	ds.SetBounds(stockval.Bounds{Left: 0, Top: 0, Right: 120, Bottom: 100})
	return ds
}

func TestCandleAxisModel(t *testing.T) {
	ds := newTestCandleDataSet()
	var m stockval.AxisModel

	ds.SetToAxisModel(&m)

	assert.Equal(t, stockval.AxisModel{MinX: 0, MaxX: 2, MinY: 8, MaxY: 12, XStep: 1}, m)
	assert.Equal(t, 3, m.EntryCount())
}

func TestCandleAxisModelIncludesOverlays(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.SetOverlays([]Overlay{{Values: []float64{math.NaN(), 20, 5}, Line: testLine}})
	var m stockval.AxisModel

	ds.SetToAxisModel(&m)

	assert.Equal(t, 5.0, m.MinY)
	assert.Equal(t, 20.0, m.MaxY)
}

func TestCandleSegmentAndMaxScroll(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.SetBounds(stockval.Bounds{Left: 0, Top: 0, Right: 30, Bottom: 100})

	assert.Equal(t, stockval.SegmentProperties{CellWidth: 8, MarginWidth: 4}, ds.SegmentProperties())
	assert.Equal(t, 6.0, ds.MaxScrollAmount())

	ds.SetZoom(2)
	assert.Equal(t, stockval.SegmentProperties{CellWidth: 16, MarginWidth: 8}, ds.SegmentProperties())
	assert.Equal(t, 42.0, ds.MaxScrollAmount())

	ds.SetZoom(100)
	assert.Equal(t, 10.0, ds.Zoom())
}

func TestDisabledHorizontalScroll(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.HorizontalScrollDisabled = true

	assert.False(t, ds.IsHorizontalScrollEnabled())
	assert.Zero(t, ds.MaxScrollAmount())
	assert.InDelta(t, 40.0, ds.SegmentProperties().SegmentWidth(), stockval.NearZero)
}

func TestListeners(t *testing.T) {
	ds := newTestCandleDataSet()
	l := &countingListener{}

	ds.AddListener(l)
	ds.AddListener(l)
	ds.SetEntries(testCandles[:2])
	assert.Equal(t, 1, l.count)

	ds.RemoveListener(l)
	ds.SetEntries(testCandles)
	assert.Equal(t, 1, l.count)
}

func TestCandleDraw(t *testing.T) {
	ds := newTestCandleDataSet()
	c := mock.NewCanvas()
	state := &stockval.RendererViewState{IsLTR: true}

	entries := ds.Draw(c, state, ds.SegmentProperties(), nil)

	assert.Nil(t, entries)
	assert.Zero(t, c.ClipDepth())
	fills := c.OpsOfKind(mock.OpFillRect)
	require.Len(t, fills, 8)
	// Wicks are drawn before the body.
	assert.Equal(t, testColors.Green, fills[2].Color)
	assert.Equal(t, 6.0, fills[2].Bounds.CenterX())
	assert.Equal(t, 8.0, fills[2].Bounds.Width())
	assert.Equal(t, testColors.Red, fills[5].Color)
	assert.Equal(t, 18.0, fills[5].Bounds.CenterX())
	assert.Equal(t, testColors.Gray, fills[7].Color)
	assert.InDelta(t, 1.0, fills[7].Bounds.Height(), stockval.NearZero)
}

func TestCandleDrawZoomed(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.SetZoom(0.5)
	c := mock.NewCanvas()
	state := &stockval.RendererViewState{IsLTR: true}

	ds.Draw(c, state, ds.SegmentProperties(), nil)

	body := c.OpsOfKind(mock.OpFillRect)[2]
	assert.Equal(t, 4.0, body.Bounds.Width())
	assert.Equal(t, 3.0, body.Bounds.CenterX())
}

func TestCandleMarkerEntries(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.SetOverlays([]Overlay{{Values: []float64{10, 10.5, math.NaN()}, Line: testLine}})
	mk := marker.NewDefault(color.NRGBA{}, color.NRGBA{}, color.NRGBA{}, 10)
	state := &stockval.RendererViewState{IsLTR: true}
	state.SetMarkerTouchPoint(stockval.Point{X: 18, Y: 50})

	entries := ds.Draw(mock.NewCanvas(), state, ds.SegmentProperties(), mk)

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, 9.0, entries[0].Value)
	assert.Equal(t, testColors.Red, entries[0].Color)
	assert.Equal(t, 18.0, entries[0].Location.X)
	assert.Equal(t, 10.5, entries[1].Value)

	state.SetMarkerTouchPoint(stockval.Point{X: 30, Y: 50})
	entries = ds.Draw(mock.NewCanvas(), state, ds.SegmentProperties(), mk)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Index)

	state.SetMarkerTouchPoint(stockval.Point{X: 100, Y: 50})
	assert.Empty(t, ds.Draw(mock.NewCanvas(), state, ds.SegmentProperties(), mk))
}

func TestCandleMarkerRightToLeft(t *testing.T) {
	ds := newTestCandleDataSet()
	mk := marker.NewDefault(color.NRGBA{}, color.NRGBA{}, color.NRGBA{}, 10)
	state := &stockval.RendererViewState{IsLTR: false}
	state.SetMarkerTouchPoint(stockval.Point{X: 102, Y: 50})

	entries := ds.Draw(mock.NewCanvas(), state, ds.SegmentProperties(), mk)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, 102.0, entries[0].Location.X)
}

func TestCandleOverlayGapsSplitLine(t *testing.T) {
	ds := newTestCandleDataSet()
	ds.SetEntries(append(append([]stockval.CandleEntry{}, testCandles...), testCandles...))
	ds.SetOverlays([]Overlay{{Values: []float64{10, 10, math.NaN(), 10, 10, 10}, Line: testLine}})
	c := mock.NewCanvas()

	ds.Draw(c, &stockval.RendererViewState{IsLTR: true}, ds.SegmentProperties(), nil)

	lines := c.OpsOfKind(mock.OpPolyline)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0].Points, 2)
	assert.Len(t, lines[1].Points, 3)
}

func TestLineDataSet(t *testing.T) {
	ds := NewLineDataSet(testLine, []stockval.LineEntry{{X: 0, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}})
	ds.SetBounds(stockval.Bounds{Left: 0, Top: 0, Right: 100, Bottom: 100})
	var m stockval.AxisModel

	ds.SetToAxisModel(&m)
	assert.Equal(t, stockval.AxisModel{MinX: 0, MaxX: 4, MinY: 1, MaxY: 3, XStep: 2}, m)

	c := mock.NewCanvas()
	ds.Draw(c, &stockval.RendererViewState{IsLTR: true}, ds.SegmentProperties(), nil)

	lines := c.OpsOfKind(mock.OpPolyline)
	require.Len(t, lines, 1)
	assert.Equal(t, []stockval.Point{{X: 6, Y: 100}, {X: 18, Y: 0}, {X: 30, Y: 50}}, lines[0].Points)
	assert.Equal(t, 2.0, lines[0].Width)
}

func TestLineDataSetSkipsSamePixel(t *testing.T) {
	ds := NewLineDataSet(testLine, []stockval.LineEntry{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	ds.SetSegment(stockval.SegmentProperties{CellWidth: 0.1})
	ds.SetBounds(stockval.Bounds{Left: 0, Top: 0, Right: 100, Bottom: 100})
	c := mock.NewCanvas()

	ds.Draw(c, &stockval.RendererViewState{IsLTR: true}, ds.SegmentProperties(), nil)

	lines := c.OpsOfKind(mock.OpPolyline)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Points, 2)
}

func TestCandleWidth(t *testing.T) {
	w, l := getCandleWidth(8, 1, 1, 8)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 1.0, l)

	w, l = getCandleWidth(8, 1, 10, 80)
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 5.0, l)

	w, _ = getCandleWidth(8, 1, 4, 20)
	assert.Equal(t, 20.0, w)

	w, l = getCandleWidth(8, 1, 0.01, 0.08)
	assert.Equal(t, minCandleWidth, w)
	assert.Equal(t, minLineWidth, l)
}

func TestCandleSetConfig(t *testing.T) {
	ds := newTestCandleDataSet()
	var l countingListener
	ds.AddListener(&l)
	var b candle.HollowBuilder

	ds.SetConfig(b.Build(testColors))

	assert.Equal(t, 1, l.count)
	assert.Panics(t, func() { ds.SetConfig(&candle.Config{}) })
}
