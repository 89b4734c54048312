// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package indapi defines indicators computed from candles and drawn as
// overlays of a candle chart.
package indapi

import (
	"image/color"
	"maycharts/component"
	"maycharts/stockplot"
	"maycharts/stockval"

	"github.com/ericlagergren/decimal"
)

type IndicatorId string

// For sorting
type IndicatorList []IndicatorId

func (x IndicatorList) Len() int           { return len(x) }
func (x IndicatorList) Less(i, j int) bool { return x[i] < x[j] }
func (x IndicatorList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// CandleData holds exact prices for indicators which accumulate rounding errors.
type CandleData struct {
	X          float64
	OpenPrice  *decimal.Big
	HighPrice  *decimal.Big
	LowPrice   *decimal.Big
	ClosePrice *decimal.Big
}

type PlotData struct {
	Data  []CandleData
	Cache struct {
		OpenPrices  []float64
		HighPrices  []float64
		LowPrices   []float64
		ClosePrices []float64
	}
}

func NewPlotData(entries []stockval.CandleEntry) *PlotData {
	p := &PlotData{Data: make([]CandleData, len(entries))}
	for i, e := range entries {
		p.Data[i] = CandleData{
			X:          e.X,
			OpenPrice:  stockval.ConvertFloatToDecimal(e.Open, 64),
			HighPrice:  stockval.ConvertFloatToDecimal(e.High, 64),
			LowPrice:   stockval.ConvertFloatToDecimal(e.Low, 64),
			ClosePrice: stockval.ConvertFloatToDecimal(e.Close, 64),
		}
		p.Cache.OpenPrices = append(p.Cache.OpenPrices, e.Open)
		p.Cache.HighPrices = append(p.Cache.HighPrices, e.High)
		p.Cache.LowPrices = append(p.Cache.LowPrices, e.Low)
		p.Cache.ClosePrices = append(p.Cache.ClosePrices, e.Close)
	}
	return p
}

type IndicatorData interface {
	Update(data *PlotData)
	// Overlays returns one line per output of the indicator, with one value per candle.
	Overlays(defaultColor color.NRGBA, thickness float64) []stockplot.Overlay
	GetId() IndicatorId
	GetProperties() map[string]string
	SetProperties(map[string]string)
	GetColors() []color.NRGBA
	SetColors([]color.NRGBA)
}

func GetMinColors(c []color.NRGBA, numColors int) []color.NRGBA {
	for len(c) < numColors {
		c = append(c, color.NRGBA{})
	}
	return c
}

func GetNormalisedColors(c []color.NRGBA, def color.NRGBA) []color.NRGBA {
	c = append([]color.NRGBA(nil), c...)
	for i := range c {
		if empty := (color.NRGBA{}); c[i] == empty {
			c[i] = def
		}
	}
	return c
}

// NewOverlay creates an overlay line, the first values may be missing in values.
func NewOverlay(name string, values []float64, count int, c color.NRGBA, thickness float64) stockplot.Overlay {
	return stockplot.Overlay{
		Name:   name,
		Values: AlignRight(values, count),
		Line:   component.NewLineComponent(c, thickness),
	}
}
