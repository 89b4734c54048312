// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package bollinger

import (
	"image/color"
	"maycharts/indapi"
	"maycharts/indapi/calc"
	"maycharts/indapi/properties"
	"maycharts/stockplot"
	"strconv"

	"github.com/ericlagergren/decimal"
)

type Indicator struct {
	top       []float64
	mid       []float64
	bottom    []float64
	timeUnits int
	bandWidth int
	colors    []color.NRGBA
}

const Id = "bollinger"

func NewIndicator() indapi.IndicatorData {
	return &Indicator{timeUnits: 20, bandWidth: 2}
}

func (d *Indicator) GetId() indapi.IndicatorId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Width":      strconv.Itoa(d.bandWidth),
		"Time Units": strconv.Itoa(d.timeUnits),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Width":
			properties.SetPositiveValue(&d.bandWidth, key, value)
		case "Time Units":
			properties.SetPositiveValue(&d.timeUnits, key, value)
		default:
			properties.Unknown(key)
		}
	}
}

// Colors are used for the bands and the middle line, in this order.
func (d *Indicator) GetColors() []color.NRGBA {
	return d.colors
}

func (d *Indicator) SetColors(c []color.NRGBA) {
	d.colors = indapi.GetMinColors(c, 2)
}

func (d *Indicator) Update(data *indapi.PlotData) {
	d.top = d.top[:0]
	d.mid = d.mid[:0]
	d.bottom = d.bottom[:0]
	width := decimal.New(int64(d.bandWidth), 0)
	for i := range data.Data {
		subSet := data.Data[max(0, i+1-d.timeUnits) : i+1]
		mean := calc.Mean(new(decimal.Big), subSet)
		stdDev := calc.StdDev(new(decimal.Big), subSet)
		stdDev.Mul(stdDev, width)
		meanTop := new(decimal.Big).Copy(mean)
		meanBottom := new(decimal.Big).Copy(mean)
		d.top = append(d.top, calc.Float(meanTop.Add(meanTop, stdDev)))
		d.mid = append(d.mid, calc.Float(mean))
		d.bottom = append(d.bottom, calc.Float(meanBottom.Sub(meanBottom, stdDev)))
	}
	warmup := d.timeUnits - 1
	indapi.HideWarmup(d.top, warmup)
	indapi.HideWarmup(d.mid, warmup)
	indapi.HideWarmup(d.bottom, warmup)
}

func (d *Indicator) Overlays(defaultColor color.NRGBA, thickness float64) []stockplot.Overlay {
	c := indapi.GetNormalisedColors(indapi.GetMinColors(d.colors, 2), defaultColor)
	count := len(d.mid)
	return []stockplot.Overlay{
		indapi.NewOverlay("Bollinger top", d.top, count, c[0], thickness),
		indapi.NewOverlay("Bollinger mid", d.mid, count, c[1], thickness),
		indapi.NewOverlay("Bollinger bottom", d.bottom, count, c[0], thickness),
	}
}
