// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package ema

import (
	"image/color"
	"maycharts/indapi"
	"maycharts/indapi/properties"
	"maycharts/stockplot"
	"strconv"

	"github.com/cinar/indicator"
)

type Indicator struct {
	count      int
	result     []float64
	numPeriods int
	colors     []color.NRGBA
}

const Id = "ema"

func NewIndicator() indapi.IndicatorData {
	return &Indicator{numPeriods: 21}
}

func (d *Indicator) GetId() indapi.IndicatorId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Time Periods": strconv.Itoa(d.numPeriods),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Time Periods":
			properties.SetPositiveValue(&d.numPeriods, key, value)
		default:
			properties.Unknown(key)
		}
	}
}

func (d *Indicator) GetColors() []color.NRGBA {
	return d.colors
}

func (d *Indicator) SetColors(c []color.NRGBA) {
	d.colors = indapi.GetMinColors(c, 1)
}

func (d *Indicator) Update(data *indapi.PlotData) {
	d.count = len(data.Cache.ClosePrices)
	// The average starts with the first close, the first periods are hidden.
	d.result = indapi.HideWarmup(indicator.Ema(d.numPeriods, data.Cache.ClosePrices), d.numPeriods-1)
}

func (d *Indicator) Overlays(defaultColor color.NRGBA, thickness float64) []stockplot.Overlay {
	c := indapi.GetNormalisedColors(indapi.GetMinColors(d.colors, 1), defaultColor)
	return []stockplot.Overlay{
		indapi.NewOverlay("EMA "+strconv.Itoa(d.numPeriods), d.result, d.count, c[0], thickness),
	}
}
