// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indicators

import (
	"fmt"
	"image/color"
	"maycharts/indapi"
	"maycharts/indapi/indicators/bollinger"
	"maycharts/indapi/indicators/ema"
	"maycharts/indapi/indicators/sma"
	"maycharts/stockplot"
	"sort"

	"golang.org/x/exp/maps"
)

const DefaultId = "bollinger"

var IndicatorRegistry = map[indapi.IndicatorId]func() indapi.IndicatorData{
	bollinger.Id: bollinger.NewIndicator,
	sma.Id:       sma.NewIndicator,
	ema.Id:       ema.NewIndicator,
}

func Create(id indapi.IndicatorId, properties map[string]string, colors []color.NRGBA) (indapi.IndicatorData, error) {
	d, ok := IndicatorRegistry[id]
	if !ok {
		return nil, fmt.Errorf("invalid indicator %q", id)
	}
	ind := d()
	ind.SetProperties(properties)
	ind.SetColors(colors)
	return ind, nil
}

func GetDefaultProperties(id indapi.IndicatorId) map[string]string {
	d, ok := IndicatorRegistry[id]
	if !ok {
		panic("invalid indicator name")
	}
	return d().GetProperties()
}

func GetList() indapi.IndicatorList {
	l := indapi.IndicatorList(maps.Keys(IndicatorRegistry))
	sort.Sort(l)
	return l
}

// Overlays updates all indicators with the candles of ds and returns their lines.
func Overlays(inds []indapi.IndicatorData, ds *stockplot.CandleDataSet, defaultColor color.NRGBA, thickness float64) []stockplot.Overlay {
	data := indapi.NewPlotData(ds.Entries())
	var overlays []stockplot.Overlay
	for _, ind := range inds {
		ind.Update(data)
		overlays = append(overlays, ind.Overlays(defaultColor, thickness)...)
	}
	return overlays
}
