// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indicators

import (
	"image/color"
	"math"
	"maycharts/candle"
	"maycharts/indapi"
	"maycharts/stockplot"
	"maycharts/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func candlesWithCloses(closes ...float64) []stockval.CandleEntry {
	entries := make([]stockval.CandleEntry, len(closes))
	for i, c := range closes {
		entries[i] = stockval.CandleEntry{X: float64(i), Open: c, High: c + 1, Low: c - 1, Close: c}
	}
	return entries
}

func assertValues(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "index %d", i)
		} else {
			assert.InDelta(t, expected[i], actual[i], 1e-9, "index %d", i)
		}
	}
}

func TestGetList(t *testing.T) {
	assert.Equal(t, indapi.IndicatorList{"bollinger", "ema", "sma"}, GetList())
	assert.Contains(t, GetList(), indapi.IndicatorId(DefaultId))
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("macd", nil, nil)
	assert.Error(t, err)
}

func TestDefaultProperties(t *testing.T) {
	assert.Equal(t, map[string]string{"Time Periods": "9"}, GetDefaultProperties("sma"))
	assert.Equal(t, map[string]string{"Width": "2", "Time Units": "20"}, GetDefaultProperties("bollinger"))
	assert.Panics(t, func() { GetDefaultProperties("macd") })
}

func TestInvalidPropertiesAreIgnored(t *testing.T) {
	ind, err := Create("sma", map[string]string{"Time Periods": "-3", "Color": "red"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "9", ind.GetProperties()["Time Periods"])
}

func TestSma(t *testing.T) {
	ind, err := Create("sma", map[string]string{"Time Periods": "3"}, []color.NRGBA{blue})
	require.NoError(t, err)

	ind.Update(indapi.NewPlotData(candlesWithCloses(1, 2, 3, 4, 5)))
	o := ind.Overlays(white, 2)

	require.Len(t, o, 1)
	assert.Equal(t, "SMA 3", o[0].Name)
	assert.Equal(t, blue, o[0].Line.Color)
	assert.Equal(t, 2.0, o[0].Line.Thickness)
	assertValues(t, []float64{math.NaN(), math.NaN(), 2, 3, 4}, o[0].Values)
}

func TestEmaOfConstantCloses(t *testing.T) {
	ind, err := Create("ema", map[string]string{"Time Periods": "2"}, nil)
	require.NoError(t, err)

	ind.Update(indapi.NewPlotData(candlesWithCloses(7, 7, 7, 7)))
	o := ind.Overlays(white, 1)

	require.Len(t, o, 1)
	assert.Equal(t, white, o[0].Line.Color)
	assertValues(t, []float64{math.NaN(), 7, 7, 7}, o[0].Values)
}

func TestBollinger(t *testing.T) {
	ind, err := Create("bollinger", map[string]string{"Time Units": "2", "Width": "1"}, nil)
	require.NoError(t, err)

	ind.Update(indapi.NewPlotData(candlesWithCloses(2, 4, 4, 8)))
	o := ind.Overlays(white, 1)

	require.Len(t, o, 3)
	nan := math.NaN()
	assertValues(t, []float64{nan, 4, 4, 8}, o[0].Values)
	assertValues(t, []float64{nan, 3, 4, 6}, o[1].Values)
	assertValues(t, []float64{nan, 2, 4, 4}, o[2].Values)
}

func TestOverlaysForDataSet(t *testing.T) {
	var b candle.StandardBuilder
	ds := stockplot.NewCandleDataSet(b.Build(candle.DefaultColors{Green: blue, Red: blue, Gray: blue}), candlesWithCloses(1, 2, 3, 4, 5, 6))
	sma, err := Create("sma", map[string]string{"Time Periods": "2"}, nil)
	require.NoError(t, err)
	boll, err := Create("bollinger", nil, nil)
	require.NoError(t, err)

	overlays := Overlays([]indapi.IndicatorData{sma, boll}, ds, white, 1)

	require.Len(t, overlays, 4)
	for _, o := range overlays {
		assert.Len(t, o.Values, 6)
	}
	// Bollinger needs 20 candles.
	assert.True(t, math.IsNaN(overlays[1].Values[5]))
}
