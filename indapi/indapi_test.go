// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import (
	"image/color"
	"math"
	"maycharts/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlotData(t *testing.T) {
	p := NewPlotData([]stockval.CandleEntry{{X: 3, Open: 1.5, High: 2, Low: 1, Close: 1.25}})

	assert.Len(t, p.Data, 1)
	assert.Equal(t, "1.25", p.Data[0].ClosePrice.String())
	assert.Equal(t, []float64{1.25}, p.Cache.ClosePrices)
	assert.Equal(t, []float64{2}, p.Cache.HighPrices)
}

func TestAlignRight(t *testing.T) {
	v := AlignRight([]float64{1, 2}, 4)

	assert.True(t, math.IsNaN(v[0]))
	assert.True(t, math.IsNaN(v[1]))
	assert.Equal(t, []float64{1, 2}, v[2:])
	assert.Equal(t, []float64{2}, AlignRight([]float64{1, 2}, 1))
}

func TestNormalisedColorsKeepInput(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	in := GetMinColors(nil, 2)

	out := GetNormalisedColors(in, red)

	assert.Equal(t, []color.NRGBA{red, red}, out)
	assert.Equal(t, color.NRGBA{}, in[0])
}
