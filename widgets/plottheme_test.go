// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlotTheme(t *testing.T) {
	assert.True(t, NewPlotTheme(true).Light)
	assert.False(t, NewPlotTheme(false).Light)
}

func TestCandleColors(t *testing.T) {
	th := NewDarkPlotTheme()
	colors := th.CandleColors()

	assert.Equal(t, th.CandleUpColor, colors.Green)
	assert.Equal(t, th.CandleDownColor, colors.Red)
	assert.Equal(t, th.CandleZeroColor, colors.Gray)
}

func TestMaterialThemeMatchesPlotTheme(t *testing.T) {
	dark := NewDarkPlotTheme().MaterialTheme()
	light := NewLightPlotTheme().MaterialTheme()

	assert.Equal(t, NewDarkPlotTheme().AxesColor, dark.Fg)
	assert.NotEqual(t, dark.Bg, light.Bg)
}
