// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package widgets contains the color themes of charts.
package widgets

import (
	"image/color"
	"maycharts/candle"
)

type PlotTheme struct {
	Light           bool
	BackgroundColor color.NRGBA
	AxesColor       color.NRGBA
	GridColor       color.NRGBA
	AxesTextColor   color.NRGBA
	CandleUpColor   color.NRGBA
	CandleDownColor color.NRGBA
	CandleZeroColor color.NRGBA
	// Default colors of indicator overlays without configured colors.
	OverlayColor     color.NRGBA
	OverlayThickness float64
	HoverTextColor   color.NRGBA
	HoverBgColor     color.NRGBA
	HoverLineColor   color.NRGBA
}

func NewDarkPlotTheme() *PlotTheme {
	return &PlotTheme{
		BackgroundColor:  color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255},
		AxesColor:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		GridColor:        color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		AxesTextColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		CandleUpColor:    color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		CandleDownColor:  color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		CandleZeroColor:  color.NRGBA{R: 100, G: 100, B: 100, A: 255},
		OverlayColor:     color.NRGBA{R: 255, G: 200, B: 0, A: 255},
		OverlayThickness: 1.5,
		HoverTextColor:   color.NRGBA{R: 100, G: 255, B: 100, A: 255},
		HoverBgColor:     color.NRGBA{R: 74, G: 74, B: 107, A: 255},
		HoverLineColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 160},
	}
}

func NewLightPlotTheme() *PlotTheme {
	return &PlotTheme{
		Light:            true,
		BackgroundColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		AxesColor:        color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		GridColor:        color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		AxesTextColor:    color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		CandleUpColor:    color.NRGBA{R: 0, G: 200, B: 0, A: 255},
		CandleDownColor:  color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		CandleZeroColor:  color.NRGBA{R: 150, G: 150, B: 150, A: 255},
		OverlayColor:     color.NRGBA{R: 0, G: 90, B: 200, A: 255},
		OverlayThickness: 1.5,
		HoverTextColor:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		HoverBgColor:     color.NRGBA{R: 174, G: 174, B: 207, A: 255},
		HoverLineColor:   color.NRGBA{R: 0, G: 0, B: 0, A: 160},
	}
}

// NewPlotTheme selects the light or dark theme.
func NewPlotTheme(light bool) *PlotTheme {
	if light {
		return NewLightPlotTheme()
	}
	return NewDarkPlotTheme()
}

func (th *PlotTheme) CandleColors() candle.DefaultColors {
	return candle.DefaultColors{
		Green: th.CandleUpColor,
		Red:   th.CandleDownColor,
		Gray:  th.CandleZeroColor,
	}
}
