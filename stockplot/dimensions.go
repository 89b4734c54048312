// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"math"
)

const (
	minCandleWidth = 1.0
	minLineWidth   = 1.0
)

// getCandleWidth returns the pixel width of a candle body and its wicks.
// Body thickness follows the zoom, but never exceeds the cell width.
func getCandleWidth(bodyThickness, wickThickness, zoom, cellWidth float64) (candleWidth, lineWidth float64) {
	candleWidth = bodyThickness * zoom
	if cellWidth > 0 {
		candleWidth = math.Min(candleWidth, cellWidth)
	}
	if candleWidth < minCandleWidth {
		candleWidth = minCandleWidth
	}
	lineWidth = math.Max(wickThickness, candleWidth/16)
	if lineWidth < minLineWidth {
		lineWidth = minLineWidth
	}
	if lineWidth > candleWidth {
		lineWidth = candleWidth
	}
	return
}
