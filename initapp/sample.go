// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"math"
	"math/rand/v2"
	"maycharts/stockval"
)

const samplePrice = 100.0

// SampleCandles returns count candles of a random walk. X values are the
// indexes of the candles. The same seed always returns the same candles.
func SampleCandles(count int, seed uint64) []stockval.CandleEntry {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	entries := make([]stockval.CandleEntry, count)
	price := samplePrice
	for i := range entries {
		open := price
		// Relative change of up to two percent, some candles close unchanged.
		change := math.Round((r.Float64()*4-2)*10) / 10
		closePrice := round2(open * (1 + change/100))
		high := round2(max(open, closePrice) * (1 + r.Float64()/100))
		low := round2(min(open, closePrice) * (1 - r.Float64()/100))
		entries[i] = stockval.CandleEntry{X: float64(i), Open: open, High: high, Low: low, Close: closePrice}
		price = closePrice
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
