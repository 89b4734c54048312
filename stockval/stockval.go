// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

// X values of all entries are data units, usually the index of the entry.
// A data set with one entry per candle uses X steps of 1.

type CandleEntry struct {
	X     float64
	Open  float64
	High  float64
	Low   float64
	Close float64
}

type LineEntry struct {
	X float64
	Y float64
}

// Trend classifies a value change. It is used on two axes for candles:
// absolute (close compared to open of the same candle) and
// relative (close compared to the close of the previous candle).
type Trend int

const (
	TrendIncreasing Trend = iota
	TrendZero
	TrendDecreasing
)

const NumTrends = TrendDecreasing + 1

func (t Trend) String() string {
	switch t {
	case TrendIncreasing:
		return "increasing"
	case TrendZero:
		return "zero"
	case TrendDecreasing:
		return "decreasing"
	default:
		panic("invalid trend")
	}
}

func TrendOf(from, to float64) Trend {
	switch {
	case NearlyEqual(from, to):
		return TrendZero
	case to > from:
		return TrendIncreasing
	default:
		return TrendDecreasing
	}
}

func AbsoluteTrend(e CandleEntry) Trend {
	return TrendOf(e.Open, e.Close)
}

// RelativeTrend of the entry at index i. The first entry has no predecessor
// and is compared with its own open price.
func RelativeTrend(entries []CandleEntry, i int) Trend {
	if i <= 0 {
		return TrendOf(entries[i].Open, entries[i].Close)
	}
	return TrendOf(entries[i-1].Close, entries[i].Close)
}
