// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import "math"

// AlignRight returns count values, with the last value of v at the end.
// Missing values at the start are NaN.
func AlignRight(v []float64, count int) []float64 {
	out := make([]float64, count)
	offset := count - len(v)
	for i := range out {
		if j := i - offset; j >= 0 {
			out[i] = v[j]
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// HideWarmup replaces the first n values by NaN, they are based on too few candles.
func HideWarmup(v []float64, n int) []float64 {
	for i := 0; i < n && i < len(v); i++ {
		v[i] = math.NaN()
	}
	return v
}
