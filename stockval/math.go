// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"math"
	"strconv"

	"github.com/ericlagergren/decimal"
	"golang.org/x/exp/constraints"
)

const NearZero = 0.000001

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// Clamp returns v limited to [lo, hi]. If hi < lo, lo wins.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < NearZero
}
