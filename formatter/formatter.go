// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package formatter

import (
	"fmt"
	"math"
	"maycharts/stockval"
)

// ValueFormatter converts an axis value to its label text.
// The model describes the currently visible value range.
type ValueFormatter interface {
	FormatValue(value float64, model *stockval.AxisModel) string
}

type FormatterFunc func(value float64, model *stockval.AxisModel) string

func (f FormatterFunc) FormatValue(value float64, model *stockval.AxisModel) string {
	return f(value, model)
}

// DefaultValueFormatter prints integral values without a fraction
// and all other values in their shortest representation.
type DefaultValueFormatter struct{}

func (DefaultValueFormatter) FormatValue(value float64, _ *stockval.AxisModel) string {
	d := stockval.ConvertFloatToDecimal(noNegativeZero(value), 64)
	if d == nil {
		return "-"
	}
	// %g prints all significant digits without exponent.
	return fmt.Sprintf("%g", d.Reduce())
}

// we do not want negative zero on our label
func noNegativeZero(v float64) float64 {
	if v < 0 && v > -stockval.NearZero {
		return 0
	}
	if v == 0 {
		return math.Abs(v)
	}
	return v
}
