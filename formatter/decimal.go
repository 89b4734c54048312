// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package formatter

import (
	"maycharts/stockval"
)

// DecimalValueFormatter prints values rounded to a fixed number of decimal places.
type DecimalValueFormatter struct {
	Decimals int
	Prefix   string
	Suffix   string
}

func NewDecimalValueFormatter(decimals int) DecimalValueFormatter {
	return DecimalValueFormatter{Decimals: max(decimals, 0)}
}

func (f DecimalValueFormatter) FormatValue(value float64, _ *stockval.AxisModel) string {
	d := stockval.ConvertFloatToDecimal(noNegativeZero(value), 64)
	if d == nil {
		return f.Prefix + "-" + f.Suffix
	}
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	d.Quantize(f.Decimals).Quantize(f.Decimals)
	if d.Sign() == 0 {
		// Rounding may produce a signed zero.
		d.SetSignbit(false)
	}
	return f.Prefix + d.String() + f.Suffix
}
