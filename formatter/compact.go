// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package formatter

import (
	"math"
	"maycharts/stockval"
	"strconv"
)

type printFormat int

const (
	printFormatDefault printFormat = iota
	printFormatThousands
	printFormatMillions
	printFormatBillions
)

// CompactValueFormatter abbreviates large values with k, m or b.
// The unit is chosen from the visible value range so that all labels of an axis share it.
type CompactValueFormatter struct {
	Decimals int
}

func determinePrintFormat(model *stockval.AxisModel) printFormat {
	if model == nil {
		return printFormatDefault
	}
	maxAbs := math.Max(math.Abs(model.MinY), math.Abs(model.MaxY))
	switch {
	case maxAbs >= 1000000000:
		return printFormatBillions
	case maxAbs >= 1000000:
		return printFormatMillions
	case maxAbs >= 1000:
		return printFormatThousands
	default:
		return printFormatDefault
	}
}

func (f CompactValueFormatter) FormatValue(value float64, model *stockval.AxisModel) string {
	value = noNegativeZero(value)
	switch determinePrintFormat(model) {
	case printFormatBillions:
		return strconv.FormatFloat(value/1000000000, 'f', f.Decimals, 64) + "b"
	case printFormatMillions:
		return strconv.FormatFloat(value/1000000, 'f', f.Decimals, 64) + "m"
	case printFormatThousands:
		return strconv.FormatFloat(value/1000, 'f', f.Decimals, 64) + "k"
	default:
		return strconv.FormatFloat(value, 'f', f.Decimals, 64)
	}
}
