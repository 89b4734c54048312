// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package formatter

import (
	"maycharts/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValueFormatter(t *testing.T) {
	f := DefaultValueFormatter{}

	assert.Equal(t, "5", f.FormatValue(5, nil))
	assert.Equal(t, "2.5", f.FormatValue(2.5, nil))
	assert.Equal(t, "-3.25", f.FormatValue(-3.25, nil))
	assert.Equal(t, "0", f.FormatValue(-0.0000001, nil))
	assert.Equal(t, "1200", f.FormatValue(1200, nil))
	assert.Equal(t, "0.000015", f.FormatValue(0.000015, nil))
}

func TestDecimalValueFormatter(t *testing.T) {
	f := NewDecimalValueFormatter(2)

	assert.Equal(t, "1.23", f.FormatValue(1.234, nil))
	assert.Equal(t, "10.00", f.FormatValue(10, nil))
	assert.Equal(t, "0.00", f.FormatValue(-0.001, nil))
}

func TestDecimalValueFormatterAffixes(t *testing.T) {
	f := DecimalValueFormatter{Decimals: 1, Prefix: "$", Suffix: " USD"}

	assert.Equal(t, "$99.5 USD", f.FormatValue(99.5, nil))
}

func TestCompactValueFormatter(t *testing.T) {
	f := CompactValueFormatter{Decimals: 1}

	assert.Equal(t, "1.5k", f.FormatValue(1500, &stockval.AxisModel{MaxY: 5000}))
	assert.Equal(t, "2.0m", f.FormatValue(2000000, &stockval.AxisModel{MaxY: 3000000}))
	assert.Equal(t, "0.5b", f.FormatValue(500000000, &stockval.AxisModel{MaxY: 1000000000}))
	assert.Equal(t, "12.3", f.FormatValue(12.34, &stockval.AxisModel{MaxY: 100}))
	assert.Equal(t, "12.3", f.FormatValue(12.34, nil))
}

func TestFormatterFunc(t *testing.T) {
	var f ValueFormatter = FormatterFunc(func(v float64, m *stockval.AxisModel) string {
		return "x"
	})

	assert.Equal(t, "x", f.FormatValue(1, nil))
}
