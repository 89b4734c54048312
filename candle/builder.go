// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package candle

import (
	"maycharts/stockval"
)

// StandardBuilder configures candles by their absolute trend only.
// Unset entries are derived:
//   - AbsolutelyIncreasing defaults to a filled green candle,
//   - AbsolutelyZero defaults to AbsolutelyIncreasing in gray,
//   - AbsolutelyDecreasing defaults to AbsolutelyIncreasing in red.
type StandardBuilder struct {
	AbsolutelyIncreasing *Candle
	AbsolutelyZero       *Candle
	AbsolutelyDecreasing *Candle
}

func (b *StandardBuilder) Build(colors DefaultColors) *Config {
	increasing := orDefault(b.AbsolutelyIncreasing, func() Candle { return SharpFilled(colors.Green) })
	zero := orDefault(b.AbsolutelyZero, func() Candle { return increasing.CopyWithColor(colors.Gray) })
	decreasing := orDefault(b.AbsolutelyDecreasing, func() Candle { return increasing.CopyWithColor(colors.Red) })

	var cfg Config
	for rel := range stockval.NumTrends {
		cfg.table[stockval.TrendIncreasing][rel] = increasing
		cfg.table[stockval.TrendZero][rel] = zero
		cfg.table[stockval.TrendDecreasing][rel] = decreasing
	}
	mustBeComplete(&cfg)
	return &cfg
}

func orDefault(c *Candle, f func() Candle) *Candle {
	if c != nil {
		v := *c
		return &v
	}
	d := f()
	return &d
}

type slot struct {
	abs stockval.Trend
	rel stockval.Trend
}

type recolor int

const (
	keepColor recolor = iota
	toRed
	toGray
)

// hollowFallback describes how an unset slot of the hollow builder is resolved.
// Either the slot copies from another, already resolved slot (optionally
// recolored), or it is a root slot with a default candle.
type hollowFallback struct {
	target  slot
	from    *slot
	recolor recolor
	root    func(colors DefaultColors) Candle
}

func ref(abs, rel stockval.Trend) *slot {
	return &slot{abs: abs, rel: rel}
}

// The table is processed in order, every "from" slot is resolved before it is referenced.
// Rows are resolved within the same absolute trend first. Absolutely zero
// candles follow the absolutely increasing row.
var hollowFallbacks = []hollowFallback{
	{
		target: slot{stockval.TrendIncreasing, stockval.TrendIncreasing},
		root:   func(colors DefaultColors) Candle { return SharpHollow(colors.Green) },
	},
	{
		target:  slot{stockval.TrendIncreasing, stockval.TrendZero},
		from:    ref(stockval.TrendIncreasing, stockval.TrendIncreasing),
		recolor: toGray,
	},
	{
		target:  slot{stockval.TrendIncreasing, stockval.TrendDecreasing},
		from:    ref(stockval.TrendIncreasing, stockval.TrendIncreasing),
		recolor: toRed,
	},
	{
		target: slot{stockval.TrendZero, stockval.TrendIncreasing},
		from:   ref(stockval.TrendIncreasing, stockval.TrendIncreasing),
	},
	{
		target: slot{stockval.TrendZero, stockval.TrendZero},
		from:   ref(stockval.TrendIncreasing, stockval.TrendZero),
	},
	{
		target: slot{stockval.TrendZero, stockval.TrendDecreasing},
		from:   ref(stockval.TrendIncreasing, stockval.TrendDecreasing),
	},
	{
		target: slot{stockval.TrendDecreasing, stockval.TrendIncreasing},
		root:   func(colors DefaultColors) Candle { return SharpFilled(colors.Green) },
	},
	{
		target:  slot{stockval.TrendDecreasing, stockval.TrendZero},
		from:    ref(stockval.TrendDecreasing, stockval.TrendIncreasing),
		recolor: toGray,
	},
	{
		target:  slot{stockval.TrendDecreasing, stockval.TrendDecreasing},
		from:    ref(stockval.TrendDecreasing, stockval.TrendIncreasing),
		recolor: toRed,
	},
}

// HollowBuilder configures candles by absolute and relative trend.
// By default, candles closing above their open are hollow and candles closing
// below their open are filled. The color follows the relative trend.
type HollowBuilder struct {
	AbsolutelyIncreasingRelativelyIncreasing *Candle
	AbsolutelyIncreasingRelativelyZero       *Candle
	AbsolutelyIncreasingRelativelyDecreasing *Candle
	AbsolutelyZeroRelativelyIncreasing       *Candle
	AbsolutelyZeroRelativelyZero             *Candle
	AbsolutelyZeroRelativelyDecreasing       *Candle
	AbsolutelyDecreasingRelativelyIncreasing *Candle
	AbsolutelyDecreasingRelativelyZero       *Candle
	AbsolutelyDecreasingRelativelyDecreasing *Candle
}

func (b *HollowBuilder) slots() [stockval.NumTrends][stockval.NumTrends]*Candle {
	return [stockval.NumTrends][stockval.NumTrends]*Candle{
		stockval.TrendIncreasing: {
			b.AbsolutelyIncreasingRelativelyIncreasing,
			b.AbsolutelyIncreasingRelativelyZero,
			b.AbsolutelyIncreasingRelativelyDecreasing,
		},
		stockval.TrendZero: {
			b.AbsolutelyZeroRelativelyIncreasing,
			b.AbsolutelyZeroRelativelyZero,
			b.AbsolutelyZeroRelativelyDecreasing,
		},
		stockval.TrendDecreasing: {
			b.AbsolutelyDecreasingRelativelyIncreasing,
			b.AbsolutelyDecreasingRelativelyZero,
			b.AbsolutelyDecreasingRelativelyDecreasing,
		},
	}
}

func (b *HollowBuilder) Build(colors DefaultColors) *Config {
	var cfg Config
	for abs, row := range b.slots() {
		for rel, c := range row {
			if c != nil {
				v := *c
				cfg.table[abs][rel] = &v
			}
		}
	}
	for _, f := range hollowFallbacks {
		if cfg.table[f.target.abs][f.target.rel] != nil {
			continue
		}
		var c Candle
		if f.from != nil {
			src := cfg.table[f.from.abs][f.from.rel]
			if src == nil {
				panic("hollow candle fallback references unresolved slot")
			}
			c = applyRecolor(*src, f.recolor, colors)
		} else {
			c = f.root(colors)
		}
		cfg.table[f.target.abs][f.target.rel] = &c
	}
	mustBeComplete(&cfg)
	return &cfg
}

func applyRecolor(c Candle, r recolor, colors DefaultColors) Candle {
	switch r {
	case toRed:
		return c.CopyWithColor(colors.Red)
	case toGray:
		return c.CopyWithColor(colors.Gray)
	default:
		return c
	}
}

func mustBeComplete(cfg *Config) {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
}
