// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package candle describes the appearance of candlesticks and resolves
// sparse user settings into a complete appearance table.
package candle

import (
	"fmt"
	"image/color"
	"maycharts/component"
	"maycharts/stockval"
)

const (
	DefaultBodyThickness = 8.0
	DefaultStrokeWidth   = 1.0
	DefaultWickThickness = 1.0
)

// Candle is the appearance of a single candlestick glyph.
type Candle struct {
	Body       component.LineComponent
	TopWick    component.LineComponent
	BottomWick component.LineComponent
}

// NewCandle creates a candle with thin wicks in the visible color of body.
func NewCandle(body component.LineComponent) Candle {
	wick := component.NewLineComponent(body.VisibleColor(), DefaultWickThickness)
	return Candle{Body: body, TopWick: wick, BottomWick: wick}
}

// SharpFilled creates a candle with a solid rectangular body.
func SharpFilled(c color.NRGBA) Candle {
	return NewCandle(component.NewLineComponent(c, DefaultBodyThickness))
}

// SharpHollow creates a candle whose body is only outlined.
func SharpHollow(c color.NRGBA) Candle {
	return NewCandle(component.LineComponent{
		Thickness:   DefaultBodyThickness,
		StrokeColor: c,
		StrokeWidth: DefaultStrokeWidth,
	})
}

// CopyWithColor recolors all parts of the candle. Shape and thickness are kept,
// transparent fills and strokes stay transparent.
func (c Candle) CopyWithColor(col color.NRGBA) Candle {
	return Candle{
		Body:       c.Body.CopyWithColor(col),
		TopWick:    c.TopWick.CopyWithColor(col),
		BottomWick: c.BottomWick.CopyWithColor(col),
	}
}

// MaxThickness is the widest part of the candle.
func (c Candle) MaxThickness() float64 {
	return max(c.Body.Thickness, c.TopWick.Thickness, c.BottomWick.Thickness)
}

// Config maps absolute and relative trend of a candle to its appearance.
// A Config is created by a builder and read-only afterwards.
type Config struct {
	table [stockval.NumTrends][stockval.NumTrends]*Candle
}

// Candle returns the appearance for a candle whose close compares to its
// open by abs, and to the previous close by rel.
func (c *Config) Candle(abs, rel stockval.Trend) *Candle {
	return c.table[abs][rel]
}

func (c *Config) Validate() error {
	for abs := range stockval.NumTrends {
		for rel := range stockval.NumTrends {
			if c.table[abs][rel] == nil {
				return fmt.Errorf("missing candle for absolute trend %s, relative trend %s", abs, rel)
			}
		}
	}
	return nil
}

// MaxThickness over all configured candles.
func (c *Config) MaxThickness() float64 {
	var t float64
	for abs := range stockval.NumTrends {
		for rel := range stockval.NumTrends {
			if candle := c.table[abs][rel]; candle != nil {
				t = max(t, candle.MaxThickness())
			}
		}
	}
	return t
}

type DefaultColors struct {
	Green color.NRGBA
	Red   color.NRGBA
	Gray  color.NRGBA
}
