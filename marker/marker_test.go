// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package marker

import (
	"image/color"
	"maycharts/formatter"
	"maycharts/mock"
	"maycharts/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	textColor = color.NRGBA{A: 255}
	bgColor   = color.NRGBA{R: 74, G: 74, B: 107, A: 255}
	lineColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	green     = color.NRGBA{G: 255, A: 255}
)

func TestDefaultInsets(t *testing.T) {
	m := NewDefault(textColor, bgColor, lineColor, 10)

	top, bottom := m.Insets(mock.NewCanvas(), &stockval.AxisModel{})

	// text 10 + 2*2 padding + margin 2
	assert.Equal(t, 16.0, top)
	assert.Zero(t, bottom)

	m.Label = nil
	top, _ = m.Insets(mock.NewCanvas(), &stockval.AxisModel{})
	assert.Zero(t, top)
}

func TestDefaultDraw(t *testing.T) {
	m := NewDefault(textColor, bgColor, lineColor, 10)
	m.ValueFormatter = formatter.NewDecimalValueFormatter(2)
	c := mock.NewCanvas()
	bounds := stockval.Bounds{Left: 0, Top: 20, Right: 200, Bottom: 120}
	entries := []MarkedEntry{
		{Index: 3, Location: stockval.Point{X: 70, Y: 50}, Value: 12.5, Color: green},
	}

	m.Draw(c, bounds, entries, &stockval.AxisModel{})

	require.Equal(t, []string{"12.50"}, c.Texts())
	// guideline, indicator, label background, label text
	require.Len(t, c.Ops, 4)
	assert.Equal(t, lineColor, c.Ops[0].Color)
	assert.Equal(t, 20.0, c.Ops[0].Bounds.Top)
	assert.Equal(t, 120.0, c.Ops[0].Bounds.Bottom)
	assert.Equal(t, green, c.Ops[1].Color)
	assert.Equal(t, stockval.Bounds{Left: 66, Top: 46, Right: 74, Bottom: 54}, c.Ops[1].Bounds)
	assert.Equal(t, bgColor, c.Ops[2].Color)
	assert.Equal(t, 18.0, c.Ops[2].Bounds.Bottom)
}

func TestDefaultLabelStaysInBounds(t *testing.T) {
	m := NewDefault(textColor, bgColor, lineColor, 10)
	c := mock.NewCanvas()
	bounds := stockval.Bounds{Left: 0, Top: 20, Right: 200, Bottom: 120}

	m.Draw(c, bounds, []MarkedEntry{{Location: stockval.Point{X: 199, Y: 50}, Value: 1000, Color: green}}, &stockval.AxisModel{})

	bg := c.Ops[c.IndexOf(func(o mock.Op) bool { return o.Color == bgColor })]
	assert.InDelta(t, 200, bg.Bounds.Right, stockval.NearZero)
}

func TestDefaultDrawWithoutEntries(t *testing.T) {
	m := NewDefault(textColor, bgColor, lineColor, 10)
	c := mock.NewCanvas()

	m.Draw(c, stockval.Bounds{Right: 100, Bottom: 100}, nil, &stockval.AxisModel{})

	assert.Empty(t, c.Ops)
}
