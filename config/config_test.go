// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image/color"
	"maycharts/candle"
	"maycharts/stockval"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testColors = candle.DefaultColors{
	Green: color.NRGBA{G: 255, A: 255},
	Red:   color.NRGBA{R: 255, A: 255},
	Gray:  color.NRGBA{R: 128, G: 128, B: 128, A: 255},
}

func TestDefaultsRoundTrip(t *testing.T) {
	c := NewChartConfig()
	c.RemoveDefaults()
	assert.Zero(t, c.Zoom)
	assert.Empty(t, c.Candles.Style)
	assert.Equal(t, AxisConfig{}, *c.Axes.End)

	c.RestoreDefaults()
	assert.Empty(t, cmp.Diff(NewChartConfig(), c))
}

func TestSanitize(t *testing.T) {
	c := ChartConfig{
		Zoom:       100,
		Resolution: "2h",
		Candles:    CandleConfig{Style: "fancy"},
		Axes:       AxesConfig{Start: &AxisConfig{TextSize: -1, MaxLabelCount: -5}},
		Indicators: []IndicatorConfig{{IndicatorId: ""}, {IndicatorId: "sma"}},
	}

	c.Sanitize()

	assert.Equal(t, 1.0, c.Zoom)
	assert.Empty(t, c.Resolution)
	assert.Equal(t, CandleStyleStandard, c.Candles.Style)
	assert.Equal(t, *NewAxisConfig(), *c.Axes.Start)
	assert.Nil(t, c.Axes.End)
	assert.Len(t, c.Indicators, 1)
}

func TestFileConfigWithoutFile(t *testing.T) {
	g := NewFileConfig(filepath.Join(t.TempDir(), "sub"))

	c, err := g.Copy()

	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(NewChartConfig(), c))
}

func TestFileConfigWriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	g := NewFileConfig(dir)

	c, err := g.Lock()
	require.NoError(t, err)
	c.RightToLeft = true
	c.Axes.End = nil
	c.Axes.Start = &AxisConfig{TextSize: 14}
	c.Candles = CandleConfig{Style: CandleStyleHollow, Bodies: map[string]LineComponentStyle{
		"increasing/increasing": {Color: "#00ff00", Thickness: 10},
	}}
	require.NoError(t, g.Unlock(c))

	_, err = os.Stat(filepath.Join(dir, configFileName+".tmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	read, err := NewFileConfig(dir).Copy()
	require.NoError(t, err)
	expected, err := g.Copy()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(expected, read))
	assert.True(t, read.RightToLeft)
	assert.Nil(t, read.Axes.End)
	assert.Equal(t, 14.0, read.Axes.Start.TextSize)
	assert.Equal(t, DefaultMaxLabelCount, read.Axes.Start.MaxLabelCount)
}

func TestFileConfigDoesNotStoreDefaults(t *testing.T) {
	dir := t.TempDir()
	g := NewFileConfig(dir)
	c, err := g.Lock()
	require.NoError(t, err)
	c.LightTheme = true
	require.NoError(t, g.Unlock(c))

	file, err := os.ReadFile(filepath.Join(dir, configFileName))
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, yaml.Unmarshal(file, &stored))
	assert.Equal(t, 1, stored["fileversion"])
	assert.NotContains(t, stored, "zoom")
	assert.Equal(t, true, stored["lighttheme"])
}

func TestUnchangedConfigIsNotWritten(t *testing.T) {
	dir := t.TempDir()
	g := NewFileConfig(dir)

	c, err := g.Lock()
	require.NoError(t, err)
	require.NoError(t, g.Unlock(c))

	_, err = os.Stat(filepath.Join(dir, configFileName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewerFileVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("fileversion: 99\n"), 0600))

	_, err := NewFileConfig(dir).Copy()

	assert.ErrorIs(t, err, ErrNewerVersion)
}

func TestInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("fileversion: [\n"), 0600))

	_, err := NewFileConfig(dir).Lock()

	assert.Error(t, err)
}

func TestTestConfig(t *testing.T) {
	g := NewTestConfig()
	c, err := g.Lock()
	require.NoError(t, err)
	c.Zoom = 2
	require.NoError(t, g.Unlock(c))

	copied, err := g.Copy()
	require.NoError(t, err)
	assert.Equal(t, 2.0, copied.Zoom)
	assert.Equal(t, "test", g.GetAppName())
}

func TestBuildStandardCandles(t *testing.T) {
	c := CandleConfig{Bodies: map[string]LineComponentStyle{
		"decreasing": {Thickness: 12},
	}}

	cfg, err := c.BuildCandles(testColors)

	require.NoError(t, err)
	dec := cfg.Candle(stockval.TrendDecreasing, stockval.TrendIncreasing)
	assert.Equal(t, 12.0, dec.Body.Thickness)
	assert.Equal(t, testColors.Red, dec.Body.Color)
	assert.Equal(t, testColors.Green, cfg.Candle(stockval.TrendIncreasing, stockval.TrendZero).Body.Color)
}

func TestBuildHollowCandles(t *testing.T) {
	c := CandleConfig{Style: CandleStyleHollow, Bodies: map[string]LineComponentStyle{
		"increasing/increasing": {StrokeColor: "#0000ff"},
	}}

	cfg, err := c.BuildCandles(testColors)

	require.NoError(t, err)
	incInc := cfg.Candle(stockval.TrendIncreasing, stockval.TrendIncreasing)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, incInc.Body.StrokeColor)
	assert.Equal(t, color.NRGBA{}, incInc.Body.Color)
	// Derived from increasing/increasing, recolored by the relative trend.
	assert.Equal(t, testColors.Red, cfg.Candle(stockval.TrendIncreasing, stockval.TrendDecreasing).Body.StrokeColor)
	assert.Equal(t, testColors.Green, cfg.Candle(stockval.TrendDecreasing, stockval.TrendIncreasing).Body.Color)
}

func TestBuildCandlesRejectsUnknownKeys(t *testing.T) {
	for _, c := range []CandleConfig{
		{Bodies: map[string]LineComponentStyle{"increasing/zero": {}}},
		{Style: CandleStyleHollow, Bodies: map[string]LineComponentStyle{"increasing": {}}},
		{Bodies: map[string]LineComponentStyle{"up": {}}},
	} {
		_, err := c.BuildCandles(testColors)
		assert.Error(t, err)
	}
	c := CandleConfig{Bodies: map[string]LineComponentStyle{"zero": {Color: "x"}}}
	_, err := c.BuildCandles(testColors)
	assert.ErrorIs(t, err, ErrInvalidColor)
}
