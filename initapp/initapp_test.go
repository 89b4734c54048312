// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"image"
	"image/color"
	"maycharts/calendar"
	"maycharts/config"
	"maycharts/resolution"
	"maycharts/widgets"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCandles(t *testing.T) {
	entries := SampleCandles(200, 1)

	require.Len(t, entries, 200)
	assert.Equal(t, samplePrice, entries[0].Open)
	for i, e := range entries {
		assert.Equal(t, float64(i), e.X)
		assert.GreaterOrEqual(t, e.High, max(e.Open, e.Close))
		assert.LessOrEqual(t, e.Low, min(e.Open, e.Close))
		if i > 0 {
			assert.Equal(t, entries[i-1].Close, e.Open)
		}
	}
	assert.Equal(t, entries, SampleCandles(200, 1))
	assert.NotEqual(t, entries, SampleCandles(200, 2))
}

func TestNewChartWithTradingDayLabels(t *testing.T) {
	cal := calendar.NewNYSECalendar()
	times := cal.CandleTimes(resolution.OneDay, time.Date(2023, 6, 1, 0, 0, 0, 0, cal.Location()), 50)
	labels := calendar.IndexFormatter{Times: times, Layout: resolution.OneDay.FormatString()}

	v, err := NewChart(config.NewChartConfig(), widgets.NewDarkPlotTheme(), SampleCandles(len(times), 1), labels)

	require.NoError(t, err)
	require.NotNil(t, v.DataSet())
}

func hasPixelOtherThan(img image.Image, bg color.NRGBA) bool {
	br, bgG, bb, ba := bg.RGBA()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r != br || g != bgG || bl != bb || a != ba {
				return true
			}
		}
	}
	return false
}

func TestRender(t *testing.T) {
	th := widgets.NewDarkPlotTheme()
	v, err := NewChart(config.NewChartConfig(), th, SampleCandles(100, 1), nil)
	require.NoError(t, err)

	dc, err := Render(v, 320, 200, th.BackgroundColor)
	require.NoError(t, err)
	defer func() { _ = dc.Close() }()

	assert.Equal(t, image.Rect(0, 0, 320, 200), dc.Image().Bounds())
	assert.True(t, hasPixelOtherThan(dc.Image(), th.BackgroundColor))
	assert.Positive(t, v.Scroll().MaxScroll())
}

func TestRenderPNG(t *testing.T) {
	th := widgets.NewLightPlotTheme()
	v, err := NewChart(config.NewChartConfig(), th, SampleCandles(30, 3), nil)
	require.NoError(t, err)
	fileName := filepath.Join(t.TempDir(), "chart.png")

	require.NoError(t, RenderPNG(v, 200, 100, th.BackgroundColor, fileName))

	info, err := os.Stat(fileName)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTerminateStoresZoom(t *testing.T) {
	c := config.NewTestConfig()
	a := NewChartApp(c)
	require.NoError(t, a.Initialize(SampleCandles(100, 1), nil))
	require.True(t, a.widget.View.OnPinch(0, 2))

	a.terminate()

	cfg, err := c.Copy()
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Zoom)
}

func TestRunWithoutInitialize(t *testing.T) {
	assert.Error(t, NewChartApp(config.NewTestConfig()).Run(t.Context()))
}
