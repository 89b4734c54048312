// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"image/color"
	"maycharts/candle"
	"maycharts/chartlog"
	"maycharts/resolution"
	"maycharts/zoom"
	"slices"
	"strings"

	"github.com/barkimedes/go-deepcopy"
)

type CandleStyle string

const (
	CandleStyleStandard CandleStyle = "standard"
	CandleStyleHollow   CandleStyle = "hollow"
)

// Keys of CandleConfig.Bodies. Standard candles use the absolute trend only,
// hollow candles use "<absolute>/<relative>", e.g. "increasing/decreasing".
var trendNames = []string{"increasing", "zero", "decreasing"}

type CandleConfig struct {
	Style  CandleStyle                   `yaml:",omitempty"`
	Bodies map[string]LineComponentStyle `yaml:",omitempty"`
}

type AxisConfig struct {
	TextSize      float64 `yaml:",omitempty"`
	MaxLabelCount int     `yaml:",omitempty"`
	LabelSpacing  int     `yaml:",omitempty"`
	Decimals      int     `yaml:",omitempty"`
}

// AxesConfig holds one entry per axis position, nil hides the axis.
type AxesConfig struct {
	Start  *AxisConfig `yaml:",omitempty"`
	Top    *AxisConfig `yaml:",omitempty"`
	End    *AxisConfig `yaml:",omitempty"`
	Bottom *AxisConfig `yaml:",omitempty"`
}

type MarkerConfig struct {
	Disabled   bool                `yaml:",omitempty"`
	TextSize   float64             `yaml:",omitempty"`
	Decimals   int                 `yaml:",omitempty"`
	Guideline  *LineComponentStyle `yaml:",omitempty"`
	Indicator  *ComponentStyle     `yaml:",omitempty"`
	Background *ComponentStyle     `yaml:",omitempty"`
}

// ChartConfig is everything stored about one chart.
type ChartConfig struct {
	LightTheme               bool `yaml:",omitempty"`
	RightToLeft              bool `yaml:",omitempty"`
	ZoomDisabled             bool `yaml:",omitempty"`
	HorizontalScrollDisabled bool `yaml:",omitempty"`
	// Zoom is the initial zoom factor.
	Zoom float64 `yaml:",omitempty"`
	// Resolution of the candles, e.g. "1d". If set, X values are candle units
	// and the horizontal axes show dates.
	Resolution string `yaml:",omitempty"`
	Candles    CandleConfig
	Axes       AxesConfig
	Marker     MarkerConfig
	Indicators []IndicatorConfig
}

const (
	DefaultTextSize      = 12.0
	DefaultMaxLabelCount = 100
)

func NewAxisConfig() *AxisConfig {
	return &AxisConfig{TextSize: DefaultTextSize, MaxLabelCount: DefaultMaxLabelCount, LabelSpacing: 1}
}

// NewChartConfig returns a price chart with an axis on the end side and one on the bottom.
func NewChartConfig() ChartConfig {
	return ChartConfig{
		Zoom:    zoom.DefaultZoom,
		Candles: CandleConfig{Style: CandleStyleStandard},
		Axes: AxesConfig{
			End:    NewAxisConfig(),
			Bottom: NewAxisConfig(),
		},
		Marker: MarkerConfig{TextSize: DefaultTextSize},
		Indicators: []IndicatorConfig{
			{IndicatorId: "bollinger"},
		},
	}
}

func (c *ChartConfig) deepCopy() ChartConfig {
	v, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *v.(*ChartConfig)
}

// Sanitize replaces invalid values by defaults.
func (c *ChartConfig) Sanitize() {
	if c.Zoom != 0 && (c.Zoom < zoom.MinZoom || c.Zoom > zoom.MaxZoom) {
		chartlog.Logger().Warn("invalid zoom in configuration", "zoom", c.Zoom)
		c.Zoom = 0
	}
	if _, err := resolution.Parse(c.Resolution); c.Resolution != "" && err != nil {
		chartlog.Logger().Warn("invalid resolution in configuration", "resolution", c.Resolution)
		c.Resolution = ""
	}
	switch c.Candles.Style {
	case "", CandleStyleStandard, CandleStyleHollow:
	default:
		chartlog.Logger().Warn("unknown candle style in configuration", "style", c.Candles.Style)
		c.Candles.Style = ""
	}
	for _, a := range c.Axes.all() {
		if *a != nil {
			(*a).sanitize()
		}
	}
	if c.Marker.TextSize < 0 {
		c.Marker.TextSize = 0
	}
	c.Marker.Decimals = max(c.Marker.Decimals, 0)
	c.Indicators = slices.DeleteFunc(c.Indicators, func(i IndicatorConfig) bool {
		return i.IndicatorId == ""
	})
	c.RestoreDefaults()
}

func (a *AxisConfig) sanitize() {
	a.TextSize = max(a.TextSize, 0)
	a.MaxLabelCount = max(a.MaxLabelCount, 0)
	a.LabelSpacing = max(a.LabelSpacing, 0)
	a.Decimals = max(a.Decimals, 0)
}

func (a *AxesConfig) all() []**AxisConfig {
	return []**AxisConfig{&a.Start, &a.Top, &a.End, &a.Bottom}
}

// We do not want to store default values in the configuration file,
// so that changed defaults apply to existing files.
func (c *ChartConfig) RemoveDefaults() {
	if c.Zoom == zoom.DefaultZoom {
		c.Zoom = 0
	}
	if c.Candles.Style == CandleStyleStandard {
		c.Candles.Style = ""
	}
	def := NewAxisConfig()
	for _, a := range c.Axes.all() {
		if *a == nil {
			continue
		}
		if (*a).TextSize == def.TextSize {
			(*a).TextSize = 0
		}
		if (*a).MaxLabelCount == def.MaxLabelCount {
			(*a).MaxLabelCount = 0
		}
		if (*a).LabelSpacing == def.LabelSpacing {
			(*a).LabelSpacing = 0
		}
	}
	if c.Marker.TextSize == DefaultTextSize {
		c.Marker.TextSize = 0
	}
}

// Restore the default values which are not stored in the configuration file.
func (c *ChartConfig) RestoreDefaults() {
	if c.Zoom == 0 {
		c.Zoom = zoom.DefaultZoom
	}
	if c.Candles.Style == "" {
		c.Candles.Style = CandleStyleStandard
	}
	def := NewAxisConfig()
	for _, a := range c.Axes.all() {
		if *a == nil {
			continue
		}
		if (*a).TextSize == 0 {
			(*a).TextSize = def.TextSize
		}
		if (*a).MaxLabelCount == 0 {
			(*a).MaxLabelCount = def.MaxLabelCount
		}
		if (*a).LabelSpacing == 0 {
			(*a).LabelSpacing = def.LabelSpacing
		}
	}
	if c.Marker.TextSize == 0 {
		c.Marker.TextSize = DefaultTextSize
	}
}

// BuildCandles resolves the candle settings into a complete appearance table.
func (c *CandleConfig) BuildCandles(colors candle.DefaultColors) (*candle.Config, error) {
	for key := range c.Bodies {
		if !c.isValidKey(key) {
			return nil, fmt.Errorf("unknown candle %q for style %q", key, c.Style)
		}
	}
	if c.Style == CandleStyleHollow {
		return c.buildHollow(colors)
	}
	var err error
	var b candle.StandardBuilder
	slots := []**candle.Candle{&b.AbsolutelyIncreasing, &b.AbsolutelyZero, &b.AbsolutelyDecreasing}
	for i, name := range trendNames {
		if *slots[i], err = c.resolve(name, candle.SharpFilled(trendColor(colors, i))); err != nil {
			return nil, err
		}
	}
	return b.Build(colors), nil
}

func (c *CandleConfig) buildHollow(colors candle.DefaultColors) (*candle.Config, error) {
	var err error
	var b candle.HollowBuilder
	slots := [][]**candle.Candle{
		{&b.AbsolutelyIncreasingRelativelyIncreasing, &b.AbsolutelyIncreasingRelativelyZero, &b.AbsolutelyIncreasingRelativelyDecreasing},
		{&b.AbsolutelyZeroRelativelyIncreasing, &b.AbsolutelyZeroRelativelyZero, &b.AbsolutelyZeroRelativelyDecreasing},
		{&b.AbsolutelyDecreasingRelativelyIncreasing, &b.AbsolutelyDecreasingRelativelyZero, &b.AbsolutelyDecreasingRelativelyDecreasing},
	}
	for i, abs := range trendNames {
		for j, rel := range trendNames {
			def := candle.SharpHollow(trendColor(colors, j))
			if abs == "decreasing" {
				def = candle.SharpFilled(trendColor(colors, j))
			}
			if *slots[i][j], err = c.resolve(abs+"/"+rel, def); err != nil {
				return nil, err
			}
		}
	}
	return b.Build(colors), nil
}

func (c *CandleConfig) isValidKey(key string) bool {
	abs, rel, hollow := strings.Cut(key, "/")
	if hollow != (c.Style == CandleStyleHollow) {
		return false
	}
	return slices.Contains(trendNames, abs) && (!hollow || slices.Contains(trendNames, rel))
}

func trendColor(colors candle.DefaultColors, i int) color.NRGBA {
	return []color.NRGBA{colors.Green, colors.Gray, colors.Red}[i]
}

// resolve returns nil if the candle is not configured.
func (c *CandleConfig) resolve(key string, def candle.Candle) (*candle.Candle, error) {
	s, ok := c.Bodies[key]
	if !ok {
		return nil, nil
	}
	body, err := ResolveLineComponent(s, def.Body)
	if err != nil {
		return nil, fmt.Errorf("candle %q: %w", key, err)
	}
	cd := candle.NewCandle(body)
	return &cd, nil
}
