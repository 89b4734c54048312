// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"errors"
	"fmt"
	"maycharts/axis"
	"maycharts/config"
	"maycharts/formatter"
	"maycharts/indapi"
	"maycharts/indapi/indicators"
	"maycharts/marker"
	"maycharts/resolution"
	"maycharts/stockplot"
	"maycharts/stockval"
	"maycharts/widgets"
)

// NewChartViewFromConfig creates a view with axes, marker and interaction
// settings of cfg in the colors of th. The data set is set separately,
// see NewCandleDataSetFromConfig.
func NewChartViewFromConfig(cfg config.ChartConfig, th *widgets.PlotTheme) (*ChartView, error) {
	v := NewChartView()
	v.SetLayoutDirection(!cfg.RightToLeft)
	v.SetZoomEnabled(!cfg.ZoomDisabled)

	xFormatter, err := horizontalFormatter(cfg.Resolution)
	if err != nil {
		return nil, err
	}
	axes := []struct {
		p   axis.Position
		cfg *config.AxisConfig
		set func(axis.Renderer)
	}{
		{axis.PositionStart, cfg.Axes.Start, v.SetStartAxis},
		{axis.PositionTop, cfg.Axes.Top, v.SetTopAxis},
		{axis.PositionEnd, cfg.Axes.End, v.SetEndAxis},
		{axis.PositionBottom, cfg.Axes.Bottom, v.SetBottomAxis},
	}
	for _, a := range axes {
		if a.cfg == nil {
			continue
		}
		r := axis.New(a.p, th.AxesTextColor, th.AxesColor, th.GridColor, a.cfg.TextSize)
		r.MaxLabelCount = a.cfg.MaxLabelCount
		r.LabelSpacing = max(a.cfg.LabelSpacing, 1)
		if a.p.IsVertical() || xFormatter == nil {
			r.ValueFormatter = formatter.NewDecimalValueFormatter(a.cfg.Decimals)
		} else {
			r.ValueFormatter = xFormatter
		}
		a.set(r)
	}

	if !cfg.Marker.Disabled {
		mk, err := newMarker(cfg.Marker, th)
		if err != nil {
			return nil, fmt.Errorf("invalid marker configuration: %w", err)
		}
		v.SetMarker(mk)
	}
	return v, nil
}

func horizontalFormatter(res string) (formatter.ValueFormatter, error) {
	if res == "" {
		return nil, nil
	}
	r, err := resolution.Parse(res)
	if err != nil {
		return nil, err
	}
	return resolution.Formatter{Resolution: r}, nil
}

func newMarker(cfg config.MarkerConfig, th *widgets.PlotTheme) (*marker.Default, error) {
	mk := marker.NewDefault(th.HoverTextColor, th.HoverBgColor, th.HoverLineColor, cfg.TextSize)
	mk.ValueFormatter = formatter.NewDecimalValueFormatter(cfg.Decimals)
	if cfg.Guideline != nil {
		guideline, err := config.ResolveLineComponent(*cfg.Guideline, *mk.Guideline)
		if err != nil {
			return nil, fmt.Errorf("guideline: %w", err)
		}
		mk.Guideline = &guideline
	}
	if cfg.Indicator != nil {
		indicator, err := config.ResolveComponent(*cfg.Indicator)
		if err != nil {
			return nil, fmt.Errorf("indicator: %w", err)
		}
		mk.Indicator = indicator
	}
	if cfg.Background != nil {
		background, err := config.ResolveComponent(*cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		mk.Label.Background = background
	}
	return mk, nil
}

// NewCandleDataSetFromConfig creates a candle data set for entries with the
// candle style, initial zoom and indicator overlays of cfg.
func NewCandleDataSetFromConfig(cfg config.ChartConfig, th *widgets.PlotTheme, entries []stockval.CandleEntry) (*stockplot.CandleDataSet, error) {
	candles, err := cfg.Candles.BuildCandles(th.CandleColors())
	if err != nil {
		return nil, err
	}
	ds := stockplot.NewCandleDataSet(candles, entries)
	ds.SetZoom(cfg.Zoom)
	ds.HorizontalScrollDisabled = cfg.HorizontalScrollDisabled

	inds, err := createIndicators(cfg.Indicators)
	if err != nil {
		return nil, err
	}
	ds.SetOverlays(indicators.Overlays(inds, ds, th.OverlayColor, th.OverlayThickness))
	return ds, nil
}

func createIndicators(cfgs []config.IndicatorConfig) ([]indapi.IndicatorData, error) {
	var errs []error
	inds := make([]indapi.IndicatorData, 0, len(cfgs))
	for _, c := range cfgs {
		colors, err := c.ParseColors()
		if err != nil {
			errs = append(errs, fmt.Errorf("indicator %s: %w", c.IndicatorId, err))
			continue
		}
		ind, err := indicators.Create(c.IndicatorId, c.Properties, colors)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inds = append(inds, ind)
	}
	return inds, errors.Join(errs...)
}
