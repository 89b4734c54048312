// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package initapp creates charts from the stored configuration and shows
// them in a window or renders them to an image.
package initapp

import (
	"context"
	"errors"
	"log"
	"maycharts/config"
	"maycharts/formatter"
	"maycharts/stockval"
	"maycharts/stockviz"
	"maycharts/widgets"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// NewChart creates a candle chart of entries configured by cfg. If labels is
// not nil, it replaces the formatter of the horizontal axes.
func NewChart(cfg config.ChartConfig, th *widgets.PlotTheme, entries []stockval.CandleEntry, labels formatter.ValueFormatter) (*stockviz.ChartView, error) {
	v, err := stockviz.NewChartViewFromConfig(cfg, th)
	if err != nil {
		return nil, err
	}
	ds, err := stockviz.NewCandleDataSetFromConfig(cfg, th, entries)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		v.SetHorizontalValueFormatter(labels)
	}
	v.SetDataSet(ds)
	return v, nil
}

type ChartApp struct {
	config   config.Config
	window   *app.Window
	theme    *widgets.PlotTheme
	matTheme *material.Theme
	widget   *stockviz.ChartWidget
}

func NewChartApp(c config.Config) *ChartApp {
	return &ChartApp{config: c}
}

func (a *ChartApp) Initialize(entries []stockval.CandleEntry, labels formatter.ValueFormatter) error {
	cfg, err := a.config.Copy()
	if err != nil {
		return err
	}
	a.theme = widgets.NewPlotTheme(cfg.LightTheme)
	a.matTheme = a.theme.MaterialTheme()
	v, err := NewChart(cfg, a.theme, entries, labels)
	if err != nil {
		return err
	}
	a.widget = stockviz.NewChartWidget(v)
	return nil
}

// Run shows the chart until the window is closed or ctx is done.
func (a *ChartApp) Run(ctx context.Context) error {
	if a.widget == nil {
		return errors.New("chart app is not initialized")
	}
	a.createWindow()
	a.widget.View.RequestRedraw = a.window.Invalidate
	stop := context.AfterFunc(ctx, func() {
		a.window.Perform(system.ActionClose)
	})
	defer stop()
	err := a.handleEvents()
	a.terminate()
	return err
}

func (a *ChartApp) createWindow() {
	a.window = app.NewWindow(
		app.Title(a.config.GetAppName()),
		app.Size(unit.Dp(1280), unit.Dp(720)),
	)
	a.window.Perform(system.ActionCenter)
}

func (a *ChartApp) handleEvents() error {
	var ops op.Ops
	for e := range a.window.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, a.theme.BackgroundColor)
			a.widget.Layout(gtx, a.matTheme)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// terminate stores the zoom, so that the chart is shown the same way next time.
func (a *ChartApp) terminate() {
	cfg, err := a.config.Lock()
	if err != nil {
		log.Printf("error reading configuration: %v", err)
		return
	}
	cfg.Zoom = a.widget.View.Zoom()
	if err = a.config.Unlock(cfg); err != nil {
		log.Printf("error saving configuration: %v", err)
	}
}
