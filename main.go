// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"log"
	"log/slog"
	"maycharts/calendar"
	"maycharts/chartlog"
	"maycharts/config"
	"maycharts/initapp"
	"maycharts/resolution"
	"maycharts/widgets"
	"os"
	"strconv"
	"time"

	"gioui.org/app"
	"github.com/joho/godotenv"
)

// Settings are read from the environment or a .env file:
//
//	MAYCHARTS_CONFIG_DIR  configuration directory, default is the user configuration directory
//	MAYCHARTS_CANDLES     number of sample candles, default 300
//	MAYCHARTS_SEED        seed of the sample candles
//	MAYCHARTS_PNG         if set, the chart is written to this file instead of opening a window
//	MAYCHARTS_DEBUG       enables debug logging
const (
	defaultCandleCount = 300
	imageWidth         = 1280
	imageHeight        = 720
)

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("ignoring invalid %s: %v", key, err)
		return def
	}
	return v
}

func main() {
	_ = godotenv.Load()
	level := slog.LevelInfo
	if os.Getenv("MAYCHARTS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	chartlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dir := os.Getenv("MAYCHARTS_CONFIG_DIR")
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			log.Fatal(err)
		}
	}
	c := config.NewFileConfig(dir)
	cfg, err := c.Copy()
	if err != nil {
		log.Fatalf("failed to read configuration: %v", err)
	}

	res := resolution.OneDay
	if cfg.Resolution != "" {
		res, _ = resolution.Parse(cfg.Resolution)
	}
	count := max(envInt("MAYCHARTS_CANDLES", defaultCandleCount), 1)
	cal := calendar.NewNYSECalendar()
	times := cal.CandleTimes(res, res.NthCandleTime(time.Now(), -count), count)
	entries := initapp.SampleCandles(len(times), uint64(envInt("MAYCHARTS_SEED", int(time.Now().Unix()))))
	labels := calendar.IndexFormatter{Times: times, Layout: res.FormatString()}

	if fileName := os.Getenv("MAYCHARTS_PNG"); fileName != "" {
		th := widgets.NewPlotTheme(cfg.LightTheme)
		v, err := initapp.NewChart(cfg, th, entries, labels)
		if err != nil {
			log.Fatalf("failed to create chart: %v", err)
		}
		if err = initapp.RenderPNG(v, imageWidth, imageHeight, th.BackgroundColor, fileName); err != nil {
			log.Fatal(err)
		}
		return
	}

	a := initapp.NewChartApp(c)
	if err = a.Initialize(entries, labels); err != nil {
		log.Fatalf("failed to create chart: %v", err)
	}
	go func() {
		if err := a.Run(context.Background()); err != nil {
			log.Printf("terminating with error: %v", err)
		}
		os.Exit(0)
	}()
	app.Main()
}
