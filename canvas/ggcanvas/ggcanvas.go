// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package ggcanvas draws charts into a software rendered gg context,
// e.g. to write PNG snapshots.
package ggcanvas

import (
	"fmt"
	"image/color"
	"maycharts/canvas"
	"maycharts/chartlog"
	"maycharts/stockval"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

type Canvas struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

var _ canvas.Canvas = (*Canvas)(nil)

// New wraps dc. Text is drawn with the embedded Go Regular font.
func New(dc *gg.Context) (*Canvas, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Canvas{dc: dc, source: source, faces: make(map[float64]text.Face)}, nil
}

func logFailure(op string, err error) {
	if err != nil {
		chartlog.Logger().Debug("drawing failed", "op", op, "err", err)
	}
}

func (c *Canvas) Context() *gg.Context {
	return c.dc
}

func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}

func (c *Canvas) MeasureText(s string, size float64) (w, h float64) {
	if len(s) == 0 {
		return 0, 0
	}
	return text.Measure(s, c.face(size))
}

func (c *Canvas) rectPath(r stockval.Bounds, radius float64) {
	if radius > 0 {
		radius = min(radius, r.Width()/2, r.Height()/2)
		c.dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), radius)
	} else {
		c.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	}
}

func (c *Canvas) FillRect(r stockval.Bounds, radius float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || r.IsEmpty() {
		return
	}
	c.dc.SetColor(col)
	c.rectPath(r, radius)
	logFailure("fill", c.dc.Fill())
}

func (c *Canvas) StrokeRect(r stockval.Bounds, radius float64, width float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || width <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.rectPath(r, radius)
	logFailure("stroke", c.dc.Stroke())
}

func (c *Canvas) DrawLine(from, to stockval.Point, width float64, col color.NRGBA) {
	if canvas.IsTransparent(col) || width <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	logFailure("stroke", c.dc.Stroke())
}

func (c *Canvas) DrawPolyline(points []stockval.Point, width float64, col color.NRGBA) {
	if len(points) < 2 || canvas.IsTransparent(col) || width <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	logFailure("stroke", c.dc.Stroke())
}

func (c *Canvas) DrawText(s string, pos stockval.Point, size float64, col color.NRGBA) {
	if len(s) == 0 || canvas.IsTransparent(col) {
		return
	}
	f := c.face(size)
	c.dc.SetFont(f)
	c.dc.SetColor(col)
	// gg expects the baseline position.
	c.dc.DrawString(s, pos.X, pos.Y+f.Metrics().Ascent)
}

func (c *Canvas) PushClip(r stockval.Bounds) {
	c.dc.Push()
	c.dc.ClipRect(r.Left, r.Top, r.Width(), r.Height())
}

func (c *Canvas) PopClip() {
	c.dc.Pop()
}
