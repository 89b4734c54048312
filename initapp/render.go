// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"fmt"
	"image/color"
	"maycharts/canvas/ggcanvas"
	"maycharts/chartlog"
	"maycharts/stockval"
	"maycharts/stockviz"
	"time"

	"github.com/gogpu/gg"
)

// Render draws one frame of v into a new image of the given size.
// The caller needs to close the returned context.
func Render(v *stockviz.ChartView, width, height int, bg color.NRGBA) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(bg))
	c, err := ggcanvas.New(dc)
	if err != nil {
		_ = dc.Close()
		return nil, err
	}
	v.SetContentBounds(stockval.Bounds{Right: float64(width), Bottom: float64(height)})
	v.Draw(c, time.Now())
	return dc, nil
}

// RenderPNG writes one frame of v to a PNG file.
func RenderPNG(v *stockviz.ChartView, width, height int, bg color.NRGBA, fileName string) error {
	dc, err := Render(v, width, height, bg)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	if err = dc.SavePNG(fileName); err != nil {
		return fmt.Errorf("failed to write chart image: %w", err)
	}
	chartlog.Logger().Info("chart image written", "file", fileName, "width", width, "height", height)
	return nil
}
