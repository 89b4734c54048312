// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"image/color"
	"maycharts/component"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

// ShapeStyle is "rect" (default), "pill" or "rounded" with Radius.
type ShapeStyle struct {
	Type   string  `yaml:",omitempty"`
	Radius float64 `yaml:",omitempty"`
}

// LineComponentStyle describes a line or candle body. Colors are hex strings like
// "#26a69a" or "#26a69a80", an empty color keeps the default.
type LineComponentStyle struct {
	Color       string     `yaml:",omitempty"`
	Thickness   float64    `yaml:",omitempty"`
	StrokeColor string     `yaml:",omitempty"`
	StrokeWidth float64    `yaml:",omitempty"`
	Shape       ShapeStyle `yaml:",omitempty"`
}

// ComponentStyle describes a filled shape, optionally drawn on top of another one.
type ComponentStyle struct {
	Color             string          `yaml:",omitempty"`
	Shape             ShapeStyle      `yaml:",omitempty"`
	StrokeColor       string          `yaml:",omitempty"`
	StrokeWidth       float64         `yaml:",omitempty"`
	Overlaying        *ComponentStyle `yaml:",omitempty"`
	OverlayingPadding float64         `yaml:",omitempty"`
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w %q: missing #", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w %q: wrong length", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor is the inverse of ParseColor. The alpha value is omitted if opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func colorOr(s string, def color.NRGBA) (color.NRGBA, error) {
	if s == "" {
		return def, nil
	}
	return ParseColor(s)
}

func (s ShapeStyle) resolve(def component.Shape) (component.Shape, error) {
	switch strings.ToLower(s.Type) {
	case "":
		return def, nil
	case "rect":
		return component.RectShape, nil
	case "pill":
		return component.PillShape, nil
	case "rounded":
		if s.Radius < 0 {
			return def, fmt.Errorf("negative corner radius %g", s.Radius)
		}
		return component.RoundedShape(s.Radius), nil
	}
	return def, fmt.Errorf("unknown shape %q", s.Type)
}

// ResolveLineComponent applies s on top of def. Unset values are taken from def.
func ResolveLineComponent(s LineComponentStyle, def component.LineComponent) (component.LineComponent, error) {
	var err error
	l := def
	if l.Color, err = colorOr(s.Color, def.Color); err != nil {
		return def, err
	}
	if l.StrokeColor, err = colorOr(s.StrokeColor, def.StrokeColor); err != nil {
		return def, err
	}
	if l.Shape, err = s.Shape.resolve(def.Shape); err != nil {
		return def, err
	}
	if s.Thickness > 0 {
		l.Thickness = s.Thickness
	}
	if s.StrokeWidth > 0 {
		l.StrokeWidth = s.StrokeWidth
	}
	return l, nil
}

// ResolveComponent creates the component described by s. Unset colors are
// transparent.
func ResolveComponent(s ComponentStyle) (component.Component, error) {
	fill, err := colorOr(s.Color, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	stroke, err := colorOr(s.StrokeColor, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	shape, err := s.Shape.resolve(component.RectShape)
	if err != nil {
		return nil, err
	}
	c := component.ShapeComponent{Color: fill, Shape: shape, StrokeColor: stroke, StrokeWidth: max(s.StrokeWidth, 0)}
	if s.Overlaying == nil {
		return c, nil
	}
	inner, err := ResolveComponent(*s.Overlaying)
	if err != nil {
		return nil, err
	}
	return component.OverlayingComponent{Outer: c, Inner: inner, InnerPadding: max(s.OverlayingPadding, 0)}, nil
}
