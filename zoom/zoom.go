// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package zoom tracks the pinch zoom factor of a chart.
package zoom

import (
	"maycharts/chartlog"
	"maycharts/stockval"
)

const (
	MinZoom     = 0.1
	MaxZoom     = 10.0
	DefaultZoom = 1.0
)

// State holds a zoom factor. Data sets own the zoom of a chart.
type State interface {
	Zoom() float64
	SetZoom(z float64)
}

// Controller stores a zoom factor within [MinZoom, MaxZoom].
// The zero value needs Reset before use.
type Controller struct {
	zoom float64
}

var _ State = (*Controller)(nil)

func NewController() *Controller {
	return &Controller{zoom: DefaultZoom}
}

func (c *Controller) Zoom() float64 {
	return c.zoom
}

// SetZoom stores z limited to [MinZoom, MaxZoom].
func (c *Controller) SetZoom(z float64) {
	if !stockval.IsFinite(z) {
		return
	}
	c.zoom = stockval.Clamp(z, MinZoom, MaxZoom)
}

func (c *Controller) Reset() {
	c.zoom = DefaultZoom
}

// Apply multiplies the zoom factor of s, keeping the content below focalX in place.
// It returns the scroll delta to apply together with the new zoom.
// Steps leaving [MinZoom, MaxZoom] are rejected as a whole and leave the zoom unchanged.
func Apply(s State, focalX, multiplier, contentLeft, currentScroll float64) (scrollDelta float64, ok bool) {
	if !stockval.IsFinite(multiplier) || multiplier <= 0 {
		return 0, false
	}
	current := s.Zoom()
	newZoom := current * multiplier
	if newZoom < MinZoom || newZoom > MaxZoom {
		chartlog.Logger().Debug("zoom step rejected", "zoom", current, "multiplier", multiplier)
		return 0, false
	}
	centerX := currentScroll + focalX - contentLeft
	zoomedCenterX := centerX * multiplier
	s.SetZoom(newZoom)
	return zoomedCenterX - centerX, true
}
