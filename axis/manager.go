// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package axis

import (
	"maycharts/marker"
	"maycharts/stockval"
)

// Manager holds up to four axes, one per position. Unset axes are skipped.
type Manager struct {
	StartAxis  Renderer
	TopAxis    Renderer
	EndAxis    Renderer
	BottomAxis Renderer
	bounds     [numPositions]stockval.Bounds
}

func (m *Manager) Axis(p Position) Renderer {
	switch p {
	case PositionStart:
		return m.StartAxis
	case PositionTop:
		return m.TopAxis
	case PositionEnd:
		return m.EndAxis
	case PositionBottom:
		return m.BottomAxis
	default:
		panic("invalid axis position")
	}
}

// SetAxis places r at its own position. Use ClearAxis to remove an axis.
func (m *Manager) SetAxis(r Renderer) {
	switch r.Position() {
	case PositionStart:
		m.StartAxis = r
	case PositionTop:
		m.TopAxis = r
	case PositionEnd:
		m.EndAxis = r
	case PositionBottom:
		m.BottomAxis = r
	default:
		panic("invalid axis position")
	}
}

func (m *Manager) ClearAxis(p Position) {
	switch p {
	case PositionStart:
		m.StartAxis = nil
	case PositionTop:
		m.TopAxis = nil
	case PositionEnd:
		m.EndAxis = nil
	case PositionBottom:
		m.BottomAxis = nil
	}
}

func (m *Manager) SetAxisBounds(p Position, b stockval.Bounds) {
	m.bounds[p] = b
}

func (m *Manager) AxisBounds(p Position) stockval.Bounds {
	return m.bounds[p]
}

func (m *Manager) draw(dc DrawContext, background bool) {
	for p := range numPositions {
		a := m.Axis(p)
		if a == nil {
			continue
		}
		dc.AxisBounds = m.bounds[p]
		a.Draw(dc, background)
	}
}

// DrawBehindDataSet draws the background pass of all axes, e.g. guidelines.
func (m *Manager) DrawBehindDataSet(dc DrawContext) {
	m.draw(dc, true)
}

// DrawAboveDataSet draws lines, ticks and labels of all axes, followed by the marker.
// Nothing is drawn for the marker if mk is nil or there are no entries.
func (m *Manager) DrawAboveDataSet(dc DrawContext, mk marker.Marker, entries []marker.MarkedEntry) {
	m.draw(dc, false)
	if mk != nil && len(entries) > 0 {
		mk.Draw(dc.Canvas, dc.DataBounds, entries, dc.Model)
	}
}
