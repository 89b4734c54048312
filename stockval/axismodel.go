// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

// AxisModel aggregates the value range of the visible data series.
// It is owned by the chart view and rebuilt every frame, never patched.
type AxisModel struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
	// Distance between two neighbouring entries in data units.
	XStep float64
}

func (m *AxisModel) Clear() {
	*m = AxisModel{}
}

func (m *AxisModel) LengthX() float64 {
	return m.MaxX - m.MinX
}

func (m *AxisModel) LengthY() float64 {
	return m.MaxY - m.MinY
}

// EntryCount is the number of segments covered by the X range.
func (m *AxisModel) EntryCount() int {
	if m.XStep <= NearZero {
		return 0
	}
	return int(m.LengthX()/m.XStep+0.5) + 1
}

// SegmentProperties describe the horizontal pixel layout of one data segment.
// Both the data set and the axes consume the same value, so they stay pixel aligned.
type SegmentProperties struct {
	// Width of the glyph area of one entry.
	CellWidth float64
	// Spacing between two neighbouring cells.
	MarginWidth float64
}

func (s SegmentProperties) SegmentWidth() float64 {
	return s.CellWidth + s.MarginWidth
}

func (s SegmentProperties) Scaled(zoom float64) SegmentProperties {
	return SegmentProperties{CellWidth: s.CellWidth * zoom, MarginWidth: s.MarginWidth * zoom}
}

// CenterX returns the pixel center of the segment at index.
func (s SegmentProperties) CenterX(index int, left, scroll float64) float64 {
	w := s.SegmentWidth()
	return left - scroll + float64(index)*w + w/2
}

// IndexAt returns the index of the segment below pixel x, or -1 if there is no segment.
func (s SegmentProperties) IndexAt(x, left, scroll float64) int {
	w := s.SegmentWidth()
	if w <= NearZero {
		return -1
	}
	pos := x - left + scroll
	if pos < 0 {
		return -1
	}
	return int(pos / w)
}

// VisibleRange returns the first and last index (inclusive) of segments
// intersecting the given width, limited to count entries.
func (s SegmentProperties) VisibleRange(width, scroll float64, count int) (first, last int) {
	w := s.SegmentWidth()
	if w <= NearZero || count == 0 {
		return 0, -1
	}
	first = max(int(scroll/w), 0)
	last = min(int((scroll+width)/w), count-1)
	return first, last
}
