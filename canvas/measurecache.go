// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package canvas

import (
	"strconv"

	"github.com/zhangyunhao116/skipmap"
)

// DefaultMaxCachedSizes is the number of text sizes kept by a MeasureCache.
const DefaultMaxCachedSizes = 4096

type textSize struct {
	w, h float64
}

// MeasureCache remembers measured text sizes across frames.
// It may be shared by multiple canvases and is safe for concurrent use.
type MeasureCache struct {
	sizes      *skipmap.StringMap[textSize]
	MaxEntries int
}

func NewMeasureCache() *MeasureCache {
	return &MeasureCache{
		sizes:      skipmap.NewString[textSize](),
		MaxEntries: DefaultMaxCachedSizes,
	}
}

func cacheKey(s string, size float64) string {
	return strconv.FormatFloat(size, 'g', -1, 64) + "\x00" + s
}

// Measure returns the cached size of s, calling measure if it is unknown.
func (m *MeasureCache) Measure(s string, size float64, measure func() (w, h float64)) (w, h float64) {
	key := cacheKey(s, size)
	if t, ok := m.sizes.Load(key); ok {
		return t.w, t.h
	}
	w, h = measure()
	// Axis labels change while scrolling, start over instead of growing forever.
	if m.MaxEntries > 0 && m.sizes.Len() >= m.MaxEntries {
		m.Clear()
	}
	m.sizes.Store(key, textSize{w: w, h: h})
	return w, h
}

func (m *MeasureCache) Len() int {
	return m.sizes.Len()
}

// Clear removes all sizes, e.g. after the font changed.
func (m *MeasureCache) Clear() {
	m.sizes = skipmap.NewString[textSize]()
}
