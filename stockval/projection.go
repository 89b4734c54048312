// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

// Projection f(v)=m*v+b of Y values into pixel space.
// Y values are increasing from bottom to top.
type Projection struct {
	MY float64
	BY float64
}

func NewProjection(m *AxisModel, b Bounds) Projection {
	lengthY := m.LengthY()
	if lengthY <= NearZero {
		// Flat data is centered vertically.
		return Projection{MY: 0, BY: b.CenterY()}
	}
	mY := -b.Height() / lengthY
	return Projection{MY: mY, BY: -mY*m.MinY + b.Bottom}
}

func (p Projection) GetYpos(v float64) float64 {
	return p.MY*v + p.BY
}

// GetValue is the inverse of GetYpos.
func (p Projection) GetValue(y float64) float64 {
	if p.MY == 0 {
		return 0
	}
	return (y - p.BY) / p.MY
}
