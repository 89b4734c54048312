// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

type Point struct {
	X float64
	Y float64
}

// Bounds is an axis-aligned rectangle in pixel space.
// Layout passes always produce a new value instead of patching an old one.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (b Bounds) Width() float64 {
	return max(b.Right-b.Left, 0)
}

func (b Bounds) Height() float64 {
	return max(b.Bottom-b.Top, 0)
}

func (b Bounds) CenterX() float64 {
	return b.Left + b.Width()/2
}

func (b Bounds) CenterY() float64 {
	return b.Top + b.Height()/2
}

func (b Bounds) IsEmpty() bool {
	return b.Width() < NearZero || b.Height() < NearZero
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Inset shrinks the bounds on every side. The result never has a negative size,
// it collapses onto the center line instead.
func (b Bounds) Inset(left, top, right, bottom float64) Bounds {
	r := Bounds{Left: b.Left + left, Top: b.Top + top, Right: b.Right - right, Bottom: b.Bottom - bottom}
	if r.Right < r.Left {
		c := (r.Left + r.Right) / 2
		r.Left, r.Right = c, c
	}
	if r.Bottom < r.Top {
		c := (r.Top + r.Bottom) / 2
		r.Top, r.Bottom = c, c
	}
	return r
}

// Normalized swaps edges so that Left <= Right and Top <= Bottom.
func (b Bounds) Normalized() Bounds {
	if b.Right < b.Left {
		b.Left, b.Right = b.Right, b.Left
	}
	if b.Bottom < b.Top {
		b.Top, b.Bottom = b.Bottom, b.Top
	}
	return b
}

// MirrorX mirrors x within the bounds for right-to-left layouts.
func (b Bounds) MirrorX(x float64, isLTR bool) float64 {
	if isLTR {
		return x
	}
	return b.Left + b.Right - x
}
