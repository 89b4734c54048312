// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type notifications struct {
	values []float64
}

func (n *notifications) record(v float64) {
	n.values = append(n.values, v)
}

func TestSetScrollClamps(t *testing.T) {
	var n notifications
	h := NewHandler(n.record)
	h.UpdateMaxScroll(500)

	for _, s := range []float64{-100, 0, 42, 499.5, 500, 10000, -0.1} {
		h.SetScroll(s)
		assert.GreaterOrEqual(t, h.CurrentScroll(), 0.0)
		assert.LessOrEqual(t, h.CurrentScroll(), h.MaxScroll())
	}
	assert.Equal(t, []float64{42, 499.5, 500, 0}, n.values)
}

func TestSetScrollIsIdempotent(t *testing.T) {
	var n notifications
	h := NewHandler(n.record)
	h.UpdateMaxScroll(100)

	assert.True(t, h.SetScroll(50))
	assert.False(t, h.SetScroll(50))
	assert.False(t, h.SetScroll(50))
	assert.Len(t, n.values, 1)
}

func TestSetScrollIgnoresInvalidValues(t *testing.T) {
	h := NewHandler(nil)
	h.UpdateMaxScroll(100)
	h.SetScroll(20)

	assert.False(t, h.SetScroll(math.NaN()))
	assert.False(t, h.SetScroll(math.Inf(1)))
	assert.Equal(t, 20.0, h.CurrentScroll())
}

func TestHandleScrollDelta(t *testing.T) {
	h := NewHandler(nil)
	h.UpdateMaxScroll(100)

	h.HandleScrollDelta(30)
	h.HandleScrollDelta(30)
	assert.Equal(t, 60.0, h.CurrentScroll())
	h.HandleScrollDelta(-80)
	assert.Equal(t, 0.0, h.CurrentScroll())
}

func TestUpdateMaxScrollClampsOnce(t *testing.T) {
	var n notifications
	h := NewHandler(n.record)
	h.UpdateMaxScroll(300)
	h.SetScroll(250)
	n.values = nil

	h.UpdateMaxScroll(120)

	assert.Equal(t, 120.0, h.CurrentScroll())
	assert.Equal(t, []float64{120}, n.values)

	// unchanged maximum, no further notification
	h.UpdateMaxScroll(120)
	assert.Len(t, n.values, 1)
}

func TestUpdateMaxScrollNegative(t *testing.T) {
	h := NewHandler(nil)
	h.UpdateMaxScroll(-5)

	assert.Equal(t, 0.0, h.MaxScroll())
	assert.False(t, h.CanScroll())
}

func TestGrowingMaxScrollKeepsOffset(t *testing.T) {
	var n notifications
	h := NewHandler(n.record)
	h.UpdateMaxScroll(100)
	h.SetScroll(80)
	n.values = nil

	h.UpdateMaxScroll(1000)

	assert.Equal(t, 80.0, h.CurrentScroll())
	assert.Empty(t, n.values)
}
