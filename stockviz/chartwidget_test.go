// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWheelZoomMultiplier(t *testing.T) {
	m, ok := wheelZoomMultiplier(-1)
	assert.True(t, ok)
	assert.Equal(t, wheelZoomStep, m)

	m, ok = wheelZoomMultiplier(3)
	assert.True(t, ok)
	assert.Equal(t, 1/wheelZoomStep, m)

	// Horizontal trackpad scrolling has no vertical part.
	_, ok = wheelZoomMultiplier(0)
	assert.False(t, ok)
}
