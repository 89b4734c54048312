// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package gesture

import (
	"math"
	"time"
)

const (
	// DefaultFriction is the exponential decay rate of the fling velocity, per second.
	DefaultFriction = 4.0
	// MinFlingVelocity in px/s, slower flings stop.
	MinFlingVelocity = 20.0
)

// Fling computes the distance travelled by a released drag, decelerating by
// exponential friction. It holds no state besides its start values.
type Fling struct {
	Velocity float64
	Friction float64
}

// Offset returns the distance travelled after elapsed and whether the fling
// is still moving at that time.
func (f Fling) Offset(elapsed time.Duration) (offset float64, moving bool) {
	t := elapsed.Seconds()
	if t <= 0 {
		return 0, math.Abs(f.Velocity) >= MinFlingVelocity
	}
	friction := f.Friction
	if friction <= 0 {
		friction = DefaultFriction
	}
	decay := math.Exp(-friction * t)
	offset = f.Velocity / friction * (1 - decay)
	return offset, math.Abs(f.Velocity*decay) >= MinFlingVelocity
}

// Distance is the total distance of the fling.
func (f Fling) Distance() float64 {
	friction := f.Friction
	if friction <= 0 {
		friction = DefaultFriction
	}
	return f.Velocity / friction
}
