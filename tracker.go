// seehuhn.de/go/brush - turn pointer samples into brush dabs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package brush

import "seehuhn.de/go/geom/vec"

// Tracker fills in the velocity of successive samples from their
// positions and timestamps. The zero value is ready to use.
type Tracker struct {
	prev    Sample
	hasPrev bool
}

// Update sets s.Velocity from the displacement since the previous sample
// and returns the result.
//
// The first sample after construction or [Tracker.Reset] gets zero
// velocity. If the timestamp has not advanced, the previous velocity is
// kept.
func (t *Tracker) Update(s Sample) Sample {
	switch {
	case !t.hasPrev:
		s.Velocity = vec.Vec2{}
	case s.Time > t.prev.Time:
		dt := float64(s.Time-t.prev.Time) / 1000
		s.Velocity = s.Pos.Sub(t.prev.Pos).Mul(1 / dt)
	default:
		s.Velocity = t.prev.Velocity
	}
	t.prev = s
	t.hasPrev = true
	return s
}

// Reset forgets the previous sample.
func (t *Tracker) Reset() {
	t.hasPrev = false
}
