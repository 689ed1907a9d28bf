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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Sample is one normalised pointer observation.
//
// Samples are produced by the input layer, one per pointer event.
// The engine does not retain a Sample beyond the call it was passed to,
// except as the reference point for the next segment of a stroke.
type Sample struct {
	Pos      vec.Vec2 // position in pixels
	Pressure float64  // 0 (no contact) to 1 (full pressure)
	TiltX    float64  // -1 to 1
	TiltY    float64  // -1 to 1
	Rotation float64  // barrel rotation in degrees, [0, 360)
	Velocity vec.Vec2 // pixels per second
	Time     uint64   // monotonic timestamp in milliseconds
}

// Speed returns the magnitude of the pointer velocity in pixels per second.
func (s Sample) Speed() float64 {
	return s.Velocity.Length()
}

// TiltMagnitude returns the length of the tilt vector.
// The result ranges from 0 (upright) to sqrt(2).
func (s Sample) TiltMagnitude() float64 {
	return math.Hypot(s.TiltX, s.TiltY)
}

// lerpSample returns the sample a fraction u of the way from a to b.
// Only position, pressure and tilt are interpolated; rotation, velocity
// and time are taken from b.
func lerpSample(a, b Sample, u float64) Sample {
	s := b
	s.Pos = a.Pos.Add(b.Pos.Sub(a.Pos).Mul(u))
	s.Pressure = a.Pressure + (b.Pressure-a.Pressure)*u
	s.TiltX = a.TiltX + (b.TiltX-a.TiltX)*u
	s.TiltY = a.TiltY + (b.TiltY-a.TiltY)*u
	return s
}
