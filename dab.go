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

// RGB is a colour with components in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Dab is a single brush stamp with fully resolved properties.
//
// Every Dab returned by an [Engine] satisfies Size >= 0.1 and has Opacity
// and Flow in [0, 1].
type Dab struct {
	Pos      vec.Vec2 // centre in pixels
	Size     float64  // diameter in pixels
	Opacity  float64
	Rotation float64 // degrees
	Hardness float64 // edge hardness, 0 (soft) to 1 (hard)
	Flow     float64
	Scatter  float64 // positional jitter, as a fraction of the radius
	Color    RGB
}

// minDabSize is the smallest diameter an emitted dab can have.
const minDabSize = 0.1

// baseDab returns a dab at pos carrying the base values from s.
func baseDab(s *Settings, pos vec.Vec2) Dab {
	return Dab{
		Pos:      pos,
		Size:     s.Size,
		Opacity:  s.Opacity,
		Rotation: s.Rotation,
		Hardness: s.Hardness,
		Flow:     s.Flow,
		Color:    s.Color,
	}
}

// clampDab enforces the output ranges for size, opacity and flow.
func clampDab(d *Dab) {
	d.Size = max(d.Size, minDabSize)
	d.Opacity = clamp01(d.Opacity)
	d.Flow = clamp01(d.Flow)
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
