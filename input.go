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
	"math/rand/v2"
	"strconv"
)

// Source identifies the input a [Mapping] reads.
type Source uint8

// These are the available input sources.
const (
	SourcePressure      Source = iota // pen pressure
	SourceTiltX                       // tilt along x, -1..1 mapped to 0..1
	SourceTiltY                       // tilt along y, -1..1 mapped to 0..1
	SourceTiltMagnitude               // length of the tilt vector, capped at 1
	SourceSpeed                       // pointer speed relative to speedCeiling, capped at 1
	SourceRotation                    // barrel rotation, 0..360 mapped to 0..1
	SourceRandom                      // uniform random value in [0, 1)
	SourceConstant                    // always 1
)

// speedCeiling is the pointer speed, in pixels per second, that maps
// to the input value 1.
const speedCeiling = 1000

// sourceFuncs holds the normalisation function for each source.
var sourceFuncs = [...]func(s Sample, rng *rand.Rand) float64{
	SourcePressure: func(s Sample, _ *rand.Rand) float64 { return s.Pressure },
	SourceTiltX:    func(s Sample, _ *rand.Rand) float64 { return (s.TiltX + 1) / 2 },
	SourceTiltY:    func(s Sample, _ *rand.Rand) float64 { return (s.TiltY + 1) / 2 },
	SourceTiltMagnitude: func(s Sample, _ *rand.Rand) float64 {
		return min(1, s.TiltMagnitude())
	},
	SourceSpeed: func(s Sample, _ *rand.Rand) float64 {
		return min(1, s.Speed()/speedCeiling)
	},
	SourceRotation: func(s Sample, _ *rand.Rand) float64 { return s.Rotation / 360 },
	SourceRandom: func(_ Sample, rng *rand.Rand) float64 {
		if rng == nil {
			return 0.5
		}
		return rng.Float64()
	},
	SourceConstant: func(Sample, *rand.Rand) float64 { return 1 },
}

// Normalize reads the input selected by src from s, scaled to the domain
// expected by [Mapping.Apply].
//
// SourceRandom draws from rng; if rng is nil it returns 0.5.
// Unknown sources behave like SourceConstant.
func (src Source) Normalize(s Sample, rng *rand.Rand) float64 {
	if int(src) >= len(sourceFuncs) {
		return 1
	}
	return sourceFuncs[src](s, rng)
}

func (src Source) valid() bool {
	return int(src) < len(sourceFuncs)
}

func (src Source) String() string {
	switch src {
	case SourcePressure:
		return "pressure"
	case SourceTiltX:
		return "tilt-x"
	case SourceTiltY:
		return "tilt-y"
	case SourceTiltMagnitude:
		return "tilt"
	case SourceSpeed:
		return "speed"
	case SourceRotation:
		return "rotation"
	case SourceRandom:
		return "random"
	case SourceConstant:
		return "constant"
	default:
		return "source(" + strconv.Itoa(int(src)) + ")"
	}
}
