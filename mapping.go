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

import "strconv"

// Target identifies the dab property a [Mapping] adjusts.
type Target uint8

// These are the dab properties a mapping can target.
const (
	TargetSize     Target = iota // multiplies the size
	TargetOpacity                // multiplies the opacity
	TargetSpacing                // reserved, no effect
	TargetHardness               // replaces the hardness, clamped to [0, 1]
	TargetFlow                   // multiplies the flow
	TargetScatter                // replaces the scatter amount
	TargetRotation               // adds to the rotation

	// The colour targets are reserved. They have no effect until a colour
	// model for adjusting the base colour is defined.
	TargetColorHue
	TargetColorSaturation
	TargetColorValue
)

// combiners holds the composition rule for each target.
// A nil entry means the target has no effect.
var combiners = [...]func(d *Dab, v float64){
	TargetSize:     func(d *Dab, v float64) { d.Size *= v },
	TargetOpacity:  func(d *Dab, v float64) { d.Opacity *= v },
	TargetSpacing:  nil,
	TargetHardness: func(d *Dab, v float64) { d.Hardness = clamp01(v) },
	TargetFlow:     func(d *Dab, v float64) { d.Flow *= v },
	TargetScatter:  func(d *Dab, v float64) { d.Scatter = v },
	TargetRotation: func(d *Dab, v float64) { d.Rotation += v },

	TargetColorHue:        nil,
	TargetColorSaturation: nil,
	TargetColorValue:      nil,
}

// combine folds the mapping output v into the dab.
func (t Target) combine(d *Dab, v float64) {
	if int(t) >= len(combiners) || combiners[t] == nil {
		return
	}
	combiners[t](d, v)
}

// Supported reports whether mappings to this target change the dab.
func (t Target) Supported() bool {
	return int(t) < len(combiners) && combiners[t] != nil
}

func (t Target) String() string {
	switch t {
	case TargetSize:
		return "size"
	case TargetOpacity:
		return "opacity"
	case TargetSpacing:
		return "spacing"
	case TargetHardness:
		return "hardness"
	case TargetFlow:
		return "flow"
	case TargetScatter:
		return "scatter"
	case TargetRotation:
		return "rotation"
	case TargetColorHue:
		return "hue"
	case TargetColorSaturation:
		return "saturation"
	case TargetColorValue:
		return "value"
	default:
		return "target(" + strconv.Itoa(int(t)) + ")"
	}
}

// Mapping describes how one input source adjusts one dab property.
//
// The zero value is not useful; a typical mapping sets Source, Target,
// Min, Max and Strength.
type Mapping struct {
	Source Source
	Target Target

	// Min and Max give the output range. Min may exceed Max to obtain a
	// decreasing response.
	Min, Max float64

	// Strength blends the output towards the midpoint of [Min, Max].
	// 1 gives the full range, 0 gives the constant midpoint.
	Strength float64

	Curve    Curve
	Inverted bool // use 1-x instead of x
}

// Apply maps a normalised input in [0, 1] to the mapping's output.
//
// The shaped input is interpolated into [Min, Max] and the result is
// pulled towards (Min+Max)/2 by the factor 1-Strength. The blend target is
// the midpoint of the output range, not the base value of the targeted
// property, so a Strength below 1 only fades towards "no effect" when the
// range is centred on the neutral value of the target (1 for size,
// opacity and flow, 0 for rotation).
func (m Mapping) Apply(x float64) float64 {
	if m.Inverted {
		x = 1 - x
	}
	y := m.Min + (m.Max-m.Min)*m.Curve.Shape(x)
	mid := (m.Min + m.Max) / 2
	return mid + (y-mid)*m.Strength
}
