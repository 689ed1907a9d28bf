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

// Package presets provides example brush configurations.
//
// Each function returns a fresh [brush.Settings] value which the caller
// may modify.
package presets

import "seehuhn.de/go/brush"

// All maps preset names to their constructors.
var All = map[string]func() *brush.Settings{
	"default":     Default,
	"pencil":      Pencil,
	"airbrush":    Airbrush,
	"pen":         Pen,
	"marker":      Marker,
	"splatter":    Splatter,
	"calligraphy": Calligraphy,
	"watercolor":  Watercolor,
}

// Default is a general purpose round brush where pressure controls size
// and opacity.
func Default() *brush.Settings {
	return &brush.Settings{
		Size:     30,
		Opacity:  0.8,
		Hardness: 0.7,
		Flow:     0.9,
		Spacing:  0.15,
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.3, 1.5, 1, brush.CurveQuadratic),
			pressure(brush.TargetOpacity, 0.2, 1, 0.8, brush.CurveLinear),
		},
	}
}

// Pencil is a thin hard brush with a strong, cubic pressure response.
func Pencil() *brush.Settings {
	return &brush.Settings{
		Size:     3,
		Opacity:  0.6,
		Hardness: 0.9,
		Flow:     0.7,
		Spacing:  0.05,
		Color:    brush.RGB{R: 0.1, G: 0.1, B: 0.1},
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.2, 2, 1, brush.CurveCubic),
			pressure(brush.TargetOpacity, 0.3, 1, 0.7, brush.CurveLinear),
		},
	}
}

// Airbrush is a large soft brush where pressure mostly controls flow.
func Airbrush() *brush.Settings {
	return &brush.Settings{
		Size:     50,
		Opacity:  0.15,
		Hardness: 0.1,
		Flow:     0.3,
		Spacing:  0.1,
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.5, 1.5, 1, brush.CurveLinear),
			pressure(brush.TargetFlow, 0.1, 1, 1, brush.CurveQuadratic),
		},
	}
}

// Pen is an ink pen with nearly constant line width.
func Pen() *brush.Settings {
	return &brush.Settings{
		Size:     5,
		Opacity:  1,
		Hardness: 0.95,
		Flow:     1,
		Spacing:  0.08,
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.8, 1.2, 0.5, brush.CurveLinear),
		},
	}
}

// Marker is a blue marker which becomes more transparent when tilted.
func Marker() *brush.Settings {
	return &brush.Settings{
		Size:     20,
		Opacity:  0.7,
		Hardness: 0.8,
		Flow:     0.9,
		Spacing:  0.12,
		Color:    brush.RGB{R: 0.2, G: 0.2, B: 0.8},
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.6, 1.4, 1, brush.CurveLinear),
			{
				Source:   brush.SourceTiltMagnitude,
				Target:   brush.TargetOpacity,
				Min:      1,
				Max:      0.4,
				Strength: 0.8,
				Curve:    brush.CurveLinear,
			},
		},
	}
}

// Splatter scatters its dabs randomly around the stroke.
//
// The speed to spacing mapping has no effect yet and makes
// [brush.Settings.Validate] fail.
func Splatter() *brush.Settings {
	return &brush.Settings{
		Size:     15,
		Opacity:  0.6,
		Hardness: 0.7,
		Flow:     0.8,
		Spacing:  0.3,
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.3, 1.8, 1, brush.CurveQuadratic),
			{
				Source:   brush.SourceRandom,
				Target:   brush.TargetScatter,
				Min:      0,
				Max:      1,
				Strength: 1,
				Curve:    brush.CurveLinear,
			},
			{
				Source:   brush.SourceSpeed,
				Target:   brush.TargetSpacing,
				Min:      0.2,
				Max:      0.5,
				Strength: 0.7,
				Curve:    brush.CurveLinear,
			},
		},
	}
}

// Calligraphy is a broad nib whose angle follows the pen tilt.
func Calligraphy() *brush.Settings {
	return &brush.Settings{
		Size:     25,
		Opacity:  0.9,
		Hardness: 0.85,
		Flow:     1,
		Spacing:  0.1,
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.4, 1.6, 1, brush.CurveQuadratic),
			{
				Source:   brush.SourceTiltX,
				Target:   brush.TargetRotation,
				Min:      -45,
				Max:      45,
				Strength: 1,
				Curve:    brush.CurveLinear,
			},
		},
	}
}

// Watercolor is a wet, translucent brush with a little scatter.
func Watercolor() *brush.Settings {
	return &brush.Settings{
		Size:     40,
		Opacity:  0.25,
		Hardness: 0.3,
		Flow:     0.4,
		Spacing:  0.08,
		Color:    brush.RGB{R: 0.3, G: 0.5, B: 0.8},
		Mappings: []brush.Mapping{
			pressure(brush.TargetSize, 0.5, 1.5, 1, brush.CurveLinear),
			pressure(brush.TargetFlow, 0.2, 1, 0.9, brush.CurveQuadratic),
			{
				Source:   brush.SourceRandom,
				Target:   brush.TargetScatter,
				Min:      0,
				Max:      0.3,
				Strength: 1,
				Curve:    brush.CurveLinear,
			},
		},
	}
}

func pressure(target brush.Target, lo, hi, strength float64, curve brush.Curve) brush.Mapping {
	return brush.Mapping{
		Source:   brush.SourcePressure,
		Target:   target,
		Min:      lo,
		Max:      hi,
		Strength: strength,
		Curve:    curve,
	}
}
