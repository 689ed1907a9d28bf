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

// Curve selects the response curve a [Mapping] applies to its input.
type Curve uint8

// These are the supported response curves.
const (
	CurveLinear    Curve = iota // y = x
	CurveQuadratic              // y = x²
	CurveCubic                  // y = x³

	// CurveCustom is reserved for user-defined curves. No curve data can
	// be attached yet, so it currently behaves like CurveLinear and is
	// reported by [Settings.Validate].
	CurveCustom
)

// curveShapes holds the transfer function for each curve.
var curveShapes = [...]func(x float64) float64{
	CurveLinear:    linear,
	CurveQuadratic: func(x float64) float64 { return x * x },
	CurveCubic:     func(x float64) float64 { return x * x * x },
	CurveCustom:    linear,
}

func linear(x float64) float64 { return x }

// Shape applies the response curve to x.
// Unknown curve values are treated as linear.
func (c Curve) Shape(x float64) float64 {
	if int(c) >= len(curveShapes) {
		return x
	}
	return curveShapes[c](x)
}

// Supported reports whether the curve has a defined transfer function.
func (c Curve) Supported() bool {
	return c < CurveCustom
}

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveQuadratic:
		return "quadratic"
	case CurveCubic:
		return "cubic"
	case CurveCustom:
		return "custom"
	default:
		return "curve(" + strconv.Itoa(int(c)) + ")"
	}
}
