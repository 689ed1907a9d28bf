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
	"testing"
)

func TestCurveShape(t *testing.T) {
	cases := []struct {
		c    Curve
		x    float64
		want float64
	}{
		{CurveLinear, 0.5, 0.5},
		{CurveQuadratic, 0.5, 0.25},
		{CurveCubic, 0.5, 0.125},
		{CurveCustom, 0.5, 0.5},
		{CurveCubic, 1, 1},
		{Curve(200), 0.3, 0.3},
	}
	for _, tc := range cases {
		if got := tc.c.Shape(tc.x); got != tc.want {
			t.Errorf("%s.Shape(%g) = %g, want %g", tc.c, tc.x, got, tc.want)
		}
	}
}

func TestApplyLinearEndpoints(t *testing.T) {
	ranges := [][2]float64{
		{0, 1},
		{0.5, 1.5},
		{1, 0.4},
		{-45, 45},
		{-3, 7},
	}
	for _, r := range ranges {
		m := Mapping{Min: r[0], Max: r[1], Strength: 1, Curve: CurveLinear}
		if got := m.Apply(0); math.Abs(got-r[0]) > 1e-12 {
			t.Errorf("%v: Apply(0) = %g, want %g", r, got, r[0])
		}
		if got := m.Apply(1); math.Abs(got-r[1]) > 1e-12 {
			t.Errorf("%v: Apply(1) = %g, want %g", r, got, r[1])
		}

		// affine: equal input steps give equal output steps
		step := m.Apply(0.25) - m.Apply(0)
		for _, x := range []float64{0.25, 0.5, 0.75} {
			d := m.Apply(x+0.25) - m.Apply(x)
			if math.Abs(d-step) > 1e-12 {
				t.Errorf("%v: step at %g is %g, want %g", r, x, d, step)
			}
		}
	}
}

func TestApplyZeroStrength(t *testing.T) {
	for _, c := range []Curve{CurveLinear, CurveQuadratic, CurveCubic, CurveCustom} {
		for _, inv := range []bool{false, true} {
			m := Mapping{Min: 0.2, Max: 2, Strength: 0, Curve: c, Inverted: inv}
			want := (m.Min + m.Max) / 2
			for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
				if got := m.Apply(x); got != want {
					t.Errorf("%s inverted=%t: Apply(%g) = %g, want %g", c, inv, x, got, want)
				}
			}
		}
	}
}

func TestApplyInverted(t *testing.T) {
	m := Mapping{Min: 0.3, Max: 1, Strength: 0.7, Curve: CurveQuadratic}
	inv := m
	inv.Inverted = true
	for _, x := range []float64{0, 0.2, 0.5, 0.8, 1} {
		got := inv.Apply(x)
		want := m.Apply(1 - x)
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("inverted Apply(%g) = %g, want %g", x, got, want)
		}
	}
}

// TestApplyMidpointBlend pins down that Strength blends towards the centre
// of the output range, not towards a neutral value.
func TestApplyMidpointBlend(t *testing.T) {
	m := Mapping{Min: 0.5, Max: 1.5, Strength: 0.5, Curve: CurveLinear}
	if got := m.Apply(1); got != 1.25 {
		t.Errorf("Apply(1) = %g, want 1.25", got)
	}
	if got := m.Apply(0); got != 0.75 {
		t.Errorf("Apply(0) = %g, want 0.75", got)
	}

	// A range not centred on 1 does not fade to "no effect".
	m = Mapping{Min: 0.2, Max: 3, Strength: 0, Curve: CurveCubic}
	if got := m.Apply(0.5); got != 1.6 {
		t.Errorf("Apply(0.5) = %g, want 1.6", got)
	}
}

func TestCubicCurve(t *testing.T) {
	m := Mapping{Min: 0.2, Max: 2, Strength: 1, Curve: CurveCubic}
	got := m.Apply(0.5)
	want := 0.2 + 1.8*0.125
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Apply(0.5) = %g, want %g", got, want)
	}
}

func TestTargetSupported(t *testing.T) {
	supported := map[Target]bool{
		TargetSize:            true,
		TargetOpacity:         true,
		TargetSpacing:         false,
		TargetHardness:        true,
		TargetFlow:            true,
		TargetScatter:         true,
		TargetRotation:        true,
		TargetColorHue:        false,
		TargetColorSaturation: false,
		TargetColorValue:      false,
		Target(99):            false,
	}
	for target, want := range supported {
		if got := target.Supported(); got != want {
			t.Errorf("%s.Supported() = %t, want %t", target, got, want)
		}
	}
}
