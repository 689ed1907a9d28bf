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

// Package testcases provides named stroke scenarios for tests and tools.
package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
)

// TestCase defines a single stroke.
type TestCase struct {
	Name     string          // lowercase a-z and _ only
	Settings *brush.Settings // nil means brush.DefaultSettings
	Samples  []brush.Sample  // the pointer samples of one stroke
	Seed     uint64          // seed for the engine's random numbers
	Width    int             // canvas width in pixels
	Height   int             // canvas height in pixels
}

// Run feeds the samples of tc to a fresh engine as a single stroke and
// returns all dabs in painting order.
func Run(tc TestCase) []brush.Dab {
	e := brush.NewEngine(tc.Settings, rand.NewPCG(tc.Seed, tc.Seed^0x9e3779b97f4a7c15))
	e.BeginStroke()
	var dabs []brush.Dab
	for _, s := range tc.Samples {
		dabs = e.AppendInput(dabs, s)
	}
	e.EndStroke()
	return dabs
}

// sampled evaluates f at n+1 evenly spaced parameters u in [0, 1] and
// returns the resulting samples, dt milliseconds apart. The velocities
// are filled in by a [brush.Tracker].
func sampled(n int, dt uint64, f func(u float64) brush.Sample) []brush.Sample {
	var tr brush.Tracker
	res := make([]brush.Sample, n+1)
	for i := range res {
		u := 1.0
		if n > 0 {
			u = float64(i) / float64(n)
		}
		s := f(u)
		s.Time = 1000 + uint64(i)*dt
		res[i] = tr.Update(s)
	}
	return res
}

// line returns n+1 samples along the segment from a to b.
func line(a, b vec.Vec2, n int, dt uint64, pressure func(u float64) float64) []brush.Sample {
	return sampled(n, dt, func(u float64) brush.Sample {
		return brush.Sample{
			Pos:      a.Add(b.Sub(a).Mul(u)),
			Pressure: pressure(u),
		}
	})
}

// constant returns a pressure profile with value p.
func constant(p float64) func(float64) float64 {
	return func(float64) float64 { return p }
}

// ramp rises linearly from 0 to 1.
func ramp(u float64) float64 {
	return u
}

// with returns the default settings extended by the given mappings.
func with(mappings ...brush.Mapping) *brush.Settings {
	s := brush.DefaultSettings()
	s.Mappings = mappings
	return s
}

// linear is a full-strength linear mapping.
func linear(src brush.Source, dst brush.Target, lo, hi float64) brush.Mapping {
	return brush.Mapping{
		Source:   src,
		Target:   dst,
		Min:      lo,
		Max:      hi,
		Strength: 1,
		Curve:    brush.CurveLinear,
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
