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

package brush_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/testcases"
)

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				dabs := testcases.Run(tc)

				if len(dabs) == 0 {
					t.Fatal("no dabs")
				}
				if dabs[0].Pos != tc.Samples[0].Pos {
					t.Errorf("first dab at %v, want %v", dabs[0].Pos, tc.Samples[0].Pos)
				}
				if len(dabs) > 1 && len(tc.Samples) == 1 {
					t.Errorf("single sample gave %d dabs", len(dabs))
				}

				for i, d := range dabs {
					checkDab(t, i, d)
				}

				if again := testcases.Run(tc); !slices.Equal(dabs, again) {
					t.Error("second run gave different dabs")
				}
			})
		}
	}
}

func checkDab(t *testing.T, i int, d brush.Dab) {
	t.Helper()
	for _, x := range []float64{d.Pos.X, d.Pos.Y, d.Size, d.Opacity, d.Flow, d.Hardness, d.Rotation} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("dab %d: non-finite value in %+v", i, d)
		}
	}
	if d.Size < 0.1 {
		t.Errorf("dab %d: size %g", i, d.Size)
	}
	if d.Opacity < 0 || d.Opacity > 1 {
		t.Errorf("dab %d: opacity %g", i, d.Opacity)
	}
	if d.Flow < 0 || d.Flow > 1 {
		t.Errorf("dab %d: flow %g", i, d.Flow)
	}
	if d.Hardness < 0 || d.Hardness > 1 {
		t.Errorf("dab %d: hardness %g", i, d.Hardness)
	}
}

// TestScenarioSpacing checks straight strokes of constant size: the dabs
// are exactly one spacing apart and cover the whole stroke.
func TestScenarioSpacing(t *testing.T) {
	straight := []string{"horizontal", "diagonal", "dense_samples", "sparse_samples"}
	for _, tc := range testcases.All["line"] {
		if !slices.Contains(straight, tc.Name) {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			dabs := testcases.Run(tc)

			s := brush.DefaultSettings()
			spacing := s.Size * s.Spacing
			first := tc.Samples[0].Pos
			length := tc.Samples[len(tc.Samples)-1].Pos.Sub(first).Length()

			want := 1 + int(math.Floor(length/spacing+1e-9))
			if len(dabs) != want {
				t.Errorf("got %d dabs, want %d", len(dabs), want)
			}
			for i := 1; i < len(dabs); i++ {
				gap := dabs[i].Pos.Sub(dabs[i-1].Pos).Length()
				if math.Abs(gap-spacing) > 1e-9 {
					t.Errorf("gap %d is %g, want %g", i, gap, spacing)
				}
			}
		})
	}
}

// TestScenarioStationary checks that a pointer which does not move only
// produces the initial dab.
func TestScenarioStationary(t *testing.T) {
	for _, tc := range testcases.All["line"] {
		if tc.Name != "stationary" {
			continue
		}
		if dabs := testcases.Run(tc); len(dabs) != 1 {
			t.Errorf("got %d dabs, want 1", len(dabs))
		}
		return
	}
	t.Fatal("stationary test case not found")
}

// TestScenarioScatterBounds checks that no dab strays further from the
// stroke than its scatter allows.
func TestScenarioScatterBounds(t *testing.T) {
	for _, tc := range testcases.All["scatter"] {
		t.Run(tc.Name, func(t *testing.T) {
			y := tc.Samples[0].Pos.Y
			if tc.Samples[len(tc.Samples)-1].Pos.Y != y {
				t.Skip("not a horizontal stroke")
			}
			for i, d := range testcases.Run(tc) {
				bound := d.Scatter*d.Size*0.5 + 1e-9
				if math.Abs(d.Pos.Y-y) > bound {
					t.Errorf("dab %d: offset %g exceeds %g", i, d.Pos.Y-y, bound)
				}
			}
		})
	}
}
