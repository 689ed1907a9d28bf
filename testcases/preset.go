package testcases

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/presets"
)

// presetCases draws the same wavy stroke with every preset.
func presetCases() []TestCase {
	samples := sampled(80, 8, func(u float64) brush.Sample {
		return brush.Sample{
			Pos:      pt(24+208*u, 64+24*math.Sin(2*math.Pi*u)),
			Pressure: 0.2 + 0.8*math.Sin(math.Pi*u),
			TiltX:    math.Cos(math.Pi * u),
			TiltY:    0.3,
		}
	})

	var cases []TestCase
	for i, name := range slices.Sorted(maps.Keys(presets.All)) {
		cases = append(cases, TestCase{
			Name:     name,
			Settings: presets.All[name](),
			Samples:  samples,
			Seed:     uint64(100 + i),
			Width:    256,
			Height:   128,
		})
	}
	return cases
}
