package testcases

import (
	"math"

	"seehuhn.de/go/brush"
)

var scatterCases = []TestCase{
	{
		Name:     "random_scatter",
		Settings: with(linear(brush.SourceRandom, brush.TargetScatter, 0, 1)),
		Samples:  line(pt(20, 64), pt(236, 64), 30, 8, constant(1)),
		Seed:     1,
		Width:    256,
		Height:   128,
	},
	{
		Name:     "constant_scatter",
		Settings: with(linear(brush.SourceConstant, brush.TargetScatter, 0, 2)),
		Samples:  line(pt(20, 64), pt(236, 64), 30, 8, constant(1)),
		Seed:     2,
		Width:    256,
		Height:   128,
	},
	{
		Name:     "random_size",
		Settings: with(linear(brush.SourceRandom, brush.TargetSize, 0.3, 1.7)),
		Samples:  line(pt(20, 64), pt(236, 64), 30, 8, constant(1)),
		Seed:     3,
		Width:    256,
		Height:   128,
	},
	{
		// the pointer speeds up along the stroke
		Name: "speed_size",
		Settings: with(brush.Mapping{
			Source:   brush.SourceSpeed,
			Target:   brush.TargetSize,
			Min:      1.5,
			Max:      0.3,
			Strength: 1,
			Curve:    brush.CurveLinear,
		}),
		Samples: sampled(40, 16, func(u float64) brush.Sample {
			return brush.Sample{
				Pos:      pt(20+216*u*u, 64+20*math.Sin(4*u)),
				Pressure: 1,
			}
		}),
		Width:  256,
		Height: 128,
	},
}
