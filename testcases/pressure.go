package testcases

import (
	"math"

	"seehuhn.de/go/brush"
)

var pressureCases = []TestCase{
	{
		Name:     "ramp_size",
		Settings: with(linear(brush.SourcePressure, brush.TargetSize, 0.1, 1.5)),
		Samples:  line(pt(20, 64), pt(236, 64), 50, 8, ramp),
		Width:    256,
		Height:   128,
	},
	{
		Name: "quadratic_size",
		Settings: with(brush.Mapping{
			Source:   brush.SourcePressure,
			Target:   brush.TargetSize,
			Min:      0.2,
			Max:      2,
			Strength: 1,
			Curve:    brush.CurveQuadratic,
		}),
		Samples: line(pt(20, 64), pt(236, 64), 50, 8, ramp),
		Width:   256,
		Height:  128,
	},
	{
		Name: "taper",
		Settings: with(
			linear(brush.SourcePressure, brush.TargetSize, 0.2, 1.2),
			linear(brush.SourcePressure, brush.TargetOpacity, 0.3, 1),
		),
		Samples: line(pt(20, 64), pt(236, 64), 60, 8, func(u float64) float64 {
			return math.Sin(math.Pi * u)
		}),
		Width:  256,
		Height: 128,
	},
	{
		Name: "inverted_flow",
		Settings: with(brush.Mapping{
			Source:   brush.SourcePressure,
			Target:   brush.TargetFlow,
			Min:      0.1,
			Max:      1,
			Strength: 1,
			Curve:    brush.CurveLinear,
			Inverted: true,
		}),
		Samples: line(pt(20, 64), pt(236, 64), 50, 8, ramp),
		Width:   256,
		Height:  128,
	},
	{
		// strength 0.5 pulls the response towards the middle of the range
		Name: "half_strength",
		Settings: with(brush.Mapping{
			Source:   brush.SourcePressure,
			Target:   brush.TargetSize,
			Min:      0.2,
			Max:      3,
			Strength: 0.5,
			Curve:    brush.CurveCubic,
		}),
		Samples: line(pt(20, 64), pt(236, 64), 50, 8, ramp),
		Width:   256,
		Height:  128,
	},
	{
		Name: "hardness",
		Settings: with(
			linear(brush.SourcePressure, brush.TargetHardness, 0, 1),
		),
		Samples: line(pt(20, 64), pt(236, 64), 30, 8, ramp),
		Width:   256,
		Height:  128,
	},
}
