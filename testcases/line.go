package testcases

import (
	"math"

	"seehuhn.de/go/brush"
)

var lineCases = []TestCase{
	{
		Name:    "horizontal",
		Samples: line(pt(20, 64), pt(236, 64), 24, 8, constant(1)),
		Width:   256,
		Height:  128,
	},
	{
		Name:    "diagonal",
		Samples: line(pt(16, 16), pt(240, 112), 40, 8, constant(1)),
		Width:   256,
		Height:  128,
	},
	{
		// a single sample still gives one dab
		Name:    "single_point",
		Samples: line(pt(64, 64), pt(64, 64), 0, 8, constant(1)),
		Width:   128,
		Height:  128,
	},
	{
		// consecutive samples closer together than the dab spacing
		Name:    "dense_samples",
		Samples: line(pt(20, 64), pt(108, 64), 400, 1, constant(1)),
		Width:   128,
		Height:  128,
	},
	{
		// few samples far apart, several dabs per segment
		Name:    "sparse_samples",
		Samples: line(pt(20, 64), pt(236, 64), 3, 50, constant(1)),
		Width:   256,
		Height:  128,
	},
	{
		Name:    "stationary",
		Samples: line(pt(64, 64), pt(64, 64), 10, 8, constant(1)),
		Width:   128,
		Height:  128,
	},
	{
		Name:     "circle",
		Settings: &brush.Settings{Size: 12, Opacity: 1, Hardness: 0.8, Flow: 1, Spacing: 0.25},
		Samples: sampled(90, 8, func(u float64) brush.Sample {
			phi := 2 * math.Pi * u
			return brush.Sample{
				Pos:      pt(64+48*math.Cos(phi), 64+48*math.Sin(phi)),
				Pressure: 1,
			}
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name:     "zigzag",
		Settings: &brush.Settings{Size: 8, Opacity: 0.8, Hardness: 1, Flow: 1, Spacing: 0.5},
		Samples: sampled(8, 30, func(u float64) brush.Sample {
			x := 16 + 224*u
			y := 32.0
			if int(math.Round(8*u))%2 == 1 {
				y = 96
			}
			return brush.Sample{Pos: pt(x, y), Pressure: 1}
		}),
		Width:  256,
		Height: 128,
	},
}
