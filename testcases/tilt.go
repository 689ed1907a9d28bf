package testcases

import (
	"math"

	"seehuhn.de/go/brush"
)

var tiltCases = []TestCase{
	{
		Name:     "tilt_rotation",
		Settings: with(linear(brush.SourceTiltX, brush.TargetRotation, -45, 45)),
		Samples:  tilted(func(u float64) (float64, float64) { return 2*u - 1, 0 }),
		Width:    256,
		Height:   128,
	},
	{
		Name: "tilt_opacity",
		Settings: with(brush.Mapping{
			Source:   brush.SourceTiltMagnitude,
			Target:   brush.TargetOpacity,
			Min:      1,
			Max:      0.4,
			Strength: 0.8,
			Curve:    brush.CurveLinear,
		}),
		Samples: tilted(func(u float64) (float64, float64) {
			return u * math.Cos(3*u), u * math.Sin(3*u)
		}),
		Width:  256,
		Height: 128,
	},
	{
		Name:     "tilt_y_size",
		Settings: with(linear(brush.SourceTiltY, brush.TargetSize, 0.5, 2)),
		Samples:  tilted(func(u float64) (float64, float64) { return 0, math.Cos(2 * math.Pi * u) }),
		Width:    256,
		Height:   128,
	},
	{
		Name:     "barrel_rotation",
		Settings: with(linear(brush.SourceRotation, brush.TargetRotation, 0, 360)),
		Samples: sampled(40, 8, func(u float64) brush.Sample {
			return brush.Sample{
				Pos:      pt(20+216*u, 64),
				Pressure: 1,
				Rotation: math.Mod(720*u, 360),
			}
		}),
		Width:  256,
		Height: 128,
	},
}

// tilted returns a horizontal stroke at full pressure with the given
// tilt profile.
func tilted(tilt func(u float64) (x, y float64)) []brush.Sample {
	return sampled(40, 8, func(u float64) brush.Sample {
		tx, ty := tilt(u)
		return brush.Sample{
			Pos:      pt(20+216*u, 64),
			Pressure: 1,
			TiltX:    tx,
			TiltY:    ty,
		}
	})
}
