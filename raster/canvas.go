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

package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
)

// Canvas paints dabs into an RGBA image.
type Canvas struct {
	Img *image.RGBA

	// Roundness is the ratio of the minor to the major axis of each dab.
	// With the default value 1 dabs are circles and their rotation has no
	// visible effect.
	Roundness float64

	r *Rasteriser
}

// NewCanvas returns a canvas drawing into img.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	r := NewRasteriser(clip)
	r.Flatness = dabFlatness
	return &Canvas{
		Img:       img,
		Roundness: 1,
		r:         r,
	}
}

// dabFlatness is the flattening tolerance for dab outlines. Dabs are
// often only a few pixels across, where the rasteriser default would
// visibly shrink them.
const dabFlatness = 0.05

// DrawDabs paints the dabs in order.
func (c *Canvas) DrawDabs(dabs []brush.Dab) {
	for _, d := range dabs {
		c.DrawDab(d)
	}
}

// DrawDab paints a single dab.
//
// The dab is an ellipse of diameter d.Size along its major axis, rotated
// by d.Rotation degrees. Inside d.Hardness times the radius the dab is
// opaque, beyond that its alpha falls off linearly to the edge. The dab
// colour is blended over the image with alpha d.Opacity*d.Flow.
func (c *Canvas) DrawDab(d brush.Dab) {
	alpha := d.Opacity * d.Flow
	radius := d.Size / 2
	roundness := c.Roundness
	if !(roundness > 0) || roundness > 1 {
		roundness = 1
	}
	if !(alpha > 0) || !(radius > 0) || !finite(radius, d.Rotation, d.Pos.X, d.Pos.Y) {
		return
	}

	// The dab is a unit circle in user space; the CTM scales, rotates
	// and moves it into place.
	sin, cos := math.Sincos(d.Rotation * math.Pi / 180)
	c.r.CTM = matrix.Matrix{
		radius * cos, radius * sin,
		-radius * roundness * sin, radius * roundness * cos,
		d.Pos.X, d.Pos.Y,
	}
	inv := invert(c.r.CTM)

	src := [3]float64{clamp01(d.Color.R), clamp01(d.Color.G), clamp01(d.Color.B)}
	hardness := clamp01(d.Hardness)
	pix := c.Img.Pix
	b := c.Img.Bounds()

	c.r.Fill(unitCircle, func(y, xMin int, coverage []float32) {
		row := (y-b.Min.Y)*c.Img.Stride + (xMin-b.Min.X)*4
		for i, cov := range coverage {
			// distance from the centre, in radii
			px := float64(xMin+i) + 0.5
			py := float64(y) + 0.5
			u := vec.Vec2{
				X: inv[0]*px + inv[2]*py + inv[4],
				Y: inv[1]*px + inv[3]*py + inv[5],
			}
			a := alpha * float64(cov) * falloff(u.Length(), hardness)
			if a <= 0 {
				continue
			}

			p := pix[row+4*i : row+4*i+4 : row+4*i+4]
			for k := range 3 {
				p[k] = blend(p[k], src[k]*255, a)
			}
			p[3] = blend(p[3], 255, a)
		}
	})
}

// falloff gives the alpha multiplier at distance rho from the dab centre,
// measured in radii.
func falloff(rho, hardness float64) float64 {
	switch {
	case rho <= hardness:
		return 1
	case rho >= 1:
		return 0
	default:
		return (1 - rho) / (1 - hardness)
	}
}

// blend composites a premultiplied source value over dst.
func blend(dst uint8, src, alpha float64) uint8 {
	v := src*alpha + float64(dst)*(1-alpha)
	return uint8(max(0, min(255, math.Round(v))))
}

// invert returns the inverse of the non-singular matrix m.
func invert(m matrix.Matrix) matrix.Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return matrix.Matrix{
		a, b,
		c, d,
		-(a*m[4] + c*m[5]), -(b*m[4] + d*m[5]),
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// unitCircle approximates the unit circle by four cubic Bézier arcs.
var unitCircle = func() *path.Data {
	const k = 0.5522847498
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo,
			path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
			path.CmdClose,
		},
		Coords: []vec.Vec2{
			pt(1, 0),
			pt(1, k), pt(k, 1), pt(0, 1),
			pt(-k, 1), pt(-1, k), pt(-1, 0),
			pt(-1, -k), pt(-k, -1), pt(0, -1),
			pt(k, -1), pt(1, -k), pt(1, 0),
		},
	}
}()
