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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/testcases"
)

// TestAgainstReference compares the painted test cases with an
// independent rendering, where each dab outline is a fine polygon filled
// by golang.org/x/image/vector.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				dabs := testcases.Run(tc)
				ref := toGray(referencePaint(tc.Width, tc.Height, dabs))
				actual := toGray(paint(tc))
				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestReferencePaint makes sure the reference rendering is not blank, so
// that TestAgainstReference cannot pass by comparing two empty images.
func TestReferencePaint(t *testing.T) {
	dab := brush.Dab{
		Pos:      vec.Vec2{X: 16, Y: 16},
		Size:     20,
		Opacity:  1,
		Flow:     1,
		Hardness: 1,
	}
	img := referencePaint(32, 32, []brush.Dab{dab})
	if got := img.RGBAAt(16, 16); got != (color.RGBA{A: 255}) {
		t.Errorf("centre is %v, want black", got)
	}
	if got := img.RGBAAt(16, 28); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel outside the dab is %v, want white", got)
	}

	// a soft dab is a cone of volume pi r^2 / 3
	dab.Hardness = 0
	img = referencePaint(32, 32, []brush.Dab{dab})
	var dark float64
	for y := range 32 {
		for x := range 32 {
			dark += 1 - float64(img.RGBAAt(x, y).R)/255
		}
	}
	if want := math.Pi * 100 / 3; math.Abs(dark-want) > 0.03*want {
		t.Errorf("painted volume %g, want about %g", dark, want)
	}
}

// referenceSegments is the number of polygon edges used for each dab.
const referenceSegments = 256

// referencePaint paints round dabs onto a white image. Coverage comes
// from golang.org/x/image/vector; the hardness falloff is evaluated at
// pixel centres.
func referencePaint(w, h int, dabs []brush.Dab) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	v := vector.NewRasterizer(w, h)
	mask := image.NewAlpha(img.Bounds())
	opaque := image.NewUniform(color.Alpha{A: 255})

	for _, d := range dabs {
		alpha := d.Opacity * d.Flow
		r := d.Size / 2
		if !(alpha > 0) || !(r > 0) {
			continue
		}

		v.Reset(w, h)
		v.DrawOp = draw.Src
		for k := range referenceSegments {
			phi := 2 * math.Pi * float64(k) / referenceSegments
			x := float32(d.Pos.X + r*math.Cos(phi))
			y := float32(d.Pos.Y + r*math.Sin(phi))
			if k == 0 {
				v.MoveTo(x, y)
			} else {
				v.LineTo(x, y)
			}
		}
		v.ClosePath()
		v.Draw(mask, mask.Bounds(), opaque, image.Point{})

		colour := [3]float64{d.Color.R, d.Color.G, d.Color.B}
		x0 := max(0, int(math.Floor(d.Pos.X-r)))
		x1 := min(w, int(math.Ceil(d.Pos.X+r))+1)
		y0 := max(0, int(math.Floor(d.Pos.Y-r)))
		y1 := min(h, int(math.Ceil(d.Pos.Y+r))+1)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				cov := mask.Pix[y*mask.Stride+x]
				if cov == 0 {
					continue
				}
				rho := math.Hypot(float64(x)+0.5-d.Pos.X, float64(y)+0.5-d.Pos.Y) / r
				var f float64
				switch {
				case rho <= d.Hardness:
					f = 1
				case rho < 1:
					f = (1 - rho) / (1 - d.Hardness)
				}
				a := alpha * float64(cov) / 255 * f
				if a <= 0 {
					continue
				}

				p := img.Pix[y*img.Stride+4*x:]
				for k, c := range colour {
					p[k] = uint8(math.Round(c*255*a + float64(p[k])*(1-a)))
				}
				p[3] = uint8(math.Round(255*a + float64(p[3])*(1-a)))
			}
		}
	}
	return img
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total {
		return fmt.Errorf("reference has %d pixels, want %d", len(expected), total)
	}

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]
	worst := diffs[total-1]

	// The two renderers approximate dab outlines differently, so pixels
	// on dab edges may differ.
	var failures []string
	if p95 > 8 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <=8)", p95))
	}
	if p99 > 32 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <=32)", p99))
	}
	if worst >= 96 {
		failures = append(failures, fmt.Sprintf("maximum diff is %d (want <96)", worst))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: too light, red: too dark
			diff := int(expected[i]) - int(actual[i])
			var diffColor color.RGBA
			switch {
			case diff > 0:
				diffColor = color.RGBA{R: uint8(diff), A: 255}
			case diff < 0:
				diffColor = color.RGBA{G: uint8(-diff), A: 255}
			default:
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
