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

// Command genpdf draws the dabs of every test case into a single-page PDF.
// Each dab is painted as a disc of flat grey, so the files show dab
// placement and size independently of the raster package.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/testcases"
)

const outDir = "testdata/pdf"

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; samples use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, d := range testcases.Run(tc) {
		r := d.Size / 2
		x, y := d.Pos.X, d.Pos.Y

		page.SetFillColor(color.DeviceGray(grey(d)))
		page.MoveTo(x+r, y)
		page.CurveTo(x+r, y+kappa*r, x+kappa*r, y+r, x, y+r)
		page.CurveTo(x-kappa*r, y+r, x-r, y+kappa*r, x-r, y)
		page.CurveTo(x-r, y-kappa*r, x-kappa*r, y-r, x, y-r)
		page.CurveTo(x+kappa*r, y-r, x+r, y-kappa*r, x+r, y)
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}

// grey returns the shade of a single dab over white paper.
func grey(d brush.Dab) float64 {
	lum := 0.299*d.Color.R + 0.587*d.Color.G + 0.114*d.Color.B
	a := d.Opacity * d.Flow
	return 1 - a*(1-lum)
}
