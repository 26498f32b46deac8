// seehuhn.de/go/region - region algebra and rendering
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

package output

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/geom/matrix"
)

// WritePNG writes img to the given file, creating the directory if
// needed.
func WritePNG(name string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// WritePDF writes a one-page PDF file showing the filled pixels of cov as
// black squares, one PDF unit per pixel.  Horizontal runs of filled
// pixels are drawn as a single rectangle.
func WritePDF(name string, cov *image.Alpha) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}

	w, h := cov.Rect.Dx(), cov.Rect.Dy()
	paper := &pdf.Rectangle{URx: float64(w), URy: float64(h)}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, image rows run top to bottom.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})
	page.SetFillColor(color.DeviceGray(0))

	runs := 0
	for y := range h {
		start := -1
		for x := 0; x <= w; x++ {
			in := x < w && Filled(cov, cov.Rect.Min.X+x, cov.Rect.Min.Y+y)
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				page.Rectangle(float64(start), float64(y), float64(x-start), 1)
				start = -1
				runs++
			}
		}
	}
	if runs > 0 {
		page.Fill()
	}

	return page.Close()
}
