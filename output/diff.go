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
	"image/color"

	"golang.org/x/image/draw"
)

// Report summarises the differences between two coverage images.
type Report struct {
	Pixels   int           // number of compared pixels
	Mismatch []image.Point // pixels filled in exactly one image
	Interior int           // mismatches away from the boundary of want
}

// Compare compares the filled pixels of got with those of want.
//
// A mismatch is at the boundary if the 3×3 neighbourhood of the pixel in
// want contains both filled and empty pixels.  Pixels outside the image
// do not count as neighbours.
func Compare(want, got *image.Alpha) Report {
	r := want.Rect.Intersect(got.Rect)
	rep := Report{Pixels: r.Dx() * r.Dy()}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if Filled(want, x, y) == Filled(got, x, y) {
				continue
			}
			rep.Mismatch = append(rep.Mismatch, image.Point{X: x, Y: y})
			if !onBoundary(want, r, x, y) {
				rep.Interior++
			}
		}
	}
	return rep
}

func onBoundary(cov *image.Alpha, r image.Rectangle, x, y int) bool {
	in, out := false, false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := image.Point{X: x + dx, Y: y + dy}
			if !p.In(r) {
				continue
			}
			if Filled(cov, p.X, p.Y) {
				in = true
			} else {
				out = true
			}
		}
	}
	return in && out
}

// Panel colours used by [DiffImage].
var (
	onlyWant = color.RGBA{R: 220, A: 255}
	onlyGot  = color.RGBA{B: 220, A: 255}
	both     = color.RGBA{R: 96, G: 96, B: 96, A: 255}
)

// DiffImage places want, got and a difference map side by side, separated
// by a one pixel gap.  In the difference map, pixels filled only in want
// are red, pixels filled only in got are blue.
func DiffImage(want, got *image.Alpha) *image.RGBA {
	r := want.Rect.Intersect(got.Rect)
	w, h := r.Dx(), r.Dy()
	img := image.NewRGBA(image.Rect(0, 0, 3*w+2, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{G: 160, A: 255}), image.Point{}, draw.Src)

	for y := range h {
		for x := range w {
			p := r.Min.Add(image.Point{X: x, Y: y})
			a, b := want.AlphaAt(p.X, p.Y).A, got.AlphaAt(p.X, p.Y).A
			img.Set(x, y, color.Gray{Y: 255 - a})
			img.Set(w+1+x, y, color.Gray{Y: 255 - b})

			var c color.Color = color.White
			fa, fb := a >= Threshold, b >= Threshold
			switch {
			case fa && fb:
				c = both
			case fa:
				c = onlyWant
			case fb:
				c = onlyGot
			}
			img.Set(2*w+2+x, y, c)
		}
	}
	return img
}
