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

// Package output renders regions into images and compares and saves the
// results.
//
// Rendered images show the region in black on a white background.  The
// coverage of a pixel is 255 minus its grey value.
package output

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/canvas"
)

// Threshold is the smallest coverage value at which a pixel counts as
// filled.
const Threshold = 128

// Render draws r onto a new white w×h image using the given mode.
func Render(r region.Region, w, h int, mode region.Mode, opts ...canvas.Option) (*image.Gray, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", region.ErrInvalidArgument, w, h)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	c := canvas.NewImage(img, opts...)

	bounds, err := region.Bounds(0, 0, float64(w), float64(h))
	if err != nil {
		return nil, err
	}
	v := region.NewView(nil)
	v.SetMode(mode)
	v.SetRegion(r)
	if err := v.Redraw(c, bounds); err != nil {
		return nil, err
	}
	return img, nil
}

// Coverage returns the ink coverage of an image rendered in black on
// white.
func Coverage(img image.Image) *image.Alpha {
	b := img.Bounds()
	cov := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			cov.Pix[cov.PixOffset(x, y)] = 255 - g.Y
		}
	}
	return cov
}

// Binarize maps coverage values to 0 or 255, using [Threshold].
func Binarize(cov *image.Alpha) *image.Alpha {
	res := image.NewAlpha(cov.Rect)
	for i, a := range cov.Pix {
		if a >= Threshold {
			res.Pix[i] = 255
		}
	}
	return res
}

// Filled reports whether the pixel (x, y) of cov counts as filled.
func Filled(cov *image.Alpha, x, y int) bool {
	return cov.AlphaAt(x, y).A >= Threshold
}
