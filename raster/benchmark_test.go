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

package raster

import (
	"fmt"
	"image"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkDisc compares both fillers drawing a centred disc.
func BenchmarkDisc(b *testing.B) {
	fillers := []struct {
		name string
		f    Filler
	}{
		{"rasteriser", NewRasteriser()},
		{"vector", NewVectorFiller()},
	}
	sizes := []int{20, 200, 2000}

	for _, fl := range fillers {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/%dx%d", fl.name, size, size), func(b *testing.B) {
				dst := image.NewAlpha(image.Rect(0, 0, size, size))
				center := float64(size) / 2
				p := CirclePath(vec.Vec2{X: center, Y: center}, float64(size)*0.45)

				b.ReportAllocs()
				for b.Loop() {
					clear(dst.Pix)
					fl.f.Fill(p, matrix.Identity, dst)
				}
			})
		}
	}
}
