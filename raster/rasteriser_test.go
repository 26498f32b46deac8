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
	"image"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	dst := image.NewAlpha(image.Rect(0, 0, 10, 1))
	NewRasteriser().Fill(triangle, matrix.Identity, dst)

	for x := range 10 {
		expected := 255 * float64(2*x+1) / 20
		actual := float64(dst.Pix[x])
		if math.Abs(actual-expected) > 1 {
			t.Errorf("pixel %d: expected coverage %.1f, got %.0f", x, expected, actual)
		}
	}
}

// TestAlignedRect checks that a pixel-aligned rectangle produces full
// coverage inside and none outside.
func TestAlignedRect(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 8, 8))
	p := RectPath(rect.Rect{LLx: 2, LLy: 3, URx: 6, URy: 5})
	NewRasteriser().Fill(p, matrix.Identity, dst)

	for y := range 8 {
		for x := range 8 {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			got := dst.AlphaAt(x, y).A
			if inside && got != 255 || !inside && got != 0 {
				t.Errorf("pixel (%d,%d): coverage %d, inside=%t", x, y, got, inside)
			}
		}
	}
}

// TestDiscArea compares the total coverage of a disc with πr².
func TestDiscArea(t *testing.T) {
	fillers := map[string]Filler{
		"rasteriser": NewRasteriser(),
		"vector":     NewVectorFiller(),
	}
	for name, f := range fillers {
		t.Run(name, func(t *testing.T) {
			const radius = 20
			dst := image.NewAlpha(image.Rect(0, 0, 64, 64))
			f.Fill(CirclePath(vec.Vec2{X: 32, Y: 32}, radius), matrix.Identity, dst)

			var sum float64
			for _, a := range dst.Pix {
				sum += float64(a) / 255
			}
			want := math.Pi * radius * radius
			if math.Abs(sum-want)/want > 0.005 {
				t.Errorf("disc area %.2f, want %.2f", sum, want)
			}
		})
	}
}

// TestOffsetDestination checks that a buffer whose origin is not (0,0)
// receives the same pixels as the matching part of a full-size buffer.
func TestOffsetDestination(t *testing.T) {
	fillers := map[string]func() Filler{
		"rasteriser": func() Filler { return NewRasteriser() },
		"vector":     func() Filler { return NewVectorFiller() },
	}
	for name, mk := range fillers {
		t.Run(name, func(t *testing.T) {
			p := CirclePath(vec.Vec2{X: 30, Y: 25}, 12)

			full := image.NewAlpha(image.Rect(0, 0, 64, 64))
			mk().Fill(p, matrix.Identity, full)

			part := image.NewAlpha(image.Rect(20, 15, 50, 33))
			mk().Fill(p, matrix.Identity, part)

			for y := part.Rect.Min.Y; y < part.Rect.Max.Y; y++ {
				for x := part.Rect.Min.X; x < part.Rect.Max.X; x++ {
					a, b := full.AlphaAt(x, y).A, part.AlphaAt(x, y).A
					if d := int(a) - int(b); d < -2 || d > 2 {
						t.Fatalf("pixel (%d,%d): full %d, part %d", x, y, a, b)
					}
				}
			}
		})
	}
}

// TestTranslatedCTM checks that the CTM translation moves the fill.
func TestTranslatedCTM(t *testing.T) {
	r := NewRasteriser()

	direct := image.NewAlpha(image.Rect(0, 0, 40, 40))
	r.Fill(CirclePath(vec.Vec2{X: 25, Y: 15}, 8), matrix.Identity, direct)

	moved := image.NewAlpha(image.Rect(0, 0, 40, 40))
	ctm := matrix.Matrix{1, 0, 0, 1, 25, 15}
	r.Fill(CirclePath(vec.Vec2{}, 8), ctm, moved)

	for i := range direct.Pix {
		if d := int(direct.Pix[i]) - int(moved.Pix[i]); d < -1 || d > 1 {
			t.Fatalf("pixel %d: direct %d, translated %d", i, direct.Pix[i], moved.Pix[i])
		}
	}
}

func TestFillersAgree(t *testing.T) {
	p := CirclePath(vec.Vec2{X: 50.3, Y: 40.7}, 31.2)

	a := image.NewAlpha(image.Rect(0, 0, 100, 100))
	NewRasteriser().Fill(p, matrix.Identity, a)
	b := image.NewAlpha(image.Rect(0, 0, 100, 100))
	NewVectorFiller().Fill(p, matrix.Identity, b)

	for i := range a.Pix {
		if d := int(a.Pix[i]) - int(b.Pix[i]); d < -24 || d > 24 {
			t.Errorf("pixel %d: rasteriser %d, vector %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestEmptyPath(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 4, 4))
	NewRasteriser().Fill(&path.Data{}, matrix.Identity, dst)
	NewVectorFiller().Fill(&path.Data{}, matrix.Identity, dst)
	NewRasteriser().Fill(CirclePath(vec.Vec2{X: 2, Y: 2}, 0), matrix.Identity, dst)
	for i, a := range dst.Pix {
		if a != 0 {
			t.Fatalf("pixel %d: coverage %d, want 0", i, a)
		}
	}
}
