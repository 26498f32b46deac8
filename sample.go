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

package region

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/canvas"
)

// Sample renders r by testing the centre of every unit cell in bounds.
// Cells whose centre is in r are filled with the current fill colour.
// Horizontally adjacent cells are filled as one rectangle.
//
// Sample works for every region, but evaluates the full membership test
// once per pixel.
func Sample(c canvas.Canvas, r Region, bounds rect.Rect) error {
	if err := Validate(r); err != nil {
		return err
	}
	if err := checkBounds(bounds); err != nil {
		return err
	}

	x0 := int(math.Floor(bounds.LLx))
	x1 := int(math.Ceil(bounds.URx))
	y0 := int(math.Floor(bounds.LLy))
	y1 := int(math.Ceil(bounds.URy))

	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		start := -1
		for x := x0; x <= x1; x++ {
			in := x < x1 && r.Contains(vec.Vec2{X: float64(x) + 0.5, Y: py})
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				cell := rect.Rect{
					LLx: float64(start), LLy: float64(y),
					URx: float64(x), URy: float64(y + 1),
				}
				if err := c.FillRect(cell); err != nil {
					return err
				}
				start = -1
			}
		}
	}
	return nil
}
