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
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/canvas"
)

// Circle is a disc centred at the origin.
type Circle struct {
	radius float64
}

// NewCircle returns the disc of the given radius around the origin.
// A circle of radius zero contains only the origin.
func NewCircle(radius float64) (*Circle, error) {
	if !(radius >= 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: circle radius %g", ErrInvalidArgument, radius)
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Contains implements the [Region] interface.
func (c *Circle) Contains(p vec.Vec2) bool {
	return p.X*p.X+p.Y*p.Y <= c.radius*c.radius
}

// Draw implements the [Region] interface.
func (c *Circle) Draw(cv canvas.Canvas, bounds rect.Rect) error {
	if c.radius <= 0 || !overlaps(bounds, c.radius) {
		return nil
	}
	return cv.FillDisc(vec.Vec2{}, c.radius)
}

func (c *Circle) String() string {
	return "circle(" + strconv.FormatFloat(c.radius, 'g', -1, 64) + ")"
}

// overlaps reports whether the disc of radius r around the origin can
// intersect b.
func overlaps(b rect.Rect, r float64) bool {
	return b.LLx <= r && b.URx >= -r && b.LLy <= r && b.URy >= -r
}
