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
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/canvas"
)

// OffsetRegion is a region translated by a fixed vector.
type OffsetRegion struct {
	child  Region
	dx, dy float64
}

// Offset returns r translated by (dx, dy).
func Offset(r Region, dx, dy float64) *OffsetRegion {
	return &OffsetRegion{child: r, dx: dx, dy: dy}
}

// Child returns the region before translation.
func (r *OffsetRegion) Child() Region {
	return r.child
}

// Delta returns the translation vector.
func (r *OffsetRegion) Delta() vec.Vec2 {
	return vec.Vec2{X: r.dx, Y: r.dy}
}

// Contains implements the [Region] interface.
func (r *OffsetRegion) Contains(p vec.Vec2) bool {
	return r.child.Contains(vec.Vec2{X: p.X - r.dx, Y: p.Y - r.dy})
}

// Draw implements the [Region] interface.
// The child is drawn with the origin moved to (dx, dy), so that the
// bounds seen by the child are shifted by (-dx, -dy).
func (r *OffsetRegion) Draw(c canvas.Canvas, bounds rect.Rect) error {
	local := rect.Rect{
		LLx: bounds.LLx - r.dx,
		LLy: bounds.LLy - r.dy,
		URx: bounds.URx - r.dx,
		URy: bounds.URy - r.dy,
	}
	return canvas.Scoped(c, func() error {
		c.Translate(r.dx, r.dy)
		return r.child.Draw(c, local)
	})
}

func (r *OffsetRegion) String() string {
	return r.child.String() + ".offset(" +
		strconv.FormatFloat(r.dx, 'g', -1, 64) + "," +
		strconv.FormatFloat(r.dy, 'g', -1, 64) + ")"
}
