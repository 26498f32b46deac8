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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// CirclePath returns a closed counter-clockwise circle built from four
// cubic Bézier segments.
func CirclePath(center vec.Vec2, radius float64) *path.Data {
	cx, cy := center.X, center.Y
	k := kappa * radius

	p := &path.Data{}
	p.Cmds = append(p.Cmds,
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose)
	p.Coords = append(p.Coords,
		vec.Vec2{X: cx, Y: cy - radius},

		vec.Vec2{X: cx + k, Y: cy - radius},
		vec.Vec2{X: cx + radius, Y: cy - k},
		vec.Vec2{X: cx + radius, Y: cy},

		vec.Vec2{X: cx + radius, Y: cy + k},
		vec.Vec2{X: cx + k, Y: cy + radius},
		vec.Vec2{X: cx, Y: cy + radius},

		vec.Vec2{X: cx - k, Y: cy + radius},
		vec.Vec2{X: cx - radius, Y: cy + k},
		vec.Vec2{X: cx - radius, Y: cy},

		vec.Vec2{X: cx - radius, Y: cy - k},
		vec.Vec2{X: cx - k, Y: cy - radius},
		vec.Vec2{X: cx, Y: cy - radius},
	)
	return p
}

// RectPath returns the closed outline of r.
func RectPath(r rect.Rect) *path.Data {
	p := &path.Data{}
	p.Cmds = append(p.Cmds,
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdClose)
	p.Coords = append(p.Coords,
		vec.Vec2{X: r.LLx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.URy},
		vec.Vec2{X: r.LLx, Y: r.URy},
	)
	return p
}

// Extent returns the bounding box of the path's points after mapping them
// with ctm. Control points are included, so the box may be larger than the
// filled area. The second result is false for a path without points.
func Extent(p *path.Data, ctm matrix.Matrix) (rect.Rect, bool) {
	if len(p.Coords) == 0 {
		return rect.Rect{}, false
	}
	first := Apply(ctm, p.Coords[0])
	box := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, c := range p.Coords[1:] {
		q := Apply(ctm, c)
		box.LLx = min(box.LLx, q.X)
		box.LLy = min(box.LLy, q.Y)
		box.URx = max(box.URx, q.X)
		box.URy = max(box.URy, q.Y)
	}
	return box, true
}
