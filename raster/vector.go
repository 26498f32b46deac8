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
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var opaque = image.NewUniform(color.Alpha{A: 255})

// VectorFiller fills paths using golang.org/x/image/vector.
//
// A VectorFiller is not safe for concurrent use.
type VectorFiller struct {
	r *vector.Rasterizer
}

// NewVectorFiller returns a new VectorFiller.
func NewVectorFiller() *VectorFiller {
	return &VectorFiller{}
}

// Fill implements the [Filler] interface.
func (f *VectorFiller) Fill(p *path.Data, ctm matrix.Matrix, dst *image.Alpha) {
	size := dst.Rect.Size()
	if size.X <= 0 || size.Y <= 0 || len(p.Cmds) == 0 {
		return
	}
	if f.r == nil {
		f.r = vector.NewRasterizer(size.X, size.Y)
	} else {
		f.r.Reset(size.X, size.Y)
	}
	f.r.DrawOp = draw.Over

	// The vector rasteriser works relative to dst.Rect.Min.
	origin := dst.Rect.Min
	pt := func(v vec.Vec2) (float32, float32) {
		q := Apply(ctm, v)
		return float32(q.X - float64(origin.X)), float32(q.Y - float64(origin.Y))
	}

	var cur, start vec.Vec2
	k := 0
	open := false
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				f.r.ClosePath()
			}
			cur = p.Coords[k]
			start = cur
			x, y := pt(cur)
			f.r.MoveTo(x, y)
			open = true
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			x, y := pt(cur)
			f.r.LineTo(x, y)
			k++
		case path.CmdQuadTo:
			bx, by := pt(p.Coords[k])
			x, y := pt(p.Coords[k+1])
			f.r.QuadTo(bx, by, x, y)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			f.cubeTo(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], cubicSplits, pt)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			f.r.ClosePath()
			cur = start
			open = false
		}
	}
	if open {
		f.r.ClosePath()
	}

	f.r.Draw(dst, dst.Rect, opaque, image.Point{})
}

// cubicSplits is the number of times each cubic is halved before it is
// handed to the vector rasteriser, whose own flattening is coarse for
// large curves.
const cubicSplits = 2

// cubeTo adds a cubic Bézier, halving it depth times first.
func (f *VectorFiller) cubeTo(p0, p1, p2, p3 vec.Vec2, depth int, pt func(vec.Vec2) (float32, float32)) {
	if depth > 0 {
		// de Casteljau split at t = 1/2
		p01 := p0.Add(p1).Mul(0.5)
		p12 := p1.Add(p2).Mul(0.5)
		p23 := p2.Add(p3).Mul(0.5)
		a := p01.Add(p12).Mul(0.5)
		b := p12.Add(p23).Mul(0.5)
		m := a.Add(b).Mul(0.5)
		f.cubeTo(p0, p01, a, m, depth-1, pt)
		f.cubeTo(m, b, p23, p3, depth-1, pt)
		return
	}
	bx, by := pt(p1)
	cx, cy := pt(p2)
	x, y := pt(p3)
	f.r.CubeTo(bx, by, cx, cy, x, y)
}
