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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/canvas"
)

// binary is implemented by the regions combining two operands.
type binary interface {
	Region
	operands() (left, right Region)
	kind() string
	isNil() bool
}

// UnionRegion contains the points which are in at least one of two regions.
type UnionRegion struct {
	left, right Region
}

// Union returns the union of a and b.
func Union(a, b Region) *UnionRegion {
	return &UnionRegion{left: a, right: b}
}

// Left returns the first operand.
func (r *UnionRegion) Left() Region { return r.left }

// Right returns the second operand.
func (r *UnionRegion) Right() Region { return r.right }

// Contains implements the [Region] interface.
func (r *UnionRegion) Contains(p vec.Vec2) bool {
	return r.left.Contains(p) || r.right.Contains(p)
}

// Draw implements the [Region] interface.
func (r *UnionRegion) Draw(c canvas.Canvas, bounds rect.Rect) error {
	if err := r.left.Draw(c, bounds); err != nil {
		return err
	}
	return r.right.Draw(c, bounds)
}

func (r *UnionRegion) String() string {
	return "(" + r.left.String() + " ∪ " + r.right.String() + ")"
}

func (r *UnionRegion) operands() (Region, Region) { return r.left, r.right }
func (r *UnionRegion) kind() string               { return "union" }
func (r *UnionRegion) isNil() bool                { return r == nil }

// IntersectionRegion contains the points which are in both of two regions.
type IntersectionRegion struct {
	left, right Region
}

// Intersect returns the intersection of a and b.
func Intersect(a, b Region) *IntersectionRegion {
	return &IntersectionRegion{left: a, right: b}
}

// Left returns the first operand.
func (r *IntersectionRegion) Left() Region { return r.left }

// Right returns the second operand.
func (r *IntersectionRegion) Right() Region { return r.right }

// Contains implements the [Region] interface.
func (r *IntersectionRegion) Contains(p vec.Vec2) bool {
	return r.left.Contains(p) && r.right.Contains(p)
}

// Draw implements the [Region] interface.
//
// The right operand is rendered into an offscreen buffer, which then
// serves as the clip mask for drawing the left operand.
func (r *IntersectionRegion) Draw(c canvas.Canvas, bounds rect.Rect) error {
	m, err := c.Offscreen(bounds, func(off canvas.Canvas) error {
		return r.right.Draw(off, bounds)
	})
	if err != nil {
		return err
	}
	defer m.Release()

	return canvas.Scoped(c, func() error {
		c.ClipToMask(m)
		return r.left.Draw(c, bounds)
	})
}

func (r *IntersectionRegion) String() string {
	return "(" + r.left.String() + " ∩ " + r.right.String() + ")"
}

func (r *IntersectionRegion) operands() (Region, Region) { return r.left, r.right }
func (r *IntersectionRegion) kind() string               { return "intersection" }
func (r *IntersectionRegion) isNil() bool                { return r == nil }

// DifferenceRegion contains the points of one region which are not in
// another.
type DifferenceRegion struct {
	left, right Region
}

// Subtract returns the points of a which are not in b.
func Subtract(a, b Region) *DifferenceRegion {
	return &DifferenceRegion{left: a, right: b}
}

// Left returns the minuend.
func (r *DifferenceRegion) Left() Region { return r.left }

// Right returns the subtrahend.
func (r *DifferenceRegion) Right() Region { return r.right }

// Contains implements the [Region] interface.
func (r *DifferenceRegion) Contains(p vec.Vec2) bool {
	return r.left.Contains(p) && !r.right.Contains(p)
}

// Draw implements the [Region] interface.
//
// The clip mask for the left operand is an opaque buffer from which the
// silhouette of the right operand has been removed.
func (r *DifferenceRegion) Draw(c canvas.Canvas, bounds rect.Rect) error {
	silhouette, err := c.Offscreen(bounds, func(off canvas.Canvas) error {
		return r.right.Draw(off, bounds)
	})
	if err != nil {
		return err
	}
	defer silhouette.Release()

	m, err := c.Offscreen(bounds, func(off canvas.Canvas) error {
		if err := off.FillRect(bounds); err != nil {
			return err
		}
		return off.Composite(silhouette, canvas.DestinationOut)
	})
	if err != nil {
		return err
	}
	defer m.Release()

	return canvas.Scoped(c, func() error {
		c.ClipToMask(m)
		return r.left.Draw(c, bounds)
	})
}

func (r *DifferenceRegion) String() string {
	return "(" + r.left.String() + " \\ " + r.right.String() + ")"
}

func (r *DifferenceRegion) operands() (Region, Region) { return r.left, r.right }
func (r *DifferenceRegion) kind() string               { return "difference" }
func (r *DifferenceRegion) isNil() bool                { return r == nil }
