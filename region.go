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

// Package region implements an algebra of planar regions and two ways of
// rendering them.
//
// A region is a set of points, described by a membership test.  Regions
// are built from circles with [Offset], [Union], [Intersect] and
// [Subtract].  All regions are immutable, so a region can be used as an
// operand of several combinators.
//
// Regions can be rendered in two ways.  [Sample] tests the centre of
// every pixel and fills the pixels inside the region.  The Draw method of
// a region instead fills circles directly and renders intersections and
// differences using offscreen buffers as clip masks.  Both renderers
// agree up to anti-aliasing at the region boundary: a pixel is inside
// if its centre (x+0.5, y+0.5) satisfies [Region.Contains], and points at
// distance exactly r from the centre of a circle of radius r belong to the
// circle.
//
// [View] holds the region to display together with the rendering mode.
package region

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/region/canvas"
)

var (
	// ErrInvalidArgument indicates an invalid region or invalid bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRender indicates that a region could not be rendered.
	ErrRender = errors.New("rendering failed")
)

// Region is a planar point set which can draw itself.
type Region interface {
	// Contains reports whether p belongs to the region.
	Contains(p vec.Vec2) bool

	// Draw fills the region on c using the current fill colour.  Only
	// the part of the region inside bounds, given in the current user
	// coordinates of c, needs to be drawn.  The state of c is the same
	// before and after the call, also if an error is returned.
	Draw(c canvas.Canvas, bounds rect.Rect) error

	fmt.Stringer
}

// Bounds returns the rectangle with lower-left corner (x, y), width w and
// height h.  Negative sizes are rejected.
func Bounds(x, y, w, h float64) (rect.Rect, error) {
	if !(w >= 0 && h >= 0) {
		return rect.Rect{}, fmt.Errorf("%w: bounds size %gx%g", ErrInvalidArgument, w, h)
	}
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}, nil
}

func checkBounds(b rect.Rect) error {
	if !(b.URx >= b.LLx && b.URy >= b.LLy) {
		return fmt.Errorf("%w: bounds %v", ErrInvalidArgument, b)
	}
	return nil
}

// Validate checks that r and all regions it is built from are non-nil.
func Validate(r Region) error {
	switch r := r.(type) {
	case nil:
		return fmt.Errorf("%w: nil region", ErrInvalidArgument)
	case *Circle:
		if r == nil {
			return fmt.Errorf("%w: nil circle", ErrInvalidArgument)
		}
		return nil
	case *OffsetRegion:
		if r == nil {
			return fmt.Errorf("%w: nil offset region", ErrInvalidArgument)
		}
		return Validate(r.child)
	case binary:
		if r.isNil() {
			return fmt.Errorf("%w: nil %s region", ErrInvalidArgument, r.kind())
		}
		left, right := r.operands()
		if err := Validate(left); err != nil {
			return err
		}
		return Validate(right)
	default:
		return nil
	}
}

// Depth returns the height of the expression tree of r.  A circle has
// depth 1.
func Depth(r Region) int {
	switch r := r.(type) {
	case *OffsetRegion:
		if r == nil {
			return 0
		}
		return 1 + Depth(r.child)
	case binary:
		if r.isNil() {
			return 0
		}
		left, right := r.operands()
		return 1 + max(Depth(left), Depth(right))
	case nil:
		return 0
	default:
		return 1
	}
}
