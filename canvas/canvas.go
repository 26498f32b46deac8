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

// Package canvas provides the drawing context used to render regions.
//
// A [Canvas] fills rectangles and discs with the current fill colour,
// keeps a stack of saved states (transformation, clip mask and fill
// colour), and can render into offscreen buffers whose coverage is then
// used as a clip mask or composited back.
//
// # Coordinate System
//
// Device pixels have their origin at the top-left corner of the target
// image, with x increasing to the right and y increasing downwards. User
// coordinates are mapped to device pixels by the current transformation,
// which starts as the identity and is changed by [Canvas.Translate].
package canvas

import (
	"errors"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrOffscreenLimit is returned when an offscreen buffer cannot be
	// allocated because too many buffers are in use.
	ErrOffscreenLimit = errors.New("canvas: offscreen buffer limit reached")

	// ErrNoTarget is returned when drawing on a canvas without a
	// destination image.
	ErrNoTarget = errors.New("canvas: no target image")
)

// Canvas is a drawing context.
//
// Canvas methods are not safe for concurrent use.
type Canvas interface {
	// Bounds returns the device rectangle of the drawing target.
	Bounds() image.Rectangle

	// Clear sets the pixels inside the clip region to c, replacing their
	// previous value.  Without a clip, the whole target is cleared.
	Clear(c color.Color)

	// SetFillColor sets the colour used by the fill operations.
	SetFillColor(c color.Color)

	// FillRect fills r, given in user coordinates.
	FillRect(r rect.Rect) error

	// FillDisc fills the disc with the given centre and radius, given in
	// user coordinates.
	FillDisc(center vec.Vec2, radius float64) error

	// Save pushes the current state onto the state stack.
	Save()

	// Restore pops the most recently saved state. Restore without a
	// matching Save does nothing.
	Restore()

	// Translate moves the origin of the user coordinate system to
	// (dx, dy) in the current user coordinates.
	Translate(dx, dy float64)

	// ClipRect intersects the current clip region with r, given in user
	// coordinates.
	ClipRect(r rect.Rect)

	// ClipToMask intersects the current clip region with the coverage of m.
	// The mask can be released afterwards.
	ClipToMask(m *Mask)

	// Composite combines the coverage of m with the target using op.
	Composite(m *Mask, op Op) error

	// Offscreen renders into a new transparent buffer covering bounds,
	// given in user coordinates, and returns its coverage as a mask. The
	// canvas passed to draw uses the current transformation, an opaque
	// fill colour and no clip. If draw fails, the buffer is released and
	// the error is returned. The caller must release the returned mask.
	Offscreen(bounds rect.Rect, draw func(Canvas) error) (*Mask, error)
}

// Op is a compositing operator for [Canvas.Composite].
type Op int

const (
	// Over paints the fill colour through the mask.
	Over Op = iota

	// DestinationOut scales the target by one minus the mask coverage.
	DestinationOut
)

func (op Op) String() string {
	switch op {
	case Over:
		return "over"
	case DestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Scoped saves the state of c, calls fn and restores the state, also if
// fn fails or panics.
func Scoped(c Canvas, fn func() error) error {
	c.Save()
	defer c.Restore()
	return fn()
}
