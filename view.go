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
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/region/canvas"
)

// View displays a single region.
//
// The host calls [View.Redraw] from its paint handler.  Changing the region
// or the rendering mode calls the invalidate function given to [NewView],
// which should make the host schedule a repaint.
//
// A View is not safe for concurrent use.
type View struct {
	// Background is used to clear the bounds before drawing.
	// If nil, white is used.
	Background color.Color

	// Foreground is the fill colour of the region.
	// If nil, black is used.
	Foreground color.Color

	region     Region
	mode       Mode
	invalidate func()
}

// NewView returns a view without a region, using smart rendering.
// The invalidate function may be nil.
func NewView(invalidate func()) *View {
	return &View{
		Background: color.White,
		Foreground: color.Black,
		invalidate: invalidate,
	}
}

// SetRegion replaces the displayed region.  A nil region clears the view.
func (v *View) SetRegion(r Region) {
	v.region = r
	v.changed()
}

// Region returns the displayed region, or nil.
func (v *View) Region() Region {
	return v.region
}

// SetMode selects the renderer used by the next redraw.
func (v *View) SetMode(m Mode) {
	v.mode = m
	v.changed()
}

// Mode returns the current rendering mode.
func (v *View) Mode() Mode {
	return v.mode
}

func (v *View) changed() {
	if v.invalidate != nil {
		v.invalidate()
	}
}

// Redraw clears bounds on c and renders the current region inside bounds.
// Pixels outside bounds are not changed.
//
// Errors during rendering match both [ErrRender] and the underlying cause.
// The state of c is restored before Redraw returns.
func (v *View) Redraw(c canvas.Canvas, bounds rect.Rect) error {
	if err := checkBounds(bounds); err != nil {
		return err
	}
	r := v.region
	if r != nil {
		if err := Validate(r); err != nil {
			return err
		}
	}

	log := Logger()
	log.Debug("redraw", "mode", v.mode, "region", r, "bounds", bounds)

	bg, fg := v.Background, v.Foreground
	if bg == nil {
		bg = color.White
	}
	if fg == nil {
		fg = color.Black
	}

	err := canvas.Scoped(c, func() error {
		c.ClipRect(bounds)
		c.Clear(bg)
		if r == nil {
			return nil
		}
		c.SetFillColor(fg)
		if v.mode == Sampling {
			return Sample(c, r, bounds)
		}
		return r.Draw(c, bounds)
	})
	if err != nil {
		log.Warn("redraw failed", "mode", v.mode, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrRender, v.mode, err)
	}
	return nil
}
