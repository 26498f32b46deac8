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

package canvas

import "image"

// Mask is the coverage of an offscreen buffer, in device coordinates.
// Values range from 0 (transparent) to 255 (opaque).
type Mask struct {
	img  *image.Alpha
	pool *pool
}

// Bounds returns the device rectangle covered by the mask.
// A released mask has empty bounds.
func (m *Mask) Bounds() image.Rectangle {
	if m == nil || m.img == nil {
		return image.Rectangle{}
	}
	return m.img.Rect
}

// AlphaAt returns the mask value at device pixel (x, y).
// Pixels outside the mask are transparent.
func (m *Mask) AlphaAt(x, y int) uint8 {
	if m == nil || m.img == nil || !(image.Point{X: x, Y: y}).In(m.img.Rect) {
		return 0
	}
	return m.img.Pix[m.img.PixOffset(x, y)]
}

// Release returns the buffer to its canvas. Releasing a mask twice is
// harmless.
func (m *Mask) Release() {
	if m == nil || m.img == nil {
		return
	}
	m.pool.put(m.img)
	m.img = nil
}

// pool recycles offscreen buffers. It is shared by a canvas and all
// offscreen canvases derived from it.
type pool struct {
	free []*image.Alpha
	live int
	max  int // 0 means unlimited
}

func (p *pool) get(r image.Rectangle) (*image.Alpha, error) {
	if p.max > 0 && p.live >= p.max {
		return nil, ErrOffscreenLimit
	}
	p.live++

	n := r.Dx() * r.Dy()
	for i, buf := range p.free {
		if cap(buf.Pix) >= n {
			p.free = append(p.free[:i], p.free[i+1:]...)
			reshape(buf, r)
			return buf, nil
		}
	}
	return image.NewAlpha(r), nil
}

func (p *pool) put(buf *image.Alpha) {
	p.live--
	p.free = append(p.free, buf)
}

// reshape makes buf a cleared buffer covering r, reusing its pixels.
func reshape(buf *image.Alpha, r image.Rectangle) {
	n := r.Dx() * r.Dy()
	if cap(buf.Pix) < n {
		buf.Pix = make([]uint8, n)
	}
	buf.Pix = buf.Pix[:n]
	clear(buf.Pix)
	buf.Rect = r
	buf.Stride = r.Dx()
}
