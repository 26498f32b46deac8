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

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/region/raster"
)

var opaqueFill = image.NewUniform(color.Alpha{A: 255})

// Image is a [Canvas] drawing into an image.
//
// Offscreen buffers are *image.Alpha images. Clip masks are kept in
// device space and intersected by multiplying their coverage.
type Image struct {
	dst     draw.Image
	filler  raster.Filler
	pool    *pool
	state   state
	stack   []state
	scratch *image.Alpha
}

type state struct {
	ctm  matrix.Matrix
	clip *image.Alpha // nil means unclipped
	fill *image.Uniform
}

// Option configures an [Image] canvas.
type Option func(*Image)

// WithFiller sets the backend used to compute the coverage of filled
// shapes. The default is a [raster.Rasteriser].
func WithFiller(f raster.Filler) Option {
	return func(c *Image) {
		c.filler = f
	}
}

// WithMaxOffscreen limits the number of offscreen buffers which can be in
// use at the same time. Zero means no limit.
func WithMaxOffscreen(n int) Option {
	return func(c *Image) {
		c.pool.max = n
	}
}

// NewImage returns a canvas drawing into dst with an opaque black fill
// colour.
func NewImage(dst draw.Image, opts ...Option) *Image {
	c := &Image{
		dst:  dst,
		pool: &pool{},
		state: state{
			ctm:  matrix.Identity,
			fill: image.NewUniform(color.Black),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.filler == nil {
		c.filler = raster.NewRasteriser()
	}
	return c
}

// Target returns the image the canvas draws into.
func (c *Image) Target() draw.Image {
	return c.dst
}

// Stats describes the resources held by a canvas.
type Stats struct {
	Depth     int // number of saved states
	Offscreen int // offscreen buffers in use
}

// Stats returns the number of saved states and live offscreen buffers.
func (c *Image) Stats() Stats {
	return Stats{Depth: len(c.stack), Offscreen: c.pool.live}
}

// Bounds implements the [Canvas] interface.
func (c *Image) Bounds() image.Rectangle {
	if c.dst == nil {
		return image.Rectangle{}
	}
	return c.dst.Bounds()
}

// Clear implements the [Canvas] interface.
func (c *Image) Clear(col color.Color) {
	if c.dst == nil {
		return
	}
	clip := c.state.clip
	if clip == nil {
		draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
		return
	}

	area := clip.Rect.Intersect(c.dst.Bounds())
	cr, cg, cb, ca := col.RGBA()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			m := uint32(clip.Pix[clip.PixOffset(x, y)]) * 0x101
			switch m {
			case 0:
				continue
			case 0xffff:
				c.dst.Set(x, y, col)
				continue
			}
			r, g, b, a := c.dst.At(x, y).RGBA()
			k := 0xffff - m
			c.dst.Set(x, y, color.RGBA64{
				R: uint16((cr*m + r*k) / 0xffff),
				G: uint16((cg*m + g*k) / 0xffff),
				B: uint16((cb*m + b*k) / 0xffff),
				A: uint16((ca*m + a*k) / 0xffff),
			})
		}
	}
}

// SetFillColor implements the [Canvas] interface.
func (c *Image) SetFillColor(col color.Color) {
	c.state.fill = image.NewUniform(col)
}

// Save implements the [Canvas] interface.
func (c *Image) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements the [Canvas] interface.
func (c *Image) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack[n-1] = state{}
	c.stack = c.stack[:n-1]
}

// Translate implements the [Canvas] interface.
func (c *Image) Translate(dx, dy float64) {
	o := raster.Apply(c.state.ctm, vec.Vec2{X: dx, Y: dy})
	c.state.ctm[4] = o.X
	c.state.ctm[5] = o.Y
}

// FillRect implements the [Canvas] interface.
func (c *Image) FillRect(r rect.Rect) error {
	if c.dst == nil {
		return ErrNoTarget
	}
	if r.LLx == r.URx || r.LLy == r.URy {
		return nil
	}

	// Pixel-aligned rectangles, as used by the sampling renderer, are
	// filled without the rasteriser.
	if dev, ok := c.alignedRect(r); ok {
		area := c.drawable(dev)
		if area.Empty() {
			return nil
		}
		cov := c.coverage(area)
		for i := range cov.Pix {
			cov.Pix[i] = 255
		}
		c.paint(cov)
		return nil
	}

	return c.fill(raster.RectPath(r))
}

// FillDisc implements the [Canvas] interface.
func (c *Image) FillDisc(center vec.Vec2, radius float64) error {
	if c.dst == nil {
		return ErrNoTarget
	}
	if radius <= 0 {
		return nil
	}
	return c.fill(raster.CirclePath(center, radius))
}

// ClipRect implements the [Canvas] interface.
// Rectangle edges which do not fall on pixel boundaries give partial
// coverage.
func (c *Image) ClipRect(r rect.Rect) {
	area := c.deviceRect(r)
	if old := c.state.clip; old != nil {
		area = area.Intersect(old.Rect)
	}
	clip := image.NewAlpha(area)
	if !area.Empty() && r.URx > r.LLx && r.URy > r.LLy {
		c.filler.Fill(raster.RectPath(r), c.state.ctm, clip)
	}
	c.intersectClip(clip)
}

// ClipToMask implements the [Canvas] interface.
// A nil or released mask clips away everything.
func (c *Image) ClipToMask(m *Mask) {
	area := m.Bounds().Intersect(c.Bounds())
	if old := c.state.clip; old != nil {
		area = area.Intersect(old.Rect)
	}

	clip := image.NewAlpha(area)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			clip.Pix[clip.PixOffset(x, y)] = m.AlphaAt(x, y)
		}
	}
	c.intersectClip(clip)
}

// intersectClip multiplies clip by the current clip mask and makes the
// result the new clip mask.  The rectangle of clip must lie inside the
// current clip rectangle.
func (c *Image) intersectClip(clip *image.Alpha) {
	if old := c.state.clip; old != nil {
		for y := clip.Rect.Min.Y; y < clip.Rect.Max.Y; y++ {
			for x := clip.Rect.Min.X; x < clip.Rect.Max.X; x++ {
				i := clip.PixOffset(x, y)
				clip.Pix[i] = mul8(clip.Pix[i], old.Pix[old.PixOffset(x, y)])
			}
		}
	}
	c.state.clip = clip
}

// Composite implements the [Canvas] interface.
func (c *Image) Composite(m *Mask, op Op) error {
	if c.dst == nil {
		return ErrNoTarget
	}
	area := c.drawable(m.Bounds())
	if area.Empty() {
		return nil
	}
	cov := c.coverage(area)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov.Pix[cov.PixOffset(x, y)] = m.AlphaAt(x, y)
		}
	}

	switch op {
	case DestinationOut:
		c.applyClip(cov)
		c.erase(cov)
	default:
		c.paint(cov)
	}
	return nil
}

// erase scales every target pixel by one minus the coverage in cov.
func (c *Image) erase(cov *image.Alpha) {
	if dst, ok := c.dst.(*image.Alpha); ok {
		for y := cov.Rect.Min.Y; y < cov.Rect.Max.Y; y++ {
			for x := cov.Rect.Min.X; x < cov.Rect.Max.X; x++ {
				i := dst.PixOffset(x, y)
				dst.Pix[i] = mul8(dst.Pix[i], 255-cov.Pix[cov.PixOffset(x, y)])
			}
		}
		return
	}

	for y := cov.Rect.Min.Y; y < cov.Rect.Max.Y; y++ {
		for x := cov.Rect.Min.X; x < cov.Rect.Max.X; x++ {
			a := cov.Pix[cov.PixOffset(x, y)]
			if a == 0 {
				continue
			}
			k := 0xffff - uint32(a)*0x101
			r, g, b, alpha := c.dst.At(x, y).RGBA()
			c.dst.Set(x, y, color.RGBA64{
				R: uint16(r * k / 0xffff),
				G: uint16(g * k / 0xffff),
				B: uint16(b * k / 0xffff),
				A: uint16(alpha * k / 0xffff),
			})
		}
	}
}

// Offscreen implements the [Canvas] interface.
func (c *Image) Offscreen(bounds rect.Rect, fn func(Canvas) error) (*Mask, error) {
	if c.dst == nil {
		return nil, ErrNoTarget
	}
	buf, err := c.pool.get(c.deviceRect(bounds))
	if err != nil {
		return nil, err
	}
	m := &Mask{img: buf, pool: c.pool}

	off := &Image{
		dst:    buf,
		filler: c.filler,
		pool:   c.pool,
		state: state{
			ctm:  c.state.ctm,
			fill: opaqueFill,
		},
	}
	if err := fn(off); err != nil {
		m.Release()
		return nil, err
	}
	return m, nil
}

// fill paints the path with the current fill colour.
func (c *Image) fill(p *path.Data) error {
	ext, ok := raster.Extent(p, c.state.ctm)
	if !ok {
		return nil
	}
	area := c.drawable(outward(ext))
	if area.Empty() {
		return nil
	}
	cov := c.coverage(area)
	c.filler.Fill(p, c.state.ctm, cov)
	c.paint(cov)
	return nil
}

// paint composites the fill colour onto the target through cov, after
// applying the clip mask.
func (c *Image) paint(cov *image.Alpha) {
	c.applyClip(cov)

	if dst, ok := c.dst.(*image.Alpha); ok && c.state.fill == opaqueFill {
		// offscreen buffers only accumulate coverage
		for y := cov.Rect.Min.Y; y < cov.Rect.Max.Y; y++ {
			for x := cov.Rect.Min.X; x < cov.Rect.Max.X; x++ {
				a := cov.Pix[cov.PixOffset(x, y)]
				if a == 0 {
					continue
				}
				i := dst.PixOffset(x, y)
				dst.Pix[i] += mul8(a, 255-dst.Pix[i])
			}
		}
		return
	}
	draw.DrawMask(c.dst, cov.Rect, c.state.fill, image.Point{}, cov, cov.Rect.Min, draw.Over)
}

// applyClip multiplies cov by the current clip mask. The rectangle of cov
// must lie inside the clip rectangle.
func (c *Image) applyClip(cov *image.Alpha) {
	clip := c.state.clip
	if clip == nil {
		return
	}
	for y := cov.Rect.Min.Y; y < cov.Rect.Max.Y; y++ {
		for x := cov.Rect.Min.X; x < cov.Rect.Max.X; x++ {
			i := cov.PixOffset(x, y)
			cov.Pix[i] = mul8(cov.Pix[i], clip.Pix[clip.PixOffset(x, y)])
		}
	}
}

// drawable restricts a device rectangle to the target and the clip.
func (c *Image) drawable(r image.Rectangle) image.Rectangle {
	r = r.Intersect(c.dst.Bounds())
	if clip := c.state.clip; clip != nil {
		r = r.Intersect(clip.Rect)
	}
	return r
}

// coverage returns the cleared scratch buffer, resized to cover r.
func (c *Image) coverage(r image.Rectangle) *image.Alpha {
	if c.scratch == nil {
		c.scratch = image.NewAlpha(r)
		return c.scratch
	}
	reshape(c.scratch, r)
	return c.scratch
}

// deviceRect returns the device pixels touched by r, restricted to the
// target.
func (c *Image) deviceRect(r rect.Rect) image.Rectangle {
	corners := [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.LLx, Y: r.URy},
		{X: r.URx, Y: r.URy},
	}
	q := raster.Apply(c.state.ctm, corners[0])
	box := rect.Rect{LLx: q.X, LLy: q.Y, URx: q.X, URy: q.Y}
	for _, p := range corners[1:] {
		q := raster.Apply(c.state.ctm, p)
		box.LLx = min(box.LLx, q.X)
		box.LLy = min(box.LLy, q.Y)
		box.URx = max(box.URx, q.X)
		box.URy = max(box.URy, q.Y)
	}
	return image.Rect(
		int(math.Floor(box.LLx)), int(math.Floor(box.LLy)),
		int(math.Ceil(box.URx)), int(math.Ceil(box.URy)),
	).Intersect(c.Bounds())
}

// alignedRect reports whether r maps to whole device pixels under a
// translation-only transformation.
func (c *Image) alignedRect(r rect.Rect) (image.Rectangle, bool) {
	m := c.state.ctm
	if m[0] != 1 || m[1] != 0 || m[2] != 0 || m[3] != 1 {
		return image.Rectangle{}, false
	}
	v := [4]float64{r.LLx + m[4], r.LLy + m[5], r.URx + m[4], r.URy + m[5]}
	for _, x := range v {
		if x != math.Floor(x) || math.Abs(x) > math.MaxInt32 {
			return image.Rectangle{}, false
		}
	}
	return image.Rect(int(v[0]), int(v[1]), int(v[2]), int(v[3])), true
}

// outward returns the device pixels which can receive coverage from a
// shape with the given extent.
func outward(r rect.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.LLx)), int(math.Floor(r.LLy)),
		int(math.Floor(r.URx))+1, int(math.Floor(r.URy))+1,
	)
}

// mul8 multiplies two coverage values in the range 0-255.
func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
