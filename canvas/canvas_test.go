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
	"errors"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var errTest = errors.New("test failure")

func newGray(w, h int) (*image.Gray, *Image) {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	c := NewImage(dst)
	c.Clear(color.White)
	return dst, c
}

func TestFillRectAligned(t *testing.T) {
	dst, c := newGray(10, 10)
	c.Translate(1, 2)
	if err := c.FillRect(rect.Rect{LLx: 0, LLy: 0, URx: 3, URy: 2}); err != nil {
		t.Fatal(err)
	}
	for y := range 10 {
		for x := range 10 {
			inside := x >= 1 && x < 4 && y >= 2 && y < 4
			got := dst.GrayAt(x, y).Y
			if inside && got != 0 || !inside && got != 255 {
				t.Errorf("pixel (%d,%d) = %d, inside=%t", x, y, got, inside)
			}
		}
	}
}

func TestFillRectUnaligned(t *testing.T) {
	dst, c := newGray(4, 1)
	if err := c.FillRect(rect.Rect{LLx: 0.5, LLy: 0, URx: 2.5, URy: 1}); err != nil {
		t.Fatal(err)
	}
	want := []uint8{128, 0, 128, 255}
	for x, w := range want {
		if got := dst.GrayAt(x, 0).Y; int(got)-int(w) > 1 || int(w)-int(got) > 1 {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	dst, c := newGray(10, 10)

	c.SetFillColor(color.Gray{Y: 100})
	c.Save()
	c.Translate(5, 5)
	c.SetFillColor(color.Gray{Y: 50})
	if err := c.FillRect(rect.Rect{URx: 1, URy: 1}); err != nil {
		t.Fatal(err)
	}
	c.Restore()
	if err := c.FillRect(rect.Rect{URx: 1, URy: 1}); err != nil {
		t.Fatal(err)
	}

	if got := dst.GrayAt(5, 5).Y; got != 50 {
		t.Errorf("translated pixel = %d, want 50", got)
	}
	if got := dst.GrayAt(0, 0).Y; got != 100 {
		t.Errorf("restored pixel = %d, want 100", got)
	}
	if s := c.Stats(); s.Depth != 0 {
		t.Errorf("depth %d after restore", s.Depth)
	}

	// unbalanced Restore is ignored
	c.Restore()
	if s := c.Stats(); s.Depth != 0 {
		t.Errorf("depth %d after extra restore", s.Depth)
	}
}

func TestScopedRestoresOnError(t *testing.T) {
	_, c := newGray(10, 10)
	err := Scoped(c, func() error {
		c.Translate(3, 3)
		c.Save()
		return errTest
	})
	if !errors.Is(err, errTest) {
		t.Fatalf("got error %v", err)
	}
	// the inner Save is not undone by Scoped
	if s := c.Stats(); s.Depth != 1 {
		t.Errorf("depth %d, want 1", s.Depth)
	}
}

func TestClipToMask(t *testing.T) {
	dst, c := newGray(20, 20)

	m, err := c.Offscreen(rect.Rect{URx: 20, URy: 20}, func(off Canvas) error {
		return off.FillRect(rect.Rect{LLx: 5, LLy: 5, URx: 10, URy: 10})
	})
	if err != nil {
		t.Fatal(err)
	}
	err = Scoped(c, func() error {
		c.ClipToMask(m)
		m.Release()
		return c.FillRect(rect.Rect{URx: 20, URy: 20})
	})
	if err != nil {
		t.Fatal(err)
	}

	for y := range 20 {
		for x := range 20 {
			inside := x >= 5 && x < 10 && y >= 5 && y < 10
			got := dst.GrayAt(x, y).Y
			if inside && got != 0 || !inside && got != 255 {
				t.Errorf("pixel (%d,%d) = %d, inside=%t", x, y, got, inside)
			}
		}
	}

	// the clip is gone after the scope ends
	if err := c.FillRect(rect.Rect{URx: 1, URy: 1}); err != nil {
		t.Fatal(err)
	}
	if got := dst.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("pixel (0,0) = %d after restore, want 0", got)
	}
}

func TestNestedClipsIntersect(t *testing.T) {
	dst, c := newGray(20, 20)
	box := func(llx, lly, urx, ury float64) *Mask {
		m, err := c.Offscreen(rect.Rect{URx: 20, URy: 20}, func(off Canvas) error {
			return off.FillRect(rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury})
		})
		if err != nil {
			t.Fatal(err)
		}
		return m
	}

	a := box(0, 0, 12, 12)
	b := box(8, 8, 20, 20)
	c.ClipToMask(a)
	c.ClipToMask(b)
	a.Release()
	b.Release()
	if err := c.FillRect(rect.Rect{URx: 20, URy: 20}); err != nil {
		t.Fatal(err)
	}

	for y := range 20 {
		for x := range 20 {
			inside := x >= 8 && x < 12 && y >= 8 && y < 12
			if got := dst.GrayAt(x, y).Y; inside != (got == 0) {
				t.Errorf("pixel (%d,%d) = %d, inside=%t", x, y, got, inside)
			}
		}
	}
}

func TestDestinationOut(t *testing.T) {
	buf := image.NewAlpha(image.Rect(0, 0, 10, 10))
	c := NewImage(buf)
	c.SetFillColor(color.Alpha{A: 255})
	if err := c.FillRect(rect.Rect{URx: 10, URy: 10}); err != nil {
		t.Fatal(err)
	}

	hole, err := c.Offscreen(rect.Rect{URx: 10, URy: 10}, func(off Canvas) error {
		return off.FillRect(rect.Rect{LLx: 2, LLy: 2, URx: 5, URy: 5})
	})
	if err != nil {
		t.Fatal(err)
	}
	defer hole.Release()
	if err := c.Composite(hole, DestinationOut); err != nil {
		t.Fatal(err)
	}

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := buf.AlphaAt(x, y).A
			if inside && got != 0 || !inside && got != 255 {
				t.Errorf("pixel (%d,%d) = %d, inside=%t", x, y, got, inside)
			}
		}
	}
}

func TestDestinationOutRGBA(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := NewImage(dst)
	c.Clear(color.RGBA{R: 200, G: 100, B: 50, A: 255})

	m, err := c.Offscreen(rect.Rect{URx: 4, URy: 4}, func(off Canvas) error {
		return off.FillRect(rect.Rect{URx: 2, URy: 4})
	})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()
	if err := c.Composite(m, DestinationOut); err != nil {
		t.Fatal(err)
	}

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("erased pixel = %v", got)
	}
	if got := dst.RGBAAt(3, 0); got != (color.RGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Errorf("kept pixel = %v", got)
	}
}

func TestOffscreenLimit(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 10, 10))
	c := NewImage(dst, WithMaxOffscreen(1))

	var inner error
	m, err := c.Offscreen(rect.Rect{URx: 10, URy: 10}, func(off Canvas) error {
		_, inner = off.Offscreen(rect.Rect{URx: 10, URy: 10}, func(Canvas) error {
			return nil
		})
		return inner
	})
	if !errors.Is(err, ErrOffscreenLimit) || !errors.Is(inner, ErrOffscreenLimit) {
		t.Fatalf("got %v / %v, want ErrOffscreenLimit", err, inner)
	}
	if m != nil {
		t.Error("mask returned on failure")
	}
	if s := c.Stats(); s.Offscreen != 0 {
		t.Errorf("%d buffers still in use", s.Offscreen)
	}
}

func TestReleaseAccounting(t *testing.T) {
	_, c := newGray(10, 10)

	var masks []*Mask
	for range 3 {
		m, err := c.Offscreen(rect.Rect{URx: 10, URy: 10}, func(off Canvas) error {
			return off.FillDisc(vec.Vec2{X: 5, Y: 5}, 3)
		})
		if err != nil {
			t.Fatal(err)
		}
		masks = append(masks, m)
	}
	if s := c.Stats(); s.Offscreen != 3 {
		t.Fatalf("%d buffers in use, want 3", s.Offscreen)
	}
	for _, m := range masks {
		m.Release()
		m.Release()
	}
	if s := c.Stats(); s.Offscreen != 0 {
		t.Errorf("%d buffers in use after release", s.Offscreen)
	}
	if b := masks[0].Bounds(); !b.Empty() {
		t.Errorf("released mask has bounds %v", b)
	}

	// a recycled buffer starts out transparent
	m, err := c.Offscreen(rect.Rect{URx: 10, URy: 10}, func(Canvas) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()
	if a := m.AlphaAt(5, 5); a != 0 {
		t.Errorf("recycled buffer has coverage %d", a)
	}
}

func TestFailedOffscreenReleases(t *testing.T) {
	_, c := newGray(10, 10)
	_, err := c.Offscreen(rect.Rect{URx: 10, URy: 10}, func(Canvas) error {
		return errTest
	})
	if !errors.Is(err, errTest) {
		t.Fatalf("got %v", err)
	}
	if s := c.Stats(); s.Offscreen != 0 {
		t.Errorf("%d buffers in use", s.Offscreen)
	}
}

func TestNoTarget(t *testing.T) {
	c := NewImage(nil)
	if err := c.FillDisc(vec.Vec2{}, 1); !errors.Is(err, ErrNoTarget) {
		t.Errorf("FillDisc: got %v", err)
	}
	if _, err := c.Offscreen(rect.Rect{URx: 1, URy: 1}, nil); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Offscreen: got %v", err)
	}
}

func TestOpString(t *testing.T) {
	if s := DestinationOut.String(); s != "destination-out" {
		t.Errorf("got %q", s)
	}
}

func TestClipRect(t *testing.T) {
	dst, c := newGray(10, 10)
	err := Scoped(c, func() error {
		c.Translate(1, 1)
		c.ClipRect(rect.Rect{LLx: 1, LLy: 1, URx: 5, URy: 4})
		c.Translate(-1, -1)
		return c.FillRect(rect.Rect{URx: 10, URy: 10})
	})
	if err != nil {
		t.Fatal(err)
	}
	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 6 && y >= 2 && y < 5
			got := dst.GrayAt(x, y).Y
			if inside && got != 0 || !inside && got != 255 {
				t.Errorf("pixel (%d,%d) = %d, inside=%t", x, y, got, inside)
			}
		}
	}
}

func TestClipRectPartial(t *testing.T) {
	dst, c := newGray(4, 1)
	c.ClipRect(rect.Rect{URx: 2.5, URy: 1})
	if err := c.FillRect(rect.Rect{URx: 4, URy: 1}); err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 127, 255}
	for x, w := range want {
		if got := dst.GrayAt(x, 0).Y; int(got)-int(w) > 1 || int(w)-int(got) > 1 {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
}

func TestClearInsideClip(t *testing.T) {
	dst, c := newGray(8, 8)
	err := Scoped(c, func() error {
		c.ClipRect(rect.Rect{LLx: 4, URx: 8, URy: 8})
		c.Clear(color.Gray{Y: 77})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for y := range 8 {
		for x := range 8 {
			want := uint8(255)
			if x >= 4 {
				want = 77
			}
			if got := dst.GrayAt(x, y).Y; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	// without a clip the whole target is cleared
	c.Clear(color.Black)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d after full clear", i, v)
		}
	}
}
