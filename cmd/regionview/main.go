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

// Command regionview shows the test regions in a terminal.
//
// Each character cell shows two pixels.  Keys: s switches between smart
// and sampling rendering, n and p select the next or previous region, q or
// Esc quits.  Settings are read from REGION_* environment variables, see
// package internal/config.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/canvas"
	"seehuhn.de/go/region/internal/config"
	"seehuhn.de/go/region/testcases"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "regionview:", err)
		os.Exit(1)
	}
}

type viewer struct {
	cfg    *config.Config
	screen tcell.Screen
	view   *region.View
	cases  []testcases.Named
	cur    int
	status string
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the viewer, so logs go to a file.
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}
	logFile, err := os.Create(filepath.Join(cfg.OutDir, "regionview.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel}))
	region.SetLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{
		cfg:    cfg,
		screen: screen,
		cases:  testcases.List(),
	}
	v.view = region.NewView(invalidator(screen))
	for i, tc := range v.cases {
		if tc.Name == cfg.Scenario {
			v.cur = i
		}
	}
	v.view.SetMode(cfg.Mode)
	v.view.SetRegion(v.cases[v.cur].Region)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			v.draw()
		case *tcell.EventInterrupt:
			v.draw()
		case nil:
			return nil
		}
	}
}

// invalidator returns a function which asks the event loop of screen to
// redraw.
func invalidator(screen tcell.Screen) func() {
	return func() {
		if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			region.Logger().Warn("redraw request dropped", "error", err)
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			v.view.SetMode(v.view.Mode().Toggle())
		case 'n':
			v.show(v.cur + 1)
		case 'p':
			v.show(v.cur - 1)
		}
	}
	return true
}

func (v *viewer) show(i int) {
	n := len(v.cases)
	v.cur = (i%n + n) % n
	v.view.SetRegion(v.cases[v.cur].Region)
}

// draw renders the current region at its native size and shows a scaled
// copy on the screen.
func (v *viewer) draw() {
	tc := v.cases[v.cur]
	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))

	opts, err := v.cfg.CanvasOptions()
	if err != nil {
		v.status = err.Error()
		v.paint(nil)
		return
	}
	c := canvas.NewImage(img, opts...)
	bounds, err := region.Bounds(0, 0, float64(tc.Width), float64(tc.Height))
	if err == nil {
		start := time.Now()
		err = v.view.Redraw(c, bounds)
		v.status = fmt.Sprintf("%s  %s  %v  [s]witch [n]ext [p]rev [q]uit",
			tc.Name, v.view.Mode(), time.Since(start).Round(time.Microsecond))
	}
	if err != nil {
		v.status = err.Error()
	}
	v.paint(img)
}

func (v *viewer) paint(img image.Image) {
	s := v.screen
	s.Clear()
	cols, rows := s.Size()
	rows-- // status line

	if img != nil && cols > 0 && rows > 0 {
		// keep the aspect ratio, each cell is two pixels high
		b := img.Bounds()
		w, h := cols, cols*b.Dy()/b.Dx()
		if h > 2*rows {
			w, h = 2*rows*b.Dx()/b.Dy(), 2*rows
		}
		small := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 2)))
		draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

		for y := 0; y+1 < small.Bounds().Dy(); y += 2 {
			for x := range small.Bounds().Dx() {
				top := cellColor(small.RGBAAt(x, y))
				bottom := cellColor(small.RGBAAt(x, y+1))
				style := tcell.StyleDefault.Foreground(top).Background(bottom)
				s.SetContent(x, y/2, '▀', nil, style)
			}
		}
	}

	for i, r := range []rune(v.status) {
		if i >= cols {
			break
		}
		s.SetContent(i, rows, r, nil, tcell.StyleDefault.Reverse(true))
	}
	s.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
