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

// Package testcases provides named regions for testing and comparing the
// region renderers.
package testcases

import "seehuhn.de/go/region"

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Region region.Region // the region to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
}

// circle returns a circle of radius r around the origin.
// It panics if r is negative.
func circle(r float64) *region.Circle {
	c, err := region.NewCircle(r)
	if err != nil {
		panic(err)
	}
	return c
}

// disc returns a circle of radius r around (x, y).
func disc(x, y, r float64) region.Region {
	return region.Offset(circle(r), x, y)
}
