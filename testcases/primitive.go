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

package testcases

import "seehuhn.de/go/region"

var primitiveCases = []TestCase{
	{
		Name:   "circle",
		Region: disc(32, 32, 20),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_at_origin",
		Region: circle(30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_zero",
		Region: disc(32, 32, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_small",
		Region: disc(10.5, 10.5, 1.5),
		Width:  21,
		Height: 21,
	},
	{
		Name:   "circle_larger_than_canvas",
		Region: disc(40, 30, 90),
		Width:  64,
		Height: 48,
	},
}

var offsetCases = []TestCase{
	{
		Name:   "nested_offsets",
		Region: region.Offset(region.Offset(circle(15), 10, 40), 30, -10),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "negative_offset",
		Region: region.Offset(disc(80, 80, 20), -40, -30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "fractional_offset",
		Region: region.Offset(circle(17.3), 31.25, 28.75),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "offset_outside",
		Region: disc(-50, 20, 10),
		Width:  64,
		Height: 64,
	},
}
