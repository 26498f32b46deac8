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

var nestedCases = []TestCase{
	{
		Name: "intersect_unions",
		Region: region.Intersect(
			region.Union(disc(20, 32, 16), disc(44, 32, 16)),
			region.Union(disc(32, 20, 14), disc(32, 46, 14)),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "subtract_from_intersection",
		Region: region.Subtract(
			region.Intersect(disc(26, 32, 22), disc(40, 32, 22)),
			disc(33, 32, 6),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "offset_difference",
		Region: region.Offset(
			region.Subtract(circle(24), region.Offset(circle(10), 8, -8)),
			32, 32,
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "ring_of_rings",
		Region: region.Union(
			region.Subtract(disc(22, 22, 16), disc(22, 22, 8)),
			region.Subtract(disc(42, 42, 16), disc(42, 42, 8)),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "subpixel_difference",
		Region: region.Subtract(
			region.Intersect(disc(30.3, 31.7, 20.45), disc(37.85, 29.15, 17.2)),
			region.Offset(circle(6.6), 33.4, 30.9),
		),
		Width:  64,
		Height: 64,
	},
	{
		Name: "subpixel_offset_intersection",
		Region: region.Offset(
			region.Intersect(circle(18.25), region.Subtract(disc(9.5, 3.25, 16.75), disc(12.1, 0.3, 4.35))),
			27.6, 31.3,
		),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "deep_chain",
		Region: deepChain(),
		Width:  96,
		Height: 96,
	},
}

// deepChain alternately removes and adds concentric rings, giving a
// target pattern.
func deepChain() region.Region {
	var r region.Region = circle(44)
	for i := 1; i < 6; i++ {
		rad := 44 - 7*float64(i)
		if i%2 == 1 {
			r = region.Subtract(r, circle(rad))
		} else {
			r = region.Union(r, circle(rad))
		}
	}
	return region.Offset(r, 48, 48)
}

var sharedCases = []TestCase{
	{
		Name:   "shared_operand",
		Region: sharedOperand(),
		Width:  64,
		Height: 64,
	},
}

// sharedOperand uses the same region in two branches of the tree.
func sharedOperand() region.Region {
	core := disc(32, 32, 14)
	left := region.Union(core, disc(16, 32, 10))
	right := region.Subtract(disc(40, 32, 20), core)
	return region.Union(left, right)
}

var scenarioCases = []TestCase{
	{
		Name:   "end_to_end",
		Region: EndToEnd(),
		Width:  400,
		Height: 400,
	},
}

// EndToEnd returns the union of two circles, intersected with a third
// circle, with a fourth circle removed.
func EndToEnd() region.Region {
	u := region.Union(
		region.Offset(circle(100), 200, 150),
		region.Offset(circle(80), 100, 200),
	)
	i := region.Intersect(u, region.Offset(circle(120), 160, 170))
	return region.Subtract(i, region.Offset(circle(50), 200, 150))
}
