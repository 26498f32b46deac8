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

var unionCases = []TestCase{
	{
		Name:   "overlapping",
		Region: region.Union(disc(24, 32, 16), disc(42, 32, 14)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disjoint",
		Region: region.Union(disc(14, 14, 10), disc(48, 46, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "same_circle",
		Region: region.Union(disc(32, 32, 20), disc(32, 32, 20)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "three",
		Region: region.Union(region.Union(disc(20, 20, 12), disc(44, 20, 12)), disc(32, 42, 14)),
		Width:  64,
		Height: 64,
	},
}

var intersectionCases = []TestCase{
	{
		Name:   "lens",
		Region: region.Intersect(disc(24, 32, 18), disc(40, 32, 18)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disjoint",
		Region: region.Intersect(disc(14, 14, 10), disc(48, 46, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "contained",
		Region: region.Intersect(disc(32, 32, 25), disc(36, 30, 10)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "offset_lens",
		Region: region.Offset(region.Intersect(circle(20), disc(15, 5, 18)), 25, 30),
		Width:  64,
		Height: 64,
	},
}

var differenceCases = []TestCase{
	{
		Name:   "crescent",
		Region: region.Subtract(disc(32, 32, 22), disc(42, 28, 18)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring",
		Region: region.Subtract(disc(32, 32, 24), disc(32, 32, 12)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "disjoint",
		Region: region.Subtract(disc(20, 20, 14), disc(50, 50, 10)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "empty",
		Region: region.Subtract(disc(32, 32, 10), disc(32, 32, 20)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_subtrahend",
		Region: region.Subtract(disc(32, 32, 20), disc(32, 32, 0)),
		Width:  64,
		Height: 64,
	},
}
