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

import (
	"maps"
	"slices"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"primitive":    primitiveCases,
	"offset":       offsetCases,
	"union":        unionCases,
	"intersection": intersectionCases,
	"difference":   differenceCases,
	"nested":       nestedCases,
	"shared":       sharedCases,
	"scenario":     scenarioCases,
}

// Named is a test case together with its full name.
type Named struct {
	Name string // category + "_" + test case name
	TestCase
}

// List returns all test cases, sorted by category.
func List() []Named {
	var res []Named
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			res = append(res, Named{Name: category + "_" + tc.Name, TestCase: tc})
		}
	}
	return res
}

// Find returns the test case with the given full name.
func Find(name string) (Named, bool) {
	for _, tc := range List() {
		if tc.Name == name {
			return tc, true
		}
	}
	return Named{}, false
}
