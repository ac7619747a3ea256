// seehuhn.de/go/hextile - hexagon tiling art
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

// generateCases show freshly generated hexagons, without flips.
var generateCases = []Scenario{
	{
		Name:           "single_cell",
		Width:          100,
		Height:         100,
		Side:           1,
		TriangleHeight: 30,
	},
	{
		Name:           "side_2",
		Width:          200,
		Height:         200,
		Side:           2,
		TriangleHeight: 50,
	},
	{
		Name:           "side_6",
		Width:          400,
		Height:         400,
		Side:           6,
		TriangleHeight: 30,
	},
	{
		Name:           "min_height",
		Width:          80,
		Height:         80,
		Side:           10,
		TriangleHeight: 3,
	},
}

// annealCases apply random flips.
var annealCases = []Scenario{
	{
		Name:           "few_flips",
		Width:          300,
		Height:         300,
		Side:           5,
		TriangleHeight: 25,
		Iterations:     200,
		Seed:           1,
	},
	{
		Name:           "medium",
		Width:          600,
		Height:         600,
		Side:           12,
		TriangleHeight: 20,
		Iterations:     5000,
		Seed:           7,
	},
	{
		Name:           "long_run",
		Width:          500,
		Height:         500,
		Side:           8,
		TriangleHeight: 25,
		Iterations:     20000,
		Seed:           3,
	},
	{
		Name:           "odd_size",
		Width:          301,
		Height:         257,
		Side:           6,
		TriangleHeight: 17.5,
		Iterations:     1000,
		Seed:           11,
	},
}

// clipCases use hexagons which extend beyond the image.
var clipCases = []Scenario{
	{
		Name:           "cropped",
		Width:          200,
		Height:         150,
		Side:           8,
		TriangleHeight: 30,
		Iterations:     1000,
		Seed:           5,
	},
	{
		Name:           "tiny_image",
		Width:          20,
		Height:         20,
		Side:           4,
		TriangleHeight: 30,
	},
	{
		Name:           "one_pixel",
		Width:          1,
		Height:         1,
		Side:           3,
		TriangleHeight: 10,
		Iterations:     50,
		Seed:           2,
	},
}
