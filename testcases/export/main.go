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

// Command export writes the scenario catalogue to JSON, for use by
// external image comparison tools.
// Run from the hextile module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/hextile/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name           string  `json:"name"`
	Reference      string  `json:"reference"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Side           int     `json:"side"`
	TriangleHeight float64 `json:"triangle_height"`
	Iterations     int     `json:"iterations,omitempty"`
	Seed           uint64  `json:"seed,omitempty"`
	Cells          int     `json:"cells"`
	Triangles      int     `json:"triangles"`
}

func toJSON(category string, sc testcases.Scenario) jsonScenario {
	name := category + "_" + sc.Name
	return jsonScenario{
		Name:           name,
		Reference:      "testdata/reference/" + name + ".png",
		Width:          sc.Width,
		Height:         sc.Height,
		Side:           sc.Side,
		TriangleHeight: sc.TriangleHeight,
		Iterations:     sc.Iterations,
		Seed:           sc.Seed,
		Cells:          sc.Cells(),
		Triangles:      sc.Triangles(),
	}
}
