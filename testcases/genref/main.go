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

// Command genref generates the reference images for the rendering tests.
// It renders every scenario to a PNG file, and with -svg also to an SVG
// file for visual inspection.
// Run from the hextile module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/hextile"
	"seehuhn.de/go/hextile/testcases"
)

const refDir = "testdata/reference"

func main() {
	withSVG := flag.Bool("svg", false, "also write SVG files")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name

			res, err := hextile.GenerateScenario(sc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			pngPath := filepath.Join(refDir, name+".png")
			if err := hextile.SaveImage(pngPath, res.Image); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withSVG {
				svgPath := filepath.Join(refDir, name+".svg")
				if err := writeSVG(svgPath, sc, res); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func writeSVG(svgPath string, sc testcases.Scenario, res *hextile.Result) error {
	f, err := os.Create(svgPath)
	if err != nil {
		return err
	}

	cfg := hextile.ScenarioConfig(sc)
	doc := hextile.NewSVG(f, sc.Width, sc.Height, sc.TriangleHeight, cfg.Palette)
	doc.Background(sc.Width, sc.Height, cfg.Background)
	hextile.Render(doc, res.Lattice)
	doc.Close()

	return f.Close()
}
