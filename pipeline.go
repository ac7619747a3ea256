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

package hextile

import (
	"image"
	"math/rand/v2"

	"seehuhn.de/go/hextile/lattice"
	"seehuhn.de/go/hextile/testcases"
)

// Result is the outcome of [Generate].
type Result struct {
	Image   *image.RGBA
	Lattice *lattice.Lattice

	// Flips is the number of flips performed while annealing.
	Flips int

	// Triangles is the number of sub-triangles painted.
	Triangles int
}

// Generate builds the lattice described by cfg, applies cfg.Iterations
// random flips and renders the result.  The output only depends on cfg.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l, err := lattice.Generate(cfg.Side, cfg.TriangleHeight)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	flips := l.Anneal(rng, cfg.Iterations)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	cv := NewCanvas(img, cfg.TriangleHeight, cfg.Palette)
	cv.Clear(cfg.Background)
	Render(cv, l)

	if cfg.Wireframe > 0 {
		DrawWireframe(img, l, cv.Origin(), cfg.Wireframe, cfg.WireColor)
	}

	return &Result{
		Image:     img,
		Lattice:   l,
		Flips:     flips,
		Triangles: cv.Painted(),
	}, nil
}

// ScenarioConfig returns the configuration for a test scenario.
// All scenarios use the default palette and background.
func ScenarioConfig(sc testcases.Scenario) Config {
	cfg := DefaultConfig()
	cfg.Width = sc.Width
	cfg.Height = sc.Height
	cfg.Side = sc.Side
	cfg.TriangleHeight = sc.TriangleHeight
	cfg.Iterations = sc.Iterations
	cfg.Seed = sc.Seed
	return cfg
}

// GenerateScenario renders a test scenario.
func GenerateScenario(sc testcases.Scenario) (*Result, error) {
	return Generate(ScenarioConfig(sc))
}
