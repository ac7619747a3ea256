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
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/hextile/lattice"
)

// Config holds the parameters of one picture.
type Config struct {
	// Width and Height give the image size in pixels.
	Width, Height int

	// Side is the number of cells along each side of the hexagon.
	Side int

	// TriangleHeight is the height of the sub-triangles in pixels.
	// It must be at least [lattice.MinTriangleHeight].
	TriangleHeight float64

	Palette    Palette
	Background color.RGBA

	// Iterations is the number of random flips applied to the empty
	// corner before rendering.
	Iterations int

	// Seed initialises the random number generator.
	Seed uint64

	// Wireframe is the line width of the outline overlay.
	// No outlines are drawn if Wireframe is zero.
	Wireframe float64
	WireColor color.RGBA
}

// DefaultConfig returns a configuration for a 1000×1000 pixel picture.
func DefaultConfig() Config {
	return Config{
		Width:          1000,
		Height:         1000,
		Side:           12,
		TriangleHeight: 30,
		Palette:        DefaultPalette,
		Background:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Iterations:     2000,
		Seed:           1,
		WireColor:      color.RGBA{A: 255},
	}
}

// Validate checks that the configuration describes a picture which can
// be drawn.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Side < 1 {
		errs = append(errs, fmt.Errorf("invalid side length %d", cfg.Side))
	}
	h := cfg.TriangleHeight
	if !(h >= lattice.MinTriangleHeight) || math.IsInf(h, 0) {
		errs = append(errs, fmt.Errorf("invalid triangle height %g (minimum %d)",
			h, lattice.MinTriangleHeight))
	}
	if cfg.Iterations < 0 {
		errs = append(errs, fmt.Errorf("negative iteration count %d", cfg.Iterations))
	}
	if !(cfg.Wireframe >= 0) || math.IsInf(cfg.Wireframe, 0) {
		errs = append(errs, fmt.Errorf("invalid wireframe width %g", cfg.Wireframe))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("hextile: %w", err)
	}
	return nil
}
