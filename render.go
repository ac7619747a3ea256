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

// Package hextile draws lozenge tilings of a hexagon as stacks of cubes.
//
// A [lattice.Lattice] describes which colour each sub-triangle of the
// tiling carries.  [Render] paints a lattice onto a [Surface], which can
// be a raster [Canvas] or an [SVG] document.  [Generate] runs the whole
// pipeline, from an empty corner through random cube flips to an image.
package hextile

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hextile/lattice"
)

// Surface is a drawing target for [Render].
type Surface interface {
	lattice.Filler

	// Origin returns the surface position of the lattice origin.
	Origin() vec.Vec2
}

// Render draws all cells of l onto s.  Cells are visited in the order
// given by [lattice.Lattice.Keys], so that the output only depends on
// the lattice contents.
func Render(s Surface, l *lattice.Lattice) {
	origin := s.Origin()
	grid := l.Grid()
	h := l.TriangleHeight()
	for _, k := range l.Keys() {
		tile, _ := l.Tile(k)
		tile.Draw(s, origin.Add(grid.Point(k)), h)
	}
}
