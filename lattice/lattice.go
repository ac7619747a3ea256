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

// Package lattice implements hexagonal regions of a triangular lattice
// whose vertices carry a fan of six coloured sub-triangles.
//
// Each vertex ("cell") of the lattice is surrounded by six equilateral
// triangles, and each triangle is shared by three cells.  Colouring the
// triangles with three colours so that every cell shows either the
// [Inside] or the [Outside] pattern yields a picture of stacked cubes.
// [Generate] builds the picture of an empty corner, and [Lattice.Flip]
// adds or removes a single cube.
package lattice

import (
	"maps"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Lattice is a finite set of cells of a triangular lattice, together
// with the set of cells which can currently be flipped.
//
// A Lattice is not safe for concurrent use.
type Lattice struct {
	side           int
	triangleHeight float64
	grid           Quantizer

	cells     map[Key]Tile
	flippable *KeySet
}

func newLattice(side int, triangleHeight float64) *Lattice {
	return &Lattice{
		side:           side,
		triangleHeight: triangleHeight,
		grid:           GridFor(vec.Vec2{}, triangleHeight),
		cells:          make(map[Key]Tile),
		flippable:      NewKeySet(),
	}
}

// Side returns the side length of the hexagon, in cells.
func (l *Lattice) Side() int {
	return l.side
}

// TriangleHeight returns the height of the sub-triangles.
func (l *Lattice) TriangleHeight() float64 {
	return l.triangleHeight
}

// Step returns the distance between neighbouring cells, which is the
// side length of the sub-triangles.
func (l *Lattice) Step() float64 {
	return 2 * l.triangleHeight / math.Sqrt(3)
}

// Grid returns the quantizer which maps cell positions to keys.
// The grid is centred at the origin cell.
func (l *Lattice) Grid() Quantizer {
	return l.grid
}

// Len returns the number of cells.
func (l *Lattice) Len() int {
	return len(l.cells)
}

// Tile returns the tile of the cell k.
func (l *Lattice) Tile(k Key) (Tile, bool) {
	t, ok := l.cells[k]
	return t, ok
}

// Keys returns the keys of all cells, sorted by row and then by column.
func (l *Lattice) Keys() []Key {
	return slices.SortedFunc(maps.Keys(l.cells), Key.Compare)
}

// Flippable returns the set of cells which can currently be flipped.
// The caller must not modify the set.
func (l *Lattice) Flippable() *KeySet {
	return l.flippable
}

// Neighbor returns the key of the neighbouring position of k in the
// given direction.  Direction d points at the angle -90°+60°d.
// The returned key need not belong to a cell of the lattice.
func (l *Lattice) Neighbor(k Key, d int) Key {
	phi := -math.Pi/2 + float64(d)*math.Pi/3
	p := l.grid.Point(k).Add(unit(phi).Mul(l.Step()))
	return l.grid.Key(p)
}

// set stores a tile and keeps the flippable set up to date.
func (l *Lattice) set(k Key, t Tile) {
	l.cells[k] = t
	if t.IsFlippable() {
		l.flippable.Add(k)
	} else {
		l.flippable.Remove(k)
	}
}
