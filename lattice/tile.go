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

package lattice

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Color is one of the three palette labels.
type Color uint8

// The palette labels.
const (
	A Color = iota
	B
	C

	numColors = 3
)

// Valid reports whether c is a palette label.
func (c Color) Valid() bool {
	return c < numColors
}

func (c Color) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Tile is the colouring of the six sub-triangles around a lattice vertex.
//
// Slot i is the triangle between the directions -90°+60°i and -30°+60°i,
// measured in image coordinates with the y-axis pointing down.  On screen
// the slots therefore run clockwise, starting with the triangle to the
// right of the upward edge.
type Tile [6]Color

// The two canonical tiles.  A cell is flippable iff its tile equals one
// of these.
var (
	Inside  = Tile{A, A, B, B, C, C}
	Outside = Tile{B, C, C, A, A, B}
)

// Uniform tiles, used for the three sectors of a freshly generated hexagon.
var (
	Fill1 = Tile{A, A, A, A, A, A}
	Fill2 = Tile{B, B, B, B, B, B}
	Fill3 = Tile{C, C, C, C, C, C}
)

// Edge tiles, used along the three sector boundaries.  Each one shows
// the two adjacent sector colours on either side of its ray.
var (
	Edge1 = Tile{A, A, A, C, C, C} // ray at -90°
	Edge2 = Tile{A, A, B, B, B, A} // ray at 30°
	Edge3 = Tile{C, B, B, B, C, C} // ray at 150°
)

// IsInside reports whether t equals [Inside].
func (t Tile) IsInside() bool {
	return t == Inside
}

// IsOutside reports whether t equals [Outside].
func (t Tile) IsOutside() bool {
	return t == Outside
}

// IsFlippable reports whether t is one of the two canonical tiles.
func (t Tile) IsFlippable() bool {
	return t == Inside || t == Outside
}

// Valid reports whether every slot holds a palette label.
func (t Tile) Valid() bool {
	for _, c := range t {
		if !c.Valid() {
			return false
		}
	}
	return true
}

func (t Tile) String() string {
	var buf [6]byte
	for i, c := range t {
		if c.Valid() {
			buf[i] = "ABC"[c]
		} else {
			buf[i] = '?'
		}
	}
	return string(buf[:])
}

// sideSlots returns the two slots which touch the edge towards the
// neighbour on the given side.
func sideSlots(side int) (first, second int) {
	if side < 0 || side >= 6 {
		panic(fmt.Sprintf("lattice: side %d out of range", side))
	}
	if side == 0 {
		return 5, 0
	}
	return side, side - 1
}

func opposite(slot int) int {
	return (slot + 3) % 6
}

// MergeSide copies the colours along a shared edge from a neighbour's
// tile into t.  The neighbour lies in direction side of t, and pattern is
// the neighbour's tile.  Both triangles adjacent to the shared edge take
// the colours the neighbour holds for the same triangles, which sit in
// the neighbour's diametrically opposite slots.
func (t *Tile) MergeSide(side int, pattern Tile) {
	first, second := sideSlots(side)
	t[second] = pattern[opposite(first)]
	t[first] = pattern[opposite(second)]
}

// Filler paints solid equilateral triangles.
type Filler interface {
	// FillTriangle paints the equilateral triangle with the given centroid
	// and height.  The angle rotates the triangle; at angle 0 one vertex
	// points straight down.
	FillTriangle(center vec.Vec2, height, angle float64, c Color)
}

// seamScale enlarges the sub-triangles slightly, so that neighbouring
// triangles overlap and no background shows through along shared edges.
const seamScale = 1.01

// Draw paints the six sub-triangles of t around the given centre.
func (t Tile) Draw(f Filler, center vec.Vec2, height float64) {
	r := 2.0 / 3.0 * height
	for i, c := range t {
		phi := -math.Pi/3 + float64(i)*math.Pi/3
		p := vec.Vec2{
			X: center.X + r*math.Cos(phi),
			Y: center.Y + r*math.Sin(phi),
		}
		angle := -math.Pi / 6
		if i%2 == 1 {
			angle = math.Pi / 6
		}
		f.FillTriangle(p, height*seamScale, angle, c)
	}
}
