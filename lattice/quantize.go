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
	"cmp"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Key identifies a lattice cell, or a sub-triangle on a drawing surface.
// Keys are integer plane coordinates snapped to the grid of a [Quantizer].
type Key struct {
	X, Y int
}

// Compare orders keys by row, then by column.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Y, other.Y); c != 0 {
		return c
	}
	return cmp.Compare(k.X, other.X)
}

// Quantizer snaps continuous plane coordinates to a rectangular grid.
type Quantizer struct {
	// Center is the plane point which maps to the zero key.
	Center vec.Vec2

	// GridWidth and GridHeight are the grid pitches.
	// Both must be at least 1 for [Quantizer.Key] to invert
	// [Quantizer.Point].
	GridWidth  float64
	GridHeight float64
}

// GridFor returns a quantizer centred at the given point whose grid
// contains every lattice vertex and every sub-triangle centroid of a
// triangular lattice with the given triangle height.
func GridFor(center vec.Vec2, triangleHeight float64) Quantizer {
	return Quantizer{
		Center:     center,
		GridWidth:  triangleHeight / 3,
		GridHeight: triangleHeight / math.Sqrt(3),
	}
}

// Quantize maps an offset from the centre to the nearest grid point.
func (q Quantizer) Quantize(x, y float64) Key {
	x = math.Round(x/q.GridWidth) * q.GridWidth
	y = math.Round(y/q.GridHeight) * q.GridHeight
	return Key{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Key maps an absolute plane point to the nearest grid point.
func (q Quantizer) Key(p vec.Vec2) Key {
	return q.Quantize(p.X-q.Center.X, p.Y-q.Center.Y)
}

// Point returns the absolute plane position of the grid point with key k.
// Keys store rounded coordinates; Point recovers the exact grid position.
func (q Quantizer) Point(k Key) vec.Vec2 {
	x := math.Round(float64(k.X)/q.GridWidth) * q.GridWidth
	y := math.Round(float64(k.Y)/q.GridHeight) * q.GridHeight
	return vec.Vec2{X: q.Center.X + x, Y: q.Center.Y + y}
}
