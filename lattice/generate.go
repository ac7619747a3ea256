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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// MinTriangleHeight is the smallest supported triangle height.  Below this
// value the quantizer grid pitch drops under one pixel and distinct
// sub-triangles can collide.
const MinTriangleHeight = 3

// errSide is returned by Generate for side lengths below one.
var errSide = errors.New("lattice: side length must be at least 1")

// unit returns the unit vector at the given angle.
func unit(phi float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}

// cross returns the z-component of the cross product a×b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Boundary is a convex hexagon, given by its corners and edge vectors.
// Corner k lies at the angle -90°+60°k.
type Boundary struct {
	Corners [6]vec.Vec2
	Edges   [6]vec.Vec2
}

// NewBoundary returns the regular hexagon with the given circumradius.
func NewBoundary(radius float64) *Boundary {
	b := &Boundary{}
	for k := range b.Corners {
		b.Corners[k] = unit(-math.Pi/2 + float64(k)*math.Pi/3).Mul(radius)
	}
	for k := range b.Edges {
		b.Edges[k] = b.Corners[(k+1)%6].Sub(b.Corners[k])
	}
	return b
}

// Outside reports whether p lies strictly outside the hexagon.
// Points on the boundary count as inside.
func (b *Boundary) Outside(p vec.Vec2) bool {
	for k, e := range b.Edges {
		if cross(p.Sub(b.Corners[k]), e) > 0 {
			return true
		}
	}
	return false
}

// sector classifies a point by the signs of its cross products with the
// corners 1, 3 and 5.  The three sectors are separated by the rays
// towards corners 0, 2 and 4.
func (b *Boundary) sector(p vec.Vec2) (Tile, bool) {
	var checks [3]bool
	for i := range checks {
		checks[i] = cross(p, b.Corners[2*i+1]) > 0
	}
	switch {
	case checks[0] && !checks[1]:
		return Fill3, true
	case checks[1] && !checks[2]:
		return Fill1, true
	case checks[2] && !checks[0]:
		return Fill2, true
	default:
		return Tile{}, false
	}
}

// Generate returns a hexagonal region of the triangular lattice, coloured
// as an empty corner.  Each edge of the hexagon holds side cells; the
// origin cell carries the [Inside] tile and is the only flippable cell.
func Generate(side int, triangleHeight float64) (*Lattice, error) {
	if side < 1 {
		return nil, errSide
	}
	if !(triangleHeight >= MinTriangleHeight) || math.IsInf(triangleHeight, 0) {
		return nil, fmt.Errorf("lattice: invalid triangle height %g", triangleHeight)
	}

	l := newLattice(side, triangleHeight)
	s := l.Step()
	origin := l.grid.Quantize(0, 0)
	l.set(origin, Inside)

	edges := [3]Tile{Edge1, Edge2, Edge3}
	for i := 1; i < side; i++ {
		for j, t := range edges {
			p := unit(-math.Pi/2 + float64(j)*2*math.Pi/3).Mul(float64(i) * s)
			l.set(l.grid.Quantize(p.X, p.Y), t)
		}
	}

	b := NewBoundary((float64(side) - 0.1) * s)

	var stack []Key
	for j := range 3 {
		p := unit(-math.Pi/2 + math.Pi/3 + float64(j)*2*math.Pi/3).Mul(s)
		stack = append(stack, l.grid.Quantize(p.X, p.Y))
	}

	visited := make(map[Key]bool)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := l.cells[k]; ok || visited[k] {
			continue
		}
		visited[k] = true

		p := l.grid.Point(k)
		if b.Outside(p) {
			continue
		}
		for d := range 6 {
			stack = append(stack, l.Neighbor(k, d))
		}
		if t, ok := b.sector(p); ok {
			l.set(k, t)
		}
	}

	return l, nil
}
