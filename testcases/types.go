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

// Package testcases lists the pictures used by the rendering tests and
// by the reference image generator.
package testcases

// Scenario defines a single rendering test.
type Scenario struct {
	Name           string  // lowercase a-z, 0-9 and _ only
	Width          int     // image width in pixels
	Height         int     // image height in pixels
	Side           int     // cells along each side of the hexagon
	TriangleHeight float64 // sub-triangle height in pixels
	Iterations     int     // number of random flips
	Seed           uint64  // random seed for the flips
}

// Cells returns the number of cells of the hexagon.
func (s Scenario) Cells() int {
	return 3*s.Side*(s.Side-1) + 1
}

// Triangles returns the number of distinct sub-triangles of the hexagon.
func (s Scenario) Triangles() int {
	return 6 * s.Side * s.Side
}
