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
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hextile/lattice"
)

// DrawWireframe outlines the lozenges of a rendered tiling.
//
// A lattice edge is stroked whenever the two sub-triangles on either side
// of it carry different colours.  The outline of the whole hexagon is
// stroked as well.  The origin must be the one used for rendering.
func DrawWireframe(img *image.RGBA, l *lattice.Lattice, origin vec.Vec2, width float64, c color.Color) {
	dc := gg.NewContextForRGBA(img)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetStrokeStyle(gg.NewSolidPattern(c))

	grid := l.Grid()
	s := l.Step()
	for _, k := range l.Keys() {
		tile, _ := l.Tile(k)
		p := origin.Add(grid.Point(k))
		for d := range 6 {
			if d >= 3 {
				// interior edges are handled from the other end
				if _, ok := l.Tile(l.Neighbor(k, d)); ok {
					continue
				}
			}
			if tile[(d+5)%6] == tile[d] {
				continue
			}
			q := p.Add(direction(d).Mul(s))
			dc.MoveTo(p.X, p.Y)
			dc.LineTo(q.X, q.Y)
		}
	}

	radius := float64(l.Side()) * s
	for d := range 6 {
		q := origin.Add(direction(d).Mul(radius))
		if d == 0 {
			dc.MoveTo(q.X, q.Y)
		} else {
			dc.LineTo(q.X, q.Y)
		}
	}
	dc.ClosePath()
	dc.Stroke()
}

// direction returns the unit vector towards neighbour d.
func direction(d int) vec.Vec2 {
	phi := -math.Pi/2 + float64(d)*math.Pi/3
	return vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}
