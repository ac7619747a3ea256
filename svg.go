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
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hextile/lattice"
)

// SVG writes the sub-triangles of a tiling as polygons of an SVG
// document.  Like [Canvas], every sub-triangle is written at most once.
type SVG struct {
	canvas *svg.SVG
	origin vec.Vec2
	styles [3]string
	drawn  *drawnSet
}

// NewSVG starts an SVG document of the given size on w.  The lattice
// origin is placed at the centre of the document.  The caller must call
// [SVG.Close] to finish the document.
func NewSVG(w io.Writer, width, height int, triangleHeight float64, pal Palette) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("hexagon tiling")

	origin := vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	s := &SVG{
		canvas: canvas,
		origin: origin,
		drawn:  newDrawnSet(origin, triangleHeight),
	}
	for i, c := range pal {
		s.styles[i] = canvas.RGB(int(c.R), int(c.G), int(c.B))
	}
	return s
}

// Origin returns the document position of the lattice origin.
func (s *SVG) Origin() vec.Vec2 {
	return s.origin
}

// Background paints the whole document with c.  It should be called
// before any triangles are written.
func (s *SVG) Background(width, height int, c color.RGBA) {
	s.canvas.Rect(0, 0, width, height, s.canvas.RGB(int(c.R), int(c.G), int(c.B)))
}

// FillTriangle writes one triangle.  If a triangle with the same
// quantized centroid was written before, nothing happens.
func (s *SVG) FillTriangle(center vec.Vec2, height, angle float64, c lattice.Color) {
	if !s.drawn.add(center) {
		return
	}
	v := TriangleVertices(center, height, angle)
	var d strings.Builder
	for i, p := range v {
		op := 'L'
		if i == 0 {
			op = 'M'
		}
		fmt.Fprintf(&d, "%c%.2f %.2f ", op, p.X, p.Y)
	}
	d.WriteByte('Z')
	s.canvas.Path(d.String(), s.styles[c])
}

// Triangles returns the number of triangles written so far.
func (s *SVG) Triangles() int {
	return s.drawn.Len()
}

// Close finishes the document.
func (s *SVG) Close() {
	s.canvas.End()
}
