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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/hextile/lattice"
)

// Canvas paints the sub-triangles of a tiling into an RGBA image.
//
// Every sub-triangle is painted at most once: the canvas remembers the
// quantized centroids of all triangles drawn so far and ignores repeated
// requests for the same triangle.
type Canvas struct {
	// Img is the destination image.
	Img *image.RGBA

	// Clip restricts painting to a region of Img, in pixel coordinates
	// with the y-axis pointing down.  Pixels with LLx <= x < URx and
	// LLy <= y < URy can be painted.
	Clip rect.Rect

	// Palette gives the colours of the three labels.
	Palette Palette

	origin vec.Vec2
	drawn  *drawnSet
}

// NewCanvas returns a canvas which paints into img.  The lattice origin
// is placed at the centre of the image, and the triangle height selects
// the grid used to recognise triangles which are already drawn.
func NewCanvas(img *image.RGBA, triangleHeight float64, pal Palette) *Canvas {
	b := img.Bounds()
	origin := vec.Vec2{
		X: float64(b.Min.X) + float64(b.Dx())/2,
		Y: float64(b.Min.Y) + float64(b.Dy())/2,
	}
	return &Canvas{
		Img:  img,
		Clip: rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		},
		Palette: pal,
		origin:  origin,
		drawn:   newDrawnSet(origin, triangleHeight),
	}
}

// Origin returns the image position of the lattice origin.
func (cv *Canvas) Origin() vec.Vec2 {
	return cv.origin
}

// Painted returns the number of triangles painted so far.
func (cv *Canvas) Painted() int {
	return cv.drawn.Len()
}

// Clear fills the clip region with c.  The record of drawn triangles
// is kept.
func (cv *Canvas) Clear(c color.RGBA) {
	xMin, yMin, xMax, yMax := cv.clipBounds()
	for y := yMin; y < yMax; y++ {
		cv.fillSpan(y, xMin, xMax, c)
	}
}

// FillTriangle paints an equilateral triangle.  If a triangle with the
// same quantized centroid has been painted before, nothing happens.
func (cv *Canvas) FillTriangle(center vec.Vec2, height, angle float64, c lattice.Color) {
	if !cv.drawn.add(center) {
		return
	}

	col := cv.Palette.Color(c)
	v := TriangleVertices(center, height, angle)
	cv.scan(v, func(y, xMin, xMax int) {
		cv.fillSpan(y, xMin, xMax, col)
	})
}

// scan calls emit once for every pixel row which intersects the
// triangle.  The pixels xMin <= x < xMax of row y are inside.
func (cv *Canvas) scan(v [3]vec.Vec2, emit func(y, xMin, xMax int)) {
	cxMin, cyMin, cxMax, cyMax := cv.clipBounds()

	xMin := max(int(math.Floor(min(v[0].X, v[1].X, v[2].X))), cxMin)
	xMax := min(int(math.Ceil(max(v[0].X, v[1].X, v[2].X))), cxMax)
	yMin := max(int(math.Floor(min(v[0].Y, v[1].Y, v[2].Y))), cyMin)
	yMax := min(int(math.Ceil(max(v[0].Y, v[1].Y, v[2].Y))), cyMax)

	for y := yMin; y < yMax; y++ {
		start := -1
		for x := xMin; x < xMax; x++ {
			in := InsideTriangle(v, vec.Vec2{X: float64(x), Y: float64(y)})
			if in && start < 0 {
				start = x
			} else if !in && start >= 0 {
				emit(y, start, x)
				start = -1
			}
		}
		if start >= 0 {
			emit(y, start, xMax)
		}
	}
}

func (cv *Canvas) clipBounds() (xMin, yMin, xMax, yMax int) {
	b := cv.Img.Bounds()
	xMin = max(int(math.Ceil(cv.Clip.LLx)), b.Min.X)
	yMin = max(int(math.Ceil(cv.Clip.LLy)), b.Min.Y)
	xMax = min(int(math.Ceil(cv.Clip.URx)), b.Max.X)
	yMax = min(int(math.Ceil(cv.Clip.URy)), b.Max.Y)
	return
}

func (cv *Canvas) fillSpan(y, xMin, xMax int, c color.RGBA) {
	if xMin >= xMax {
		return
	}
	i := cv.Img.PixOffset(xMin, y)
	row := cv.Img.Pix[i : i+4*(xMax-xMin)]
	for j := 0; j < len(row); j += 4 {
		row[j] = c.R
		row[j+1] = c.G
		row[j+2] = c.B
		row[j+3] = c.A
	}
}

// drawnSet records the quantized centroids of the triangles drawn on a
// surface.
type drawnSet struct {
	grid lattice.Quantizer
	keys map[lattice.Key]struct{}
}

func newDrawnSet(origin vec.Vec2, triangleHeight float64) *drawnSet {
	return &drawnSet{
		grid: lattice.GridFor(origin, triangleHeight),
		keys: make(map[lattice.Key]struct{}),
	}
}

// add records the triangle with the given centroid.  It returns false if
// the triangle was recorded before.
func (d *drawnSet) add(center vec.Vec2) bool {
	k := d.grid.Key(center)
	if _, seen := d.keys[k]; seen {
		return false
	}
	d.keys[k] = struct{}{}
	return true
}

func (d *drawnSet) Len() int {
	return len(d.keys)
}

// TriangleVertices returns the corners of the equilateral triangle with
// the given centroid and height.  At angle 0 the first vertex points
// straight down (in image coordinates), and increasing the angle turns
// the triangle counter-clockwise on screen.
func TriangleVertices(center vec.Vec2, height, angle float64) [3]vec.Vec2 {
	r := 2.0 / 3.0 * height
	var v [3]vec.Vec2
	for i := range v {
		phi := angle + float64(i)*2*math.Pi/3
		v[i] = vec.Vec2{
			X: center.X + r*math.Sin(phi),
			Y: center.Y + r*math.Cos(phi),
		}
	}
	return v
}

// InsideTriangle reports whether p lies inside, or on the boundary of,
// the triangle with vertices v as returned by [TriangleVertices].
func InsideTriangle(v [3]vec.Vec2, p vec.Vec2) bool {
	c, b, a := v[0], v[1], v[2]
	return edgeTest(p, b, a) && edgeTest(p, c, b) && edgeTest(p, a, c)
}

// edgeTest reports whether p lies on the inner side of the edge u→v.
func edgeTest(p, u, v vec.Vec2) bool {
	d := p.Sub(u)
	e := v.Sub(u)
	return d.X*e.Y-d.Y*e.X >= 0
}
