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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/hextile/lattice"
)

// PDF writes the sub-triangles of a tiling to a single-page PDF file.
// The three labels are shown as grey levels, for printing the classic
// shaded cube picture.  One unit of the page is one pixel of the
// corresponding raster image.
type PDF struct {
	fill   func(g float64, v ...vec.Vec2)
	close  func() error
	origin vec.Vec2
	shades [3]float64
	drawn  *drawnSet
}

// NewPDF creates the named PDF file with a page of the given size.
// The grey levels are derived from the luminance of the palette colours.
// The caller must call [PDF.Close] to finish the file.
func NewPDF(path string, width, height int, triangleHeight float64, pal Palette) (*PDF, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF origin is bottom-left; the tiling uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	origin := vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2}
	return &PDF{
		fill: func(g float64, v ...vec.Vec2) {
			page.SetFillColor(pdfcolor.DeviceGray(g))
			page.MoveTo(v[0].X, v[0].Y)
			for _, q := range v[1:] {
				page.LineTo(q.X, q.Y)
			}
			page.ClosePath()
			page.Fill()
		},
		close: func() error {
			return page.Close()
		},
		origin: origin,
		shades: pal.Gray(),
		drawn:  newDrawnSet(origin, triangleHeight),
	}, nil
}

// Origin returns the page position of the lattice origin.
func (p *PDF) Origin() vec.Vec2 {
	return p.origin
}

// Background fills the page with the given grey level.
func (p *PDF) Background(width, height int, gray float64) {
	w, h := float64(width), float64(height)
	p.fill(gray, vec.Vec2{}, vec.Vec2{X: w}, vec.Vec2{X: w, Y: h}, vec.Vec2{Y: h})
}

// FillTriangle adds one triangle to the page.  If a triangle with the
// same quantized centroid was added before, nothing happens.
func (p *PDF) FillTriangle(center vec.Vec2, height, angle float64, c lattice.Color) {
	if !p.drawn.add(center) {
		return
	}
	v := TriangleVertices(center, height, angle)
	p.fill(p.shades[c], v[:]...)
}

// Triangles returns the number of triangles added so far.
func (p *PDF) Triangles() int {
	return p.drawn.Len()
}

// Close finishes the page and closes the file.
func (p *PDF) Close() error {
	return p.close()
}

// Gray returns the luminance of the palette colours, between 0 and 1.
func (p Palette) Gray() [3]float64 {
	var g [3]float64
	for i, c := range p {
		g[i] = float64(color.GrayModel.Convert(c).(color.Gray).Y) / 255
	}
	return g
}
