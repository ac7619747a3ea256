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
	"math"
	"testing"
)

func TestWireframe(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 300, 300
	cfg.Side = 3
	cfg.TriangleHeight = 40
	cfg.Wireframe = 5
	cfg.WireColor = red

	res, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	img := res.Image
	s := res.Lattice.Step()

	// the three edges of the corner start at the origin
	for _, d := range []int{0, 2, 4} {
		p := direction(d).Mul(s / 2)
		x, y := int(math.Round(150+p.X)), int(math.Round(150+p.Y))
		if c := img.RGBAAt(x, y); c != red {
			t.Errorf("direction %d: pixel (%d, %d) has colour %v", d, x, y, c)
		}
	}

	// edges inside a sector are not drawn
	for _, d := range []int{1, 3, 5} {
		p := direction(d).Mul(1.5 * s)
		x, y := int(math.Round(150+p.X)), int(math.Round(150+p.Y))
		if c := img.RGBAAt(x, y); c == red {
			t.Errorf("direction %d: pixel (%d, %d) is outlined", d, x, y)
		}
	}

	// outer hexagon
	top := 150 - 3*s
	if c := img.RGBAAt(150, int(math.Round(top))); c != red {
		t.Errorf("top corner has colour %v", c)
	}
}

func TestNoWireframe(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.Side = 3
	cfg.TriangleHeight = 20
	cfg.WireColor = color.RGBA{R: 255, A: 255}

	res, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := countColor(res.Image, cfg.WireColor); n != 0 {
		t.Errorf("%d outline pixels without wireframe", n)
	}
}
