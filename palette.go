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
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hsluv/hsluv-go"

	"seehuhn.de/go/hextile/lattice"
)

// Palette maps the three colour labels of a tiling to RGB colours.
type Palette [3]color.RGBA

// DefaultPalette is a blue, orange and green palette.
var DefaultPalette = Palette{
	{R: 105, G: 154, B: 225, A: 255},
	{R: 225, G: 117, B: 46, A: 255},
	{R: 114, G: 225, B: 105, A: 255},
}

// Color returns the colour for label c.
func (p Palette) Color(c lattice.Color) color.RGBA {
	return p[c]
}

// String formats the palette in the form accepted by [ParsePalette].
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return strings.Join(parts, ",")
}

// HuePalette returns three colours with equal perceived saturation and
// lightness, at the hues hue, hue+120° and hue+240°.  Saturation and
// lightness range from 0 to 100, as in HSLuv.
func HuePalette(hue, saturation, lightness float64) Palette {
	var p Palette
	for i := range p {
		h := math.Mod(hue+120*float64(i), 360)
		if h < 0 {
			h += 360
		}
		r, g, b := hsluv.HsluvToRGB(h, saturation, lightness)
		p[i] = color.RGBA{
			R: channel(r),
			G: channel(g),
			B: channel(b),
			A: 0xff,
		}
	}
	return p
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 0xff))
}

var errPaletteSize = errors.New("hextile: palette needs exactly three colours")

// ParsePalette parses three comma-separated hex colours, like
// "699ae1,e1752e,72e169".  A leading '#' on each colour is ignored.
func ParsePalette(s string) (Palette, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Palette{}, errPaletteSize
	}
	var p Palette
	for i, part := range parts {
		c, err := ParseColor(part)
		if err != nil {
			return Palette{}, err
		}
		p[i] = c
	}
	return p, nil
}

// ParseColor parses a colour given as six hex digits.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("hextile: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("hextile: invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
