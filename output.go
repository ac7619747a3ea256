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
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// jpegQuality is used for JPEG output.  The flat colour regions of a
// tiling show ringing at the library default.
const jpegQuality = 95

// WriteImage encodes img to w in the given format.
func WriteImage(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("hextile: encoding %s: %w", format, err)
	}
	return nil
}

// SaveImage writes img to the named file.  The image format is chosen
// from the file name extension.
func SaveImage(path string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("hextile: %s: %w", path, err)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("hextile: %w", err)
	}
	return nil
}
