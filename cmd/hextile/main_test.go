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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/hextile"
)

func TestOpenOutput(t *testing.T) {
	cfg := hextile.DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.Side = 3
	cfg.TriangleHeight = 10
	res, err := hextile.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.JPG", "c.svg", "d.pdf"} {
		path := filepath.Join(dir, name)
		write, err := openOutput(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if err := write(cfg, res); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s: nothing written", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "c.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("SVG document not finished")
	}

	if _, err := openOutput(filepath.Join(dir, "e.txt")); err == nil {
		t.Error("unsupported extension accepted")
	}
}
