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

// Command hextile draws a random stack of cubes as a lozenge tiling of a
// hexagon.
//
// Usage:
//
//	hextile -out cubes.png -side 20 -th 25 -iter 100000
//
// The output format is chosen from the file name extension.  Files ending
// in ".svg" are written as vector graphics, files ending in ".pdf" as a
// grey-shaded PDF page.  With "-out -" a PNG image is
// written to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"seehuhn.de/go/hextile"
	"seehuhn.de/go/hextile/internal/progress"
)

const banner = `
 /\ /\ /\
|  |  |  |  hextile
 \/ \/ \/

Random cube stacks on a hexagonal lattice.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

func main() {
	def := hextile.DefaultConfig()
	var (
		destination = flag.String("out", "hextile.png", "Destination image, or - for stdout")
		width       = flag.Int("width", def.Width, "Image width in pixels")
		height      = flag.Int("height", def.Height, "Image height in pixels")
		side        = flag.Int("side", def.Side, "Cells along each side of the hexagon")
		th          = flag.Float64("th", def.TriangleHeight, "Triangle height in pixels")
		iterations  = flag.Int("iter", def.Iterations, "Number of random flips")
		seed        = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
		palette     = flag.String("palette", def.Palette.String(), "Three colours as rrggbb,rrggbb,rrggbb")
		hue         = flag.Float64("hue", -1, "Derive the palette from this HSLuv hue (0-360)")
		wire        = flag.Float64("wire", 0, "Outline width (0 disables outlines)")
		background  = flag.String("bg", "ffffff", "Background colour as rrggbb")
	)

	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, banner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := def
	cfg.Width = *width
	cfg.Height = *height
	cfg.Side = *side
	cfg.TriangleHeight = *th
	cfg.Iterations = *iterations
	cfg.Wireframe = *wire

	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if *hue >= 0 {
		cfg.Palette = hextile.HuePalette(*hue, 90, 65)
	} else {
		pal, err := hextile.ParsePalette(*palette)
		if err != nil {
			log.Fatalf("Invalid palette: %v", err)
		}
		cfg.Palette = pal
	}
	bg, err := hextile.ParseColor(*background)
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}
	cfg.Background = bg

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	write, err := openOutput(*destination)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()

	step := "Stacking cubes..."
	ind := progress.New(os.Stderr, step, 100*time.Millisecond)
	ind.Start()

	res, err := hextile.Generate(cfg)
	if err != nil {
		ind.Stop(progress.Failed(step))
		log.Fatalf("Generation error: %s%v%s", progress.ErrorColor, err, progress.DefaultColor)
	}
	if err := write(cfg, res); err != nil {
		ind.Stop(progress.Failed(step))
		log.Fatalf("Error writing the output: %v", err)
	}
	ind.Stop(progress.Succeeded(step))

	log.Printf("%s%d%s cells, %s%d%s flips, seed %d",
		progress.SuccessColor, res.Lattice.Len(), progress.DefaultColor,
		progress.SuccessColor, res.Flips, progress.DefaultColor, cfg.Seed)
	log.Printf("Execution time: %s%.2fs%s",
		progress.SuccessColor, time.Since(start).Seconds(), progress.DefaultColor)
}

// writeFunc stores a finished picture.
type writeFunc func(cfg hextile.Config, res *hextile.Result) error

// openOutput checks the destination and returns a function which writes
// the picture there.
func openOutput(destination string) (writeFunc, error) {
	if destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return func(_ hextile.Config, res *hextile.Result) error {
			return hextile.WriteImage(os.Stdout, res.Image, imaging.PNG)
		}, nil
	}

	switch strings.ToLower(filepath.Ext(destination)) {
	case ".svg":
		return func(cfg hextile.Config, res *hextile.Result) error {
			return writeSVG(destination, cfg, res)
		}, nil
	case ".pdf":
		return func(cfg hextile.Config, res *hextile.Result) error {
			return writePDF(destination, cfg, res)
		}, nil
	}

	if _, err := imaging.FormatFromFilename(destination); err != nil {
		return nil, fmt.Errorf("output file type not supported: %q", filepath.Ext(destination))
	}
	return func(_ hextile.Config, res *hextile.Result) error {
		return hextile.SaveImage(destination, res.Image)
	}, nil
}

func writeSVG(path string, cfg hextile.Config, res *hextile.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	doc := hextile.NewSVG(f, cfg.Width, cfg.Height, cfg.TriangleHeight, cfg.Palette)
	if cfg.Background.A != 0 {
		doc.Background(cfg.Width, cfg.Height, cfg.Background)
	}
	hextile.Render(doc, res.Lattice)
	doc.Close()
	return f.Close()
}

func writePDF(path string, cfg hextile.Config, res *hextile.Result) error {
	doc, err := hextile.NewPDF(path, cfg.Width, cfg.Height, cfg.TriangleHeight, cfg.Palette)
	if err != nil {
		return err
	}
	bg := hextile.Palette{cfg.Background}.Gray()
	doc.Background(cfg.Width, cfg.Height, bg[0])
	hextile.Render(doc, res.Lattice)
	return doc.Close()
}
