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

package lattice

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// checkShared verifies that neighbouring cells agree on the colours of
// the two triangles along their common edge.
func checkShared(t *testing.T, l *Lattice) {
	t.Helper()
	for _, k := range l.Keys() {
		tile, _ := l.Tile(k)
		for d := range 6 {
			nk := l.Neighbor(k, d)
			nt, ok := l.Tile(nk)
			if !ok {
				continue
			}
			if tile[d] != nt[(d+2)%6] || tile[(d+5)%6] != nt[(d+3)%6] {
				t.Fatalf("cells %v (%v) and %v (%v) disagree across side %d",
					k, tile, nk, nt, d)
			}
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("side%d", n), func(t *testing.T) {
			l, err := Generate(n, 30)
			if err != nil {
				t.Fatal(err)
			}
			want := 3*n*(n-1) + 1
			if l.Len() != want {
				t.Errorf("got %d cells, want %d", l.Len(), want)
			}
			if l.Flippable().Len() != 1 || !l.Flippable().Contains(Key{}) {
				t.Errorf("flippable = %v, want only the origin", l.Flippable().Keys())
			}
			checkShared(t, l)
		})
	}
}

func TestGenerateSingleCell(t *testing.T) {
	l, err := Generate(1, 50)
	if err != nil {
		t.Fatal(err)
	}
	keys := l.Keys()
	if len(keys) != 1 || keys[0] != (Key{}) {
		t.Fatalf("keys = %v", keys)
	}
	if tile, _ := l.Tile(Key{}); tile != Inside {
		t.Errorf("origin = %v", tile)
	}
}

func TestGenerateSide2(t *testing.T) {
	l, err := Generate(2, 50)
	if err != nil {
		t.Fatal(err)
	}

	want := [6]Tile{Edge1, Fill1, Edge2, Fill2, Edge3, Fill3}
	for d, w := range want {
		nk := l.Neighbor(Key{}, d)
		got, ok := l.Tile(nk)
		if !ok {
			t.Errorf("direction %d: no cell at %v", d, nk)
			continue
		}
		if got != w {
			t.Errorf("direction %d: got %v, want %v", d, got, w)
		}
	}
}

// TestGenerateSectors checks that every fill cell lies in the sector its
// colour belongs to, and that each edge ray carries side-1 edge cells.
func TestGenerateSectors(t *testing.T) {
	const side = 6
	l, err := Generate(side, 20)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[Tile]int)
	for _, k := range l.Keys() {
		tile, _ := l.Tile(k)
		counts[tile]++

		p := l.Grid().Point(k)
		deg := math.Atan2(p.Y, p.X) * 180 / math.Pi
		if deg < -90 {
			deg += 360
		}
		var lo, hi float64
		switch tile {
		case Fill1:
			lo, hi = -90, 30
		case Fill2:
			lo, hi = 30, 150
		case Fill3:
			lo, hi = 150, 270
		default:
			continue
		}
		if deg <= lo || deg >= hi {
			t.Errorf("%v at %v (%.1f°) outside its sector", tile, k, deg)
		}
	}

	for _, e := range []Tile{Edge1, Edge2, Edge3} {
		if counts[e] != side-1 {
			t.Errorf("%d cells with %v, want %d", counts[e], e, side-1)
		}
	}
	fills := counts[Fill1] + counts[Fill2] + counts[Fill3]
	if fills != l.Len()-1-3*(side-1) {
		t.Errorf("%d fill cells", fills)
	}
	if counts[Fill1] != counts[Fill2] || counts[Fill2] != counts[Fill3] {
		t.Errorf("unbalanced sectors: %d %d %d", counts[Fill1], counts[Fill2], counts[Fill3])
	}
}

func TestGenerateDistinctPositions(t *testing.T) {
	l, err := Generate(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := l.Step()
	radius := float64(l.Side()) * s
	seen := make(map[vec.Vec2]Key)
	for _, k := range l.Keys() {
		p := l.Grid().Point(k)
		if other, dup := seen[p]; dup {
			t.Fatalf("keys %v and %v share the position %v", k, other, p)
		}
		seen[p] = k
		if p.Length() > radius {
			t.Errorf("cell %v at distance %g beyond %g", k, p.Length(), radius)
		}
	}
	checkShared(t, l)
}

func TestGenerateErrors(t *testing.T) {
	cases := []struct {
		side int
		h    float64
	}{
		{0, 30},
		{-2, 30},
		{3, 2.9},
		{3, 0},
		{3, -10},
		{3, math.NaN()},
		{3, math.Inf(1)},
	}
	for _, c := range cases {
		if _, err := Generate(c.side, c.h); err == nil {
			t.Errorf("Generate(%d, %g) succeeded", c.side, c.h)
		}
	}
}

func TestBoundary(t *testing.T) {
	b := NewBoundary(10)

	inside := []vec.Vec2{{}, {X: 0, Y: -9.99}, {X: 8, Y: 0}}
	for _, c := range b.Corners {
		inside = append(inside, c, c.Mul(0.99))
	}
	for _, p := range inside {
		if b.Outside(p) {
			t.Errorf("%v reported outside", p)
		}
	}

	outside := []vec.Vec2{{X: 0, Y: -10.01}, {X: 9, Y: 0}, {X: 100, Y: 100}}
	for k, c := range b.Corners {
		mid := c.Add(b.Edges[k].Mul(0.5))
		outside = append(outside, c.Mul(1.01), mid.Mul(1.01))
	}
	for _, p := range outside {
		if !b.Outside(p) {
			t.Errorf("%v reported inside", p)
		}
	}
}
