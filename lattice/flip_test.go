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
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func snapshot(l *Lattice) map[Key]Tile {
	return maps.Clone(l.cells)
}

func TestFlipOrigin(t *testing.T) {
	l, err := Generate(2, 50)
	if err != nil {
		t.Fatal(err)
	}

	if !l.Flip(Key{}) {
		t.Fatal("Flip(origin) returned false")
	}
	if tile, _ := l.Tile(Key{}); tile != Outside {
		t.Errorf("origin = %v, want %v", tile, Outside)
	}

	want := [6]Tile{
		Inside,
		{A, A, A, C, B, A},
		Inside,
		{C, B, B, B, B, A},
		Inside,
		{C, B, A, C, C, C},
	}
	for d, w := range want {
		got, _ := l.Tile(l.Neighbor(Key{}, d))
		if got != w {
			t.Errorf("direction %d: got %v, want %v", d, got, w)
		}
	}

	if n := l.Flippable().Len(); n != 4 {
		t.Errorf("%d flippable cells, want 4", n)
	}
	checkShared(t, l)
}

func TestFlipMissing(t *testing.T) {
	l, err := Generate(3, 30)
	if err != nil {
		t.Fatal(err)
	}
	before := snapshot(l)
	if l.Flip(Key{X: 12345, Y: -999}) {
		t.Error("Flip of a missing key returned true")
	}
	if d := cmp.Diff(before, snapshot(l)); d != "" {
		t.Errorf("lattice changed (-before +after):\n%s", d)
	}
}

func TestFlipTwiceRestores(t *testing.T) {
	l, err := Generate(4, 30)
	if err != nil {
		t.Fatal(err)
	}
	before := snapshot(l)

	l.Flip(Key{})
	l.Flip(Key{})

	if d := cmp.Diff(before, snapshot(l)); d != "" {
		t.Errorf("double flip changed the lattice (-before +after):\n%s", d)
	}
	if keys := l.Flippable().Keys(); !slices.Equal(keys, []Key{{}}) {
		t.Errorf("flippable = %v", keys)
	}
}

func TestAnnealInvariants(t *testing.T) {
	l, err := Generate(8, 12)
	if err != nil {
		t.Fatal(err)
	}
	n := l.Len()

	done := l.Anneal(rand.New(rand.NewPCG(1, 2)), 5000)
	if done != 5000 {
		t.Errorf("Anneal performed %d flips, want 5000", done)
	}
	if l.Len() != n {
		t.Errorf("cell count changed from %d to %d", n, l.Len())
	}

	for _, k := range l.Keys() {
		tile, _ := l.Tile(k)
		if !tile.Valid() {
			t.Errorf("cell %v has invalid tile %v", k, tile)
		}
		if tile.IsFlippable() != l.Flippable().Contains(k) {
			t.Errorf("cell %v: tile %v, in flippable set %t",
				k, tile, l.Flippable().Contains(k))
		}
	}
	checkShared(t, l)
}

func TestAnnealDeterministic(t *testing.T) {
	run := func() map[Key]Tile {
		l, err := Generate(6, 20)
		if err != nil {
			t.Fatal(err)
		}
		l.Anneal(rand.New(rand.NewPCG(42, 7)), 2000)
		return snapshot(l)
	}
	if d := cmp.Diff(run(), run()); d != "" {
		t.Errorf("same seed, different result (-first +second):\n%s", d)
	}
}

func TestAnnealEmpty(t *testing.T) {
	l := newLattice(3, 30)
	if done := l.Anneal(rand.New(rand.NewPCG(1, 2)), 10); done != 0 {
		t.Errorf("Anneal on an empty lattice performed %d flips", done)
	}
}

func TestAnnealZero(t *testing.T) {
	l, err := Generate(3, 30)
	if err != nil {
		t.Fatal(err)
	}
	before := snapshot(l)
	if done := l.Anneal(rand.New(rand.NewPCG(1, 2)), 0); done != 0 {
		t.Errorf("got %d flips", done)
	}
	if d := cmp.Diff(before, snapshot(l)); d != "" {
		t.Errorf("lattice changed:\n%s", d)
	}
}
