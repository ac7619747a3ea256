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
	"math/rand/v2"
	"slices"
	"testing"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet()
	if s.Len() != 0 {
		t.Fatalf("new set has %d members", s.Len())
	}

	keys := []Key{{0, 0}, {1, 2}, {-3, 4}, {5, -6}}
	for _, k := range keys {
		s.Add(k)
	}
	s.Add(Key{1, 2})
	if s.Len() != len(keys) {
		t.Fatalf("Len = %d, want %d", s.Len(), len(keys))
	}
	for _, k := range keys {
		if !s.Contains(k) {
			t.Errorf("missing %v", k)
		}
	}

	s.Remove(Key{0, 0})
	s.Remove(Key{99, 99})
	if s.Len() != 3 || s.Contains(Key{0, 0}) {
		t.Fatalf("after Remove: %v", s.Keys())
	}

	got := s.Keys()
	slices.SortFunc(got, Key.Compare)
	want := []Key{{5, -6}, {1, 2}, {-3, 4}}
	if !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}

	for i := range s.Len() {
		if !s.Contains(s.At(i)) {
			t.Errorf("At(%d) = %v is not a member", i, s.At(i))
		}
	}
}

func TestKeySetRemoveAll(t *testing.T) {
	s := NewKeySet()
	for i := range 100 {
		s.Add(Key{i, -i})
	}
	for i := 99; i >= 0; i -= 2 {
		s.Remove(Key{i, -i})
	}
	for i := 0; i < 100; i += 2 {
		s.Remove(Key{i, -i})
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after removing everything", s.Len())
	}
}

func TestKeySetRandomUniform(t *testing.T) {
	s := NewKeySet()
	for i := range 4 {
		s.Add(Key{i, 0})
	}

	rng := rand.New(rand.NewPCG(1, 2))
	counts := make(map[Key]int)
	const n = 40000
	for range n {
		counts[s.Random(rng)]++
	}
	for i := range 4 {
		c := counts[Key{i, 0}]
		if c < n/4-1000 || c > n/4+1000 {
			t.Errorf("key %d drawn %d times out of %d", i, c, n)
		}
	}
}

func TestKeySetRandomEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewKeySet().Random(rand.New(rand.NewPCG(1, 2)))
}
