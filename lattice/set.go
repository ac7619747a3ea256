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

// Source is a source of uniformly distributed random integers.
// A *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	// IntN returns a uniform random integer in [0, n).  n must be positive.
	IntN(n int) int
}

// KeySet is a set of keys which supports drawing a uniformly random
// member in constant time.
//
// The order of the members only depends on the sequence of Add and
// Remove calls, so random draws are reproducible for a seeded source.
type KeySet struct {
	keys []Key
	pos  map[Key]int
}

// NewKeySet returns an empty set.
func NewKeySet() *KeySet {
	return &KeySet{pos: make(map[Key]int)}
}

// Len returns the number of members.
func (s *KeySet) Len() int {
	return len(s.keys)
}

// Contains reports whether k is a member.
func (s *KeySet) Contains(k Key) bool {
	_, ok := s.pos[k]
	return ok
}

// Add inserts k.  Adding an existing member has no effect.
func (s *KeySet) Add(k Key) {
	if _, ok := s.pos[k]; ok {
		return
	}
	s.pos[k] = len(s.keys)
	s.keys = append(s.keys, k)
}

// Remove deletes k.  Removing a non-member has no effect.
func (s *KeySet) Remove(k Key) {
	i, ok := s.pos[k]
	if !ok {
		return
	}
	last := len(s.keys) - 1
	if i != last {
		moved := s.keys[last]
		s.keys[i] = moved
		s.pos[moved] = i
	}
	s.keys = s.keys[:last]
	delete(s.pos, k)
}

// At returns the i-th member, in the internal order.
func (s *KeySet) At(i int) Key {
	return s.keys[i]
}

// Random returns a uniformly chosen member.
// The set must not be empty.
func (s *KeySet) Random(rng Source) Key {
	if len(s.keys) == 0 {
		panic("lattice: random draw from empty set")
	}
	return s.keys[rng.IntN(len(s.keys))]
}

// Keys returns a copy of the members, in the internal order.
func (s *KeySet) Keys() []Key {
	return append([]Key(nil), s.keys...)
}
