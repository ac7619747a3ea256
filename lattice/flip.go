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

// Flip toggles the cell k between [Inside] and [Outside] and propagates
// the change to the neighbouring cells.  It returns false, and leaves the
// lattice unchanged, if k is not a cell of the lattice.
//
// Cells which are not flippable are treated like [Outside] cells and are
// replaced by [Inside].
func (l *Lattice) Flip(k Key) bool {
	t, ok := l.cells[k]
	if !ok {
		return false
	}

	into := Inside
	if t.IsInside() {
		into = Outside
	}
	l.set(k, into)

	for d := range 6 {
		nk := l.Neighbor(k, d)
		nt, ok := l.cells[nk]
		if !ok {
			continue
		}
		nt.MergeSide((d+3)%6, into)
		l.set(nk, nt)
	}
	return true
}

// Anneal performs up to n random flips.  Each step flips a cell drawn
// uniformly from the flippable set.  Anneal stops early when no cell is
// flippable, and returns the number of flips performed.
func (l *Lattice) Anneal(rng Source, n int) int {
	done := 0
	for done < n && l.flippable.Len() > 0 {
		l.Flip(l.flippable.Random(rng))
		done++
	}
	return done
}
