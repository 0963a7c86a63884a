// seehuhn.de/go/glyphsheet - character tables for font files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package charset

import (
	"iter"
	"slices"
)

// Set is a set of distinct characters, each given by its UTF-8 encoding.
// A Set is read-only once it has been constructed by [Collect].
type Set struct {
	chars []string
	index map[string]struct{}
}

func newSet() *Set {
	return &Set{
		index: make(map[string]struct{}),
	}
}

// add inserts c into the set.  It returns false if c was already present.
func (s *Set) add(c string) bool {
	if _, seen := s.index[c]; seen {
		return false
	}
	s.index[c] = struct{}{}
	s.chars = append(s.chars, c)
	return true
}

// Len returns the number of characters in the set.
func (s *Set) Len() int {
	return len(s.chars)
}

// Chars returns the characters in the set, in the order chosen when the
// set was collected.  The returned slice is a copy.
func (s *Set) Chars() []string {
	return slices.Clone(s.chars)
}

// All iterates over the characters in the set, in order.
func (s *Set) All() iter.Seq[string] {
	return slices.Values(s.chars)
}

// Contains reports whether c is in the set.
func (s *Set) Contains(c string) bool {
	_, ok := s.index[c]
	return ok
}
