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

// Package cmap writes the CMap streams which make up the encoding of a
// composite PDF font: the Encoding CMap (character codes to CIDs) and the
// ToUnicode CMap (character codes to text).
//
// Character codes are byte strings from the UTF-8 code space, so that the
// text in a content stream is the UTF-8 encoding of the characters shown.
package cmap

import (
	"bytes"
	"slices"

	"seehuhn.de/go/postscript/cid"
)

// Range is a range of character codes.  Low and High must have the same
// length.
type Range struct {
	Low, High []byte
}

// UTF8 is the code space of UTF-8 encoded character codes.
var UTF8 = []Range{
	{[]byte{0x00}, []byte{0x7F}},
	{[]byte{0xC2, 0x80}, []byte{0xDF, 0xBF}},
	{[]byte{0xE0, 0x80, 0x80}, []byte{0xEF, 0xBF, 0xBF}},
	{[]byte{0xF0, 0x80, 0x80, 0x80}, []byte{0xF7, 0xBF, 0xBF, 0xBF}},
}

// Identity is the character collection used for fonts where CID values
// equal glyph indices.
var Identity = &cid.SystemInfo{
	Registry:   "Adobe",
	Ordering:   "Identity",
	Supplement: 0,
}

// InCodeSpace reports whether code is a complete code in one of the ranges.
func InCodeSpace(ranges []Range, code []byte) bool {
rangeLoop:
	for _, r := range ranges {
		if len(r.Low) != len(code) {
			continue
		}
		for i, c := range code {
			if c < r.Low[i] || c > r.High[i] {
				continue rangeLoop
			}
		}
		return true
	}
	return false
}

// entry is a code together with the value it maps to.
type entry struct {
	Code  []byte
	Value uint32
}

// span is a run of consecutive codes which map to consecutive values.
type span struct {
	First, Last []byte
	Value       uint32
}

// group sorts the entries by code and merges runs of codes which differ only
// in the last byte.  The function extend decides whether the value of next
// can follow the value of prev inside a run.
func group(entries []entry, extend func(prev, next uint32) bool) ([]entry, []span) {
	slices.SortFunc(entries, func(a, b entry) int {
		if c := len(a.Code) - len(b.Code); c != 0 {
			return c
		}
		return bytes.Compare(a.Code, b.Code)
	})

	var singles []entry
	var spans []span
	for i := 0; i < len(entries); {
		j := i + 1
		for j < len(entries) && follows(entries[j-1], entries[j], extend) {
			j++
		}
		if j-i == 1 {
			singles = append(singles, entries[i])
		} else {
			spans = append(spans, span{
				First: entries[i].Code,
				Last:  entries[j-1].Code,
				Value: entries[i].Value,
			})
		}
		i = j
	}
	return singles, spans
}

func follows(a, b entry, extend func(prev, next uint32) bool) bool {
	n := len(a.Code)
	if n != len(b.Code) || n == 0 {
		return false
	}
	if !bytes.Equal(a.Code[:n-1], b.Code[:n-1]) || a.Code[n-1]+1 != b.Code[n-1] {
		return false
	}
	return extend(a.Value, b.Value)
}

const chunkSize = 100

func chunks[T any](x []T) [][]T {
	var res [][]T
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}
