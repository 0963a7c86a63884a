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
	"bytes"
	"os"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// sfntParser reads fonts using seehuhn.de/go/sfnt.
type sfntParser struct{}

func (sfntParser) Name() string {
	return "sfnt"
}

func (sfntParser) Open(fileName string) (Face, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	low, high := subtable.CodeRange()
	return &sfntFace{
		cmap: subtable,
		low:  low,
		high: high,
	}, nil
}

type sfntFace struct {
	cmap      cmap.Subtable
	low, high rune
}

func (f *sfntFace) FirstChar() (uint32, glyph.ID) {
	return f.scan(f.low)
}

func (f *sfntFace) NextChar(code uint32) (uint32, glyph.ID) {
	if code >= uint32(f.high) {
		return 0, 0
	}
	return f.scan(rune(code) + 1)
}

// scan finds the first mapped code point c with c >= from.
func (f *sfntFace) scan(from rune) (uint32, glyph.ID) {
	if from < 0 {
		from = 0
	}
	for r := from; r <= f.high; r++ {
		if gid := f.cmap.Lookup(r); gid != 0 {
			return uint32(r), gid
		}
	}
	return 0, 0
}

func (f *sfntFace) Close() error {
	f.cmap = nil
	return nil
}
