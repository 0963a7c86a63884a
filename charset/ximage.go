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
	"os"

	xsfnt "golang.org/x/image/font/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// ximageParser reads fonts using golang.org/x/image/font/sfnt.
type ximageParser struct{}

func (ximageParser) Name() string {
	return "ximage"
}

func (ximageParser) Open(fileName string) (Face, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	f, err := xsfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &ximageFace{font: f}, nil
}

// maxCodePoint is the largest Unicode code point.
const maxCodePoint = 0x10FFFF

type ximageFace struct {
	font *xsfnt.Font
	buf  xsfnt.Buffer
}

func (f *ximageFace) FirstChar() (uint32, glyph.ID) {
	return f.scan(0)
}

func (f *ximageFace) NextChar(code uint32) (uint32, glyph.ID) {
	if code >= maxCodePoint {
		return 0, 0
	}
	return f.scan(code + 1)
}

func (f *ximageFace) scan(from uint32) (uint32, glyph.ID) {
	for c := from; c <= maxCodePoint; c++ {
		idx, err := f.font.GlyphIndex(&f.buf, rune(c))
		if err == nil && idx != 0 {
			return c, glyph.ID(idx)
		}
	}
	return 0, 0
}

func (f *ximageFace) Close() error {
	f.font = nil
	return nil
}
