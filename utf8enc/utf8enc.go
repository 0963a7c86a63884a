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

// Package utf8enc converts Unicode code points to and from the
// variable-width UTF-8 byte encoding used for the text of a character table.
//
// Unlike the standard library's unicode/utf8 package, the functions here
// never substitute the replacement character: every 32-bit value has an
// encoding, including surrogate code points and values above the Unicode
// range.  This matches the character codes found in font cmap tables, which
// are not guaranteed to be valid Unicode scalar values.
package utf8enc

// Maximum code point for each encoded length.
const (
	max1 = 0x7F
	max2 = 0x7FF
	max3 = 0xFFFF
)

// UTFMax is the maximum number of bytes of an encoded code point.
const UTFMax = 4

// Encode returns the UTF-8 encoding of the code point cp.
func Encode(cp uint32) []byte {
	return AppendEncoded(make([]byte, 0, EncodedLen(cp)), cp)
}

// EncodeString returns the UTF-8 encoding of cp as a string.
func EncodeString(cp uint32) string {
	return string(Encode(cp))
}

// AppendEncoded appends the UTF-8 encoding of cp to buf and returns
// the extended buffer.
//
// Code points above 0x1FFFFF do not fit into four bytes.  For these, the
// high bits of the lead byte are truncated.
func AppendEncoded(buf []byte, cp uint32) []byte {
	switch {
	case cp <= max1:
		return append(buf, byte(cp))
	case cp <= max2:
		return append(buf,
			0xC0|byte(cp>>6),
			0x80|byte(cp&0x3F))
	case cp <= max3:
		return append(buf,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	default:
		return append(buf,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	}
}

// EncodedLen returns the number of bytes needed to encode cp.
func EncodedLen(cp uint32) int {
	switch {
	case cp <= max1:
		return 1
	case cp <= max2:
		return 2
	case cp <= max3:
		return 3
	default:
		return 4
	}
}

// DecodeRune decodes the first encoded code point in b.
// It returns the code point, the number of bytes consumed and whether
// the bytes formed a complete encoding.
//
// If ok is false, size is 1 (or 0 if b is empty) and cp is the value
// of the first byte.
func DecodeRune(b []byte) (cp uint32, size int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}

	b0 := b[0]
	switch {
	case b0 < 0x80:
		return uint32(b0), 1, true
	case b0&0xE0 == 0xC0:
		cp, size = uint32(b0&0x1F), 2
	case b0&0xF0 == 0xE0:
		cp, size = uint32(b0&0x0F), 3
	case b0&0xF8 == 0xF0:
		cp, size = uint32(b0&0x07), 4
	default:
		return uint32(b0), 1, false
	}

	if len(b) < size {
		return uint32(b0), 1, false
	}
	for _, c := range b[1:size] {
		if c&0xC0 != 0x80 {
			return uint32(b0), 1, false
		}
		cp = cp<<6 | uint32(c&0x3F)
	}
	return cp, size, true
}

// Decode decodes all code points in b.  Bytes which do not start a valid
// encoding are returned as individual values and reported by a false
// second return value.
func Decode(b []byte) ([]uint32, bool) {
	var res []uint32
	valid := true
	for len(b) > 0 {
		cp, size, ok := DecodeRune(b)
		if !ok {
			valid = false
		}
		res = append(res, cp)
		b = b[size:]
	}
	return res, valid
}
