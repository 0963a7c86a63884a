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
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order determines the order of the characters in a [Set].
type Order struct {
	kind orderKind
	tag  language.Tag
}

type orderKind int

const (
	byteOrder orderKind = iota
	fontOrder
	collatedOrder
)

var (
	// ByteOrder sorts characters by their UTF-8 byte sequences.
	// This coincides with code point order.
	ByteOrder = Order{kind: byteOrder}

	// FontOrder keeps the order in which the font enumerates its
	// characters.
	FontOrder = Order{kind: fontOrder}
)

// Collated returns an order which sorts characters using the collation
// rules for the given language.  Characters which collate equal are
// ordered by their byte sequences.
func Collated(tag language.Tag) Order {
	return Order{kind: collatedOrder, tag: tag}
}

// ParseOrder converts a string into an Order.  Valid values are "bytes",
// "font", and "collate:" followed by a BCP 47 language tag.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "bytes":
		return ByteOrder, nil
	case "font":
		return FontOrder, nil
	}
	if lang, ok := strings.CutPrefix(s, "collate:"); ok {
		tag, err := language.Parse(lang)
		if err != nil {
			return Order{}, fmt.Errorf("invalid collation language %q: %w", lang, err)
		}
		return Collated(tag), nil
	}
	return Order{}, fmt.Errorf("invalid character order %q", s)
}

func (o Order) String() string {
	switch o.kind {
	case byteOrder:
		return "bytes"
	case fontOrder:
		return "font"
	case collatedOrder:
		return "collate:" + o.tag.String()
	default:
		return fmt.Sprintf("Order(%d)", o.kind)
	}
}

// sort reorders chars in place.
func (o Order) sort(chars []string) {
	switch o.kind {
	case byteOrder:
		slices.Sort(chars)
	case collatedOrder:
		col := collate.New(o.tag)
		buf := &collate.Buffer{}
		type keyed struct {
			key []byte
			c   string
		}
		kk := make([]keyed, len(chars))
		for i, c := range chars {
			kk[i] = keyed{col.KeyFromString(buf, c), c}
		}
		slices.SortFunc(kk, func(a, b keyed) int {
			if r := bytes.Compare(a.key, b.key); r != 0 {
				return r
			}
			return strings.Compare(a.c, b.c)
		})
		for i := range kk {
			chars[i] = kk[i].c
		}
	}
}
