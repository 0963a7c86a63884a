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

// Package charset collects the characters a font file provides.
//
// A [Parser] opens font files, and the resulting [Face] enumerates the
// codepoints of the font's Unicode character map.  [Collect] turns this
// enumeration into a [Set] of UTF-8 encoded characters.
package charset

import (
	"fmt"
	"slices"
	"sync"

	"seehuhn.de/go/sfnt/glyph"
)

// Parser is a font parsing backend.
type Parser interface {
	// Name returns the name the parser is registered under.
	Name() string

	// Open loads a font file and selects its Unicode character map.
	Open(fileName string) (Face, error)
}

// Face is a font file opened by a [Parser].
//
// The codepoints of the Unicode character map are enumerated using
// FirstChar and NextChar.  A zero glyph ID indicates that no further
// codepoints are available.
type Face interface {
	FirstChar() (uint32, glyph.ID)
	NextChar(code uint32) (uint32, glyph.ID)

	// Close releases all resources held by the face.
	Close() error
}

// DefaultParser is the name of the parser used when no name is given.
const DefaultParser = "sfnt"

var (
	registryMu sync.RWMutex
	registry   = map[string]Parser{}
)

// RegisterParser makes a parser available under p.Name().
// A previously registered parser with the same name is replaced.
func RegisterParser(p Parser) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name()] = p
}

// LookupParser returns the parser registered under the given name.
// The empty name selects [DefaultParser].
func LookupParser(name string) (Parser, error) {
	if name == "" {
		name = DefaultParser
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return nil, &FontInitError{
			Parser: name,
			Err:    fmt.Errorf("unknown parser (available: %v)", parserNames()),
		}
	}
	return p, nil
}

// Parsers returns the names of all registered parsers, in sorted order.
func Parsers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return parserNames()
}

func parserNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	RegisterParser(sfntParser{})
	RegisterParser(ximageParser{})
}
