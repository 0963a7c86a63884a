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

package font

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/glyphsheet/pdf"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName    string     // required
	FontFamily  string     // optional
	FontStretch os2.Width  // optional
	FontWeight  os2.Weight // optional

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag
	ForceBold    bool // flag

	FontBBox    rect.Rect // required
	ItalicAngle float64   // required
	Ascent      float64   // required
	Descent     float64   // required
	Leading     float64   // optional (default: 0)
	CapHeight   float64   // required, except if no latin chars
	XHeight     float64   // optional (default: 0)
	StemV       float64   // required (0 = unknown)
	StemH       float64   // optional (default: 0)
}

// AsDict converts the font descriptor into a PDF dictionary.
func (d *Descriptor) AsDict() pdf.Dict {
	var flags pdf.Integer
	if d.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if d.IsSerif {
		flags |= flagSerif
	}
	if d.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if d.IsScript {
		flags |= flagScript
	}
	if d.IsItalic {
		flags |= flagItalic
	}
	if d.ForceBold {
		flags |= flagForceBold
	}

	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       flags,
		"FontBBox":    pdf.Rectangle(d.FontBBox),
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"CapHeight":   pdf.Number(d.CapHeight),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.FontFamily != "" {
		dict["FontFamily"] = pdf.TextString(d.FontFamily)
	}
	if name, ok := stretchNames[d.FontStretch]; ok {
		dict["FontStretch"] = name
	}
	if d.FontWeight != 0 {
		dict["FontWeight"] = pdf.Integer(d.FontWeight.Rounded())
	}
	if d.Leading != 0 {
		dict["Leading"] = pdf.Number(d.Leading)
	}
	if d.XHeight != 0 {
		dict["XHeight"] = pdf.Number(d.XHeight)
	}
	if d.StemH != 0 {
		dict["StemH"] = pdf.Number(d.StemH)
	}

	return dict
}

var stretchNames = map[os2.Width]pdf.Name{
	os2.WidthUltraCondensed: "UltraCondensed",
	os2.WidthExtraCondensed: "ExtraCondensed",
	os2.WidthCondensed:      "Condensed",
	os2.WidthSemiCondensed:  "SemiCondensed",
	os2.WidthNormal:         "Normal",
	os2.WidthSemiExpanded:   "SemiExpanded",
	os2.WidthExpanded:       "Expanded",
	os2.WidthExtraExpanded:  "ExtraExpanded",
	os2.WidthUltraExpanded:  "UltraExpanded",
}

// Possible values for PDF Font Descriptor Flags.
const (
	flagFixedPitch  pdf.Integer = 1 << 0  // All glyphs have the same width.
	flagSerif       pdf.Integer = 1 << 1  // Glyphs have serifs.
	flagSymbolic    pdf.Integer = 1 << 2  // Font contains glyphs outside the Adobe standard Latin character set.
	flagScript      pdf.Integer = 1 << 3  // Glyphs resemble cursive handwriting.
	flagNonsymbolic pdf.Integer = 1 << 5  // Font uses the Adobe standard Latin character set or a subset of it.
	flagItalic      pdf.Integer = 1 << 6  // Glyphs have dominant vertical strokes that are slanted.
	flagForceBold   pdf.Integer = 1 << 18 // Bold glyphs are painted with extra pixels at small sizes.
)
