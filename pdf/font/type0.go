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

// Package font embeds TrueType and OpenType fonts into PDF files.
//
// Fonts are embedded as composite (Type0) fonts.  The character codes in
// the content stream are the UTF-8 encodings of the characters shown, and
// CID values coincide with glyph indices.  The complete font program is
// embedded, without subsetting.
package font

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/glyphsheet/pdf/cmap"
	"seehuhn.de/go/glyphsheet/utf8enc"
)

// Type0 is a font which has been embedded into a PDF file.
// The font dictionary and the font program are written when
// [Type0.Close] is called.
type Type0 struct {
	w   *pdf.Writer
	ref pdf.Reference

	sfnt *sfnt.Font
	cmap sfntcmap.Subtable

	used map[string]usedCode

	// Filters are applied to all streams written for the font.
	Filters []pdf.Filter

	closed bool
}

type usedCode struct {
	cp  uint32
	gid glyph.ID
}

// Embed reads a TrueType or OpenType font from a file and prepares it for
// embedding into w.
func Embed(w *pdf.Writer, fileName string) (*Type0, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", fileName, err)
	}
	return New(w, info)
}

// New prepares the font info for embedding into w.
// The font must have a Unicode character map.
func New(w *pdf.Writer, info *sfnt.Font) (*Type0, error) {
	if info.IsCFF() {
		err := pdf.CheckVersion(w, "OpenType/CFF fonts", pdf.V1_6)
		if err != nil {
			return nil, err
		}
	} else if !info.IsGlyf() {
		return nil, errors.New("unsupported font outlines")
	}

	if info.CMapTable == nil {
		return nil, errors.New("font has no character map")
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	f := &Type0{
		w:       w,
		ref:     w.Alloc(),
		sfnt:    info,
		cmap:    subtable,
		used:    make(map[string]usedCode),
		Filters: []pdf.Filter{pdf.FilterCompress{}},
	}
	return f, nil
}

// Ref returns the reference to the font dictionary.
func (f *Type0) Ref() pdf.Reference {
	return f.ref
}

// PostScriptName returns the PostScript name of the font.
func (f *Type0) PostScriptName() string {
	return f.sfnt.PostScriptName()
}

// Encode converts UTF-8 text into character codes.  Since the character
// codes are the UTF-8 bytes of the text, the result equals s.  All codes
// are recorded, so that they are included in the font's encoding when the
// font is closed.
func (f *Type0) Encode(s string) pdf.String {
	b := []byte(s)
	for len(b) > 0 {
		cp, k, ok := utf8enc.DecodeRune(b)
		if ok {
			code := string(b[:k])
			if _, seen := f.used[code]; !seen {
				f.used[code] = usedCode{
					cp:  cp,
					gid: f.cmap.Lookup(rune(cp)),
				}
			}
		}
		b = b[k:]
	}
	return pdf.String(s)
}

// Close writes the font dictionaries, the CMaps and the font program to the
// PDF file.  Calling Close more than once has no effect.
func (f *Type0) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	fnt := f.sfnt.Clone()
	fnt.CMapTable = nil
	fnt.Gdef = nil
	fnt.Gsub = nil
	fnt.Gpos = nil

	postScriptName := fnt.PostScriptName()
	ros := cmap.Identity

	codes := make(map[string]cid.CID)
	text := make(map[string]uint32)
	ww := []widthRec{{CID: 0, W: math.Round(fnt.GlyphWidthPDF(0))}}
	hasWidth := map[glyph.ID]bool{0: true}
	isSymbolic := false
	for code, u := range f.used {
		text[code] = u.cp
		if u.cp < 0x20 || u.cp > 0x7E {
			isSymbolic = true
		}
		if u.gid == 0 {
			continue
		}
		codes[code] = cid.CID(u.gid)
		if !hasWidth[u.gid] {
			hasWidth[u.gid] = true
			ww = append(ww, widthRec{
				CID: cid.CID(u.gid),
				W:   math.Round(fnt.GlyphWidthPDF(u.gid)),
			})
		}
	}
	dw, W := encodeWidths(ww)

	qh := fnt.FontMatrix[0] * 1000
	qv := fnt.FontMatrix[3] * 1000
	fd := &Descriptor{
		FontName:     postScriptName,
		FontFamily:   fnt.FamilyName,
		FontStretch:  fnt.Width,
		FontWeight:   fnt.Weight,
		IsFixedPitch: fnt.IsFixedPitch(),
		IsSerif:      fnt.IsSerif,
		IsSymbolic:   isSymbolic,
		IsScript:     fnt.IsScript,
		IsItalic:     fnt.IsItalic,
		FontBBox:     fnt.FontBBoxPDF().Rounded(),
		ItalicAngle:  math.Round(fnt.ItalicAngle*10) / 10,
		Ascent:       math.Round(float64(fnt.Ascent) * qv),
		Descent:      math.Round(float64(fnt.Descent) * qv),
		Leading:      math.Round(float64(fnt.Ascent-fnt.Descent+fnt.LineGap) * qv),
		CapHeight:    math.Round(float64(fnt.CapHeight) * qv),
		XHeight:      math.Round(float64(fnt.XHeight) * qv),
	}

	w := f.w
	cidFontRef := w.Alloc()
	fontDescriptorRef := w.Alloc()
	fontFileRef := w.Alloc()
	encodingRef := w.Alloc()
	toUnicodeRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        pdf.Name(postScriptName),
		"Encoding":        encodingRef,
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUnicodeRef,
	}

	cidFontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"BaseFont": pdf.Name(postScriptName),
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String(ros.Registry),
			"Ordering":   pdf.String(ros.Ordering),
			"Supplement": pdf.Integer(ros.Supplement),
		},
		"FontDescriptor": fontDescriptorRef,
	}
	if dw != 1000 {
		cidFontDict["DW"] = dw
	}
	if W != nil {
		cidFontDict["W"] = W
	}

	fontDescriptor := fd.AsDict()

	var fontFileDict pdf.Dict
	if outlines, ok := fnt.Outlines.(*cff.Outlines); ok {
		// Make the CFF font CID-keyed, with CID values equal to glyph
		// indices.
		gidToCID := make([]cid.CID, fnt.NumGlyphs())
		for gid := range gidToCID {
			gidToCID[gid] = cid.CID(gid)
		}
		outlines.MakeCIDKeyed(ros, gidToCID)

		if len(outlines.Private) > 0 {
			fd.ForceBold = outlines.Private[0].ForceBold
			fd.StemV = math.Round(outlines.Private[0].StdVW * qh)
			fd.StemH = math.Round(outlines.Private[0].StdHW * qv)
			fontDescriptor = fd.AsDict()
		}

		cidFontDict["Subtype"] = pdf.Name("CIDFontType0")
		fontDescriptor["FontFile3"] = fontFileRef
		fontFileDict = pdf.Dict{"Subtype": pdf.Name("OpenType")}
	} else {
		cidFontDict["Subtype"] = pdf.Name("CIDFontType2")
		cidFontDict["CIDToGIDMap"] = pdf.Name("Identity")
		fontDescriptor["FontFile2"] = fontFileRef
		fontFileDict = pdf.Dict{}
	}

	refs := []pdf.Reference{f.ref, cidFontRef, fontDescriptorRef}
	objs := []pdf.Object{fontDict, cidFontDict, fontDescriptor}
	for i, ref := range refs {
		err := w.Put(ref, objs[i])
		if err != nil {
			return fmt.Errorf("font %q: %w", postScriptName, err)
		}
	}

	fontFileStream, err := w.OpenStream(fontFileRef, fontFileDict, f.Filters...)
	if err != nil {
		return err
	}
	if fnt.IsCFF() {
		err = fnt.WriteOpenTypeCFFPDF(fontFileStream)
	} else {
		var n int64
		n, err = fnt.WriteTrueTypePDF(fontFileStream)
		// See section 9.9 of ISO 32000-2:2020 for details.
		fontFileDict["Length1"] = pdf.Integer(n)
	}
	if err != nil {
		return fmt.Errorf("font %q: %w", postScriptName, err)
	}
	err = fontFileStream.Close()
	if err != nil {
		return err
	}

	enc := &cmap.Encoding{
		Name:      cmapName(postScriptName),
		ROS:       ros,
		CodeSpace: cmap.UTF8,
		CID:       codes,
	}
	err = enc.Embed(w, encodingRef, f.Filters...)
	if err != nil {
		return err
	}

	tu := &cmap.ToUnicode{
		CodeSpace: cmap.UTF8,
		Text:      text,
	}
	return tu.Embed(w, toUnicodeRef, f.Filters...)
}

// cmapName returns the name of the Encoding CMap for a font.
func cmapName(postScriptName string) string {
	if postScriptName == "" {
		postScriptName = "Font"
	}
	return postScriptName + "-UTF8-H"
}
