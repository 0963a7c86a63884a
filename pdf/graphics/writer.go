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

// Package graphics writes PDF content streams.
//
// Errors are sticky: once an operator fails, the error is stored in
// [Writer.Err] and all further operators are ignored.
package graphics

import (
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/glyphsheet/pdf"
)

// Font is a font which has been embedded in a PDF file.
type Font interface {
	// Ref returns the reference to the font dictionary.
	Ref() pdf.Reference

	// Encode converts a string into a sequence of character codes.
	Encode(s string) pdf.String
}

// Resources is the resource dictionary of a content stream.
type Resources struct {
	Font pdf.Dict
}

// AsDict returns the resource dictionary as a PDF object.
func (r *Resources) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"ProcSet": pdf.Array{pdf.Name("PDF"), pdf.Name("Text")},
	}
	if len(r.Font) > 0 {
		dict["Font"] = r.Font
	}
	return dict
}

// Writer writes a PDF content stream.
type Writer struct {
	Content   io.Writer
	Resources *Resources
	Err       error

	currentObject objectType

	font     Font
	fontSize float64

	fontName map[pdf.Reference]pdf.Name
}

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		Resources:     &Resources{},
		currentObject: objPage,
		fontName:      make(map[pdf.Reference]pdf.Name),
	}
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

// fontResourceName returns the name used to refer to F from within the
// content stream.  If needed, the font is added to the resource dictionary.
func (w *Writer) fontResourceName(F Font) pdf.Name {
	ref := F.Ref()
	if name, ok := w.fontName[ref]; ok {
		return name
	}

	if w.Resources.Font == nil {
		w.Resources.Font = pdf.Dict{}
	}
	dict := w.Resources.Font

	var name pdf.Name
	for k := len(dict) + 1; ; k-- {
		name = "F" + pdf.Name(strconv.Itoa(k))
		if _, isUsed := dict[name]; !isUsed {
			break
		}
	}
	dict[name] = ref
	w.fontName[ref] = name
	return name
}

type objectType int

const (
	objPage objectType = 1 << iota
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
