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

package document

import (
	"bytes"
	"errors"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/glyphsheet/pdf/graphics"
)

// Page represents a page in a PDF document.
// The contents of the page can be drawn using the [graphics.Writer] methods.
type Page struct {
	*graphics.Writer

	// PageDict is the page dictionary.  Entries can be added by the user.
	// The values at the time when the page is closed will be written to the
	// PDF file.
	PageDict pdf.Dict

	content *bytes.Buffer
	doc     *MultiPage
}

func newPage(doc *MultiPage) *Page {
	content := &bytes.Buffer{}
	return &Page{
		Writer: graphics.NewWriter(content),
		PageDict: pdf.Dict{
			"Type": pdf.Name("Page"),
		},
		content: content,
		doc:     doc,
	}
}

// Size returns the page size.
func (p *Page) Size() rect.Rect {
	return p.doc.paper
}

// Close writes the page to the PDF file.
// The page contents can no longer be modified after this call.
func (p *Page) Close() error {
	if p.Writer == nil {
		return errors.New("page already closed")
	}
	if p.Writer.Err != nil {
		return p.Writer.Err
	}
	doc := p.doc
	if doc.closed {
		return errClosed
	}
	w := doc.Out

	contentRef := w.Alloc()
	stream, err := w.OpenStream(contentRef, nil, doc.filters...)
	if err != nil {
		return err
	}
	_, err = stream.Write(p.content.Bytes())
	if err != nil {
		return err
	}
	err = stream.Close()
	if err != nil {
		return err
	}

	pageRef := w.Alloc()
	p.PageDict["Parent"] = doc.pagesRef
	p.PageDict["Contents"] = contentRef
	p.PageDict["Resources"] = p.Writer.Resources.AsDict()
	err = w.Put(pageRef, p.PageDict)
	if err != nil {
		return err
	}

	// Disable the page, since it has been written out and cannot be modified
	// anymore.
	p.Writer = nil
	doc.numOpen--
	doc.pageRefs = append(doc.pageRefs, pageRef)

	doc.logger.Debug("page written",
		"page", len(doc.pageRefs),
		"content_bytes", p.content.Len())
	return nil
}
