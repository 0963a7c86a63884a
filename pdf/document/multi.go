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

// Package document creates multi-page PDF files.
//
// Output files are written atomically: the PDF data goes to a temporary
// file in the same directory, which is only renamed to the final name once
// the document has been closed successfully.
package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/glyphsheet/pdf/font"
)

// Options control how a document is written.
type Options struct {
	// Version is the PDF version to use.  The default is PDF 1.7.
	Version pdf.Version

	// Compress enables FlateDecode compression for all streams.
	Compress bool

	// Title, if non-empty, is stored in the document metadata.
	Title string

	// Language is the natural language of the document.
	Language language.Tag

	// Producer names the program which created the document.
	Producer string

	// CreationDate is stored in the document metadata.
	// If this is zero, the current time is used.
	CreationDate time.Time

	// OutputIntent adds an sRGB output intent to the document.
	OutputIntent bool

	// Logger receives debug messages.  If this is nil, nothing is logged.
	Logger *slog.Logger
}

// MultiPage represents a PDF document which is being written.
type MultiPage struct {
	// Out is the PDF file which is being written.
	Out *pdf.Writer

	paper   rect.Rect
	opt     Options
	filters []pdf.Filter
	logger  *slog.Logger

	pagesRef pdf.Reference
	pageRefs []pdf.Reference
	numOpen  int

	fonts []*font.Type0

	file     *os.File
	fileName string
	closed   bool
}

// Create starts a new PDF document which will be written to the file
// fileName when the document is closed.  All pages have size paper.
func Create(fileName string, paper rect.Rect, opt *Options) (*MultiPage, error) {
	if !validPaper(paper) {
		return nil, fmt.Errorf("invalid paper size %v", paper)
	}

	dir, base := filepath.Split(fileName)
	if dir == "" {
		dir = "."
	}
	fd, err := createTemp(dir, "."+base+".", ".tmp")
	if err != nil {
		return nil, err
	}

	doc, err := newMultiPage(fd, paper, opt)
	if err != nil {
		fd.Close()
		os.Remove(fd.Name())
		return nil, err
	}
	doc.file = fd
	doc.fileName = fileName
	return doc, nil
}

// Write starts a new PDF document which is written to w.
// If w has a Close method, it is called when the document is closed.
func Write(w io.Writer, paper rect.Rect, opt *Options) (*MultiPage, error) {
	if !validPaper(paper) {
		return nil, fmt.Errorf("invalid paper size %v", paper)
	}
	return newMultiPage(w, paper, opt)
}

func newMultiPage(w io.Writer, paper rect.Rect, opt *Options) (*MultiPage, error) {
	if opt == nil {
		opt = &Options{}
	}

	out, err := pdf.NewWriter(w, &pdf.WriterOptions{Version: opt.Version})
	if err != nil {
		return nil, err
	}

	var filters []pdf.Filter
	if opt.Compress {
		filters = append(filters, pdf.FilterCompress{})
	}

	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	doc := &MultiPage{
		Out:      out,
		paper:    paper,
		opt:      *opt,
		filters:  filters,
		logger:   logger,
		pagesRef: out.Alloc(),
	}
	return doc, nil
}

func validPaper(paper rect.Rect) bool {
	return paper.URx > paper.LLx && paper.URy > paper.LLy
}

// EmbedFont loads a TrueType or OpenType font from a file and embeds it into
// the document.  The font data is written when the document is closed.
func (doc *MultiPage) EmbedFont(fileName string) (*font.Type0, error) {
	if doc.closed {
		return nil, errClosed
	}
	F, err := font.Embed(doc.Out, fileName)
	if err != nil {
		return nil, err
	}
	F.Filters = doc.filters
	doc.fonts = append(doc.fonts, F)
	doc.logger.Debug("font loaded",
		"file", fileName,
		"font", F.PostScriptName())
	return F, nil
}

// AddPage starts a new page.  The page must be closed using
// [Page.Close] before the document can be closed.
func (doc *MultiPage) AddPage() *Page {
	doc.numOpen++
	return newPage(doc)
}

// NumPages returns the number of pages written so far.
func (doc *MultiPage) NumPages() int {
	return len(doc.pageRefs)
}

// Close writes the remaining data to the PDF file and closes the file.
// If the document was created using [Create], the file is moved to its
// final name.  If Close fails, the output file is left unchanged.
func (doc *MultiPage) Close() error {
	if doc.closed {
		return errClosed
	}
	if doc.numOpen != 0 {
		return fmt.Errorf("%d pages still open", doc.numOpen)
	}

	err := doc.finish()
	if err != nil {
		doc.Discard()
		return err
	}
	doc.closed = true

	if doc.file != nil {
		err = replaceFile(doc.file.Name(), doc.fileName)
		if err != nil {
			os.Remove(doc.file.Name())
			return err
		}
	}

	doc.logger.Info("document written",
		"pages", len(doc.pageRefs),
		"fonts", len(doc.fonts))
	return nil
}

func (doc *MultiPage) finish() error {
	w := doc.Out

	for _, F := range doc.fonts {
		err := F.Close()
		if err != nil {
			return err
		}
	}

	kids := make(pdf.Array, len(doc.pageRefs))
	for i, ref := range doc.pageRefs {
		kids[i] = ref
	}
	pagesDict := pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     kids,
		"Count":    pdf.Integer(len(doc.pageRefs)),
		"MediaBox": pdf.Rectangle(doc.paper),
	}
	err := w.Put(doc.pagesRef, pagesDict)
	if err != nil {
		return err
	}
	w.Catalog["Pages"] = doc.pagesRef

	if doc.opt.Language != language.Und {
		w.Catalog["Lang"] = pdf.TextString(doc.opt.Language.String())
	}

	err = doc.writeMetadata()
	if err != nil {
		return err
	}

	if doc.opt.OutputIntent {
		err = doc.writeOutputIntent()
		if err != nil {
			return err
		}
	}

	return w.Close()
}

// Discard abandons the document.  If the document was created using
// [Create], the temporary file is removed and no output file is written.
func (doc *MultiPage) Discard() error {
	if doc.closed {
		return nil
	}
	doc.closed = true
	if doc.file == nil {
		return nil
	}

	doc.file.Close()
	err := os.Remove(doc.file.Name())
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	return err
}

// createTemp creates a new file in dir, whose name starts with prefix and
// ends with suffix.  Unlike [os.CreateTemp], the file permissions are
// subject to the umask, as for [os.Create].
func createTemp(dir, prefix, suffix string) (*os.File, error) {
	for range 10000 {
		name := filepath.Join(dir, prefix+strconv.FormatUint(uint64(rand.Uint32()), 10)+suffix)
		fd, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		return fd, err
	}
	return nil, &os.PathError{Op: "createtemp", Path: filepath.Join(dir, prefix+"*"+suffix), Err: os.ErrExist}
}

// replaceFile moves tmpName to fileName.  If fileName already exists, its
// permissions are carried over to the new file.
func replaceFile(tmpName, fileName string) error {
	fi, err := os.Stat(fileName)
	if err == nil && fi.Mode().IsRegular() {
		err = os.Chmod(tmpName, fi.Mode().Perm())
		if err != nil {
			return err
		}
	}
	return os.Rename(tmpName, fileName)
}

var errClosed = errors.New("document already closed")
