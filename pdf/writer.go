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

package pdf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
	V2_0
)

func (ver Version) String() string {
	if ver == V2_0 {
		return "2.0"
	}
	return fmt.Sprintf("1.%d", int(ver))
}

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// Version is the PDF version written to the file header.
	// The default is PDF 1.7.
	Version Version
}

// Writer represents a PDF file open for writing.
// Use [NewWriter] to create a new Writer.
type Writer struct {
	// Version is the PDF version used in the file header.
	Version Version

	// Catalog is the document catalog.  The "Type" entry is filled in
	// automatically, all other entries are the responsibility of the user.
	// The catalog is written when the Writer is closed.
	Catalog Dict

	// Info is the document information dictionary.  If Info is non-empty
	// when the Writer is closed, it is written to the file.
	Info Dict

	w       *posWriter
	xref    map[uint32]int64
	nextRef uint32
}

// NewWriter prepares a PDF file for writing.
//
// If the underlying io.Writer has a Close() method, it is closed
// by [Writer.Close].
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	ver := V1_7
	if opt != nil && opt.Version != 0 {
		ver = opt.Version
	}
	if ver < V1_4 || ver > V2_0 {
		return nil, fmt.Errorf("unsupported PDF version %d", ver)
	}

	pdf := &Writer{
		Version: ver,
		Catalog: Dict{},
		Info:    Dict{},

		w:       &posWriter{w: w, digest: xxhash.New()},
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Put writes obj to the PDF file, as the indirect object with
// reference ref.  The reference must have been obtained from [Writer.Alloc].
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	num := ref.Number()
	if num == 0 || num >= pdf.nextRef {
		return fmt.Errorf("invalid reference %s", ref)
	}
	if _, seen := pdf.xref[num]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	pdf.xref[num] = pdf.w.pos

	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", num, ref.Generation())
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = io.WriteString(pdf.w, "null")
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// Write allocates a new reference and writes obj as an indirect object.
func (pdf *Writer) Write(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Put(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Close writes the document catalog, the information dictionary, the
// cross-reference table and the trailer.  If the underlying io.Writer has a
// Close() method, it is closed, too.
func (pdf *Writer) Close() error {
	if pdf.w == nil {
		return errClosed
	}

	if pdf.Catalog["Pages"] == nil {
		return errors.New("missing /Pages in document catalog")
	}
	pdf.Catalog["Type"] = Name("Catalog")
	catalogRef, err := pdf.Write(pdf.Catalog)
	if err != nil {
		return err
	}

	trailer := Dict{
		"Root": catalogRef,
	}
	if len(pdf.Info) > 0 {
		infoRef, err := pdf.Write(pdf.Info)
		if err != nil {
			return err
		}
		trailer["Info"] = infoRef
	}

	// The file identifier is derived from everything written so far.
	id := fileID(pdf.w.digest.Sum64(), pdf.w.pos)
	trailer["ID"] = Array{id, id}

	xRefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	w := pdf.w.w
	pdf.w = nil // make sure we don't accidentally write beyond the end of file
	if closer, ok := w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// fileID returns a 16 byte file identifier.  The first half is the digest
// of the file contents, the second half mixes the digest with the file
// length.
func fileID(sum uint64, length int64) String {
	buf := binary.BigEndian.AppendUint64(nil, sum)
	mixed := xxhash.Sum64(binary.BigEndian.AppendUint64(buf, uint64(length)))
	return String(binary.BigEndian.AppendUint64(buf[:8], mixed))
}

var errClosed = errors.New("PDF writer already closed")

type posWriter struct {
	w      io.Writer
	pos    int64
	digest *xxhash.Digest
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.digest.Write(p[:n])
	w.pos += int64(n)
	return n, err
}
