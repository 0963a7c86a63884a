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
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Info returns the filter name and the decode parameters
	// (nil if there are none).
	Info() (Name, Dict)

	// Encode returns a writer which encodes data written to it and
	// writes the result to w.  Closing the returned writer must
	// flush all data to w, but must not close w.
	Encode(w io.Writer) (io.WriteCloser, error)
}

// FilterCompress is the FlateDecode filter.
// The zero value uses the default compression level.
type FilterCompress struct {
	Level int
}

// Info implements the [Filter] interface.
func (f FilterCompress) Info() (Name, Dict) {
	return "FlateDecode", nil
}

// Encode implements the [Filter] interface.
func (f FilterCompress) Encode(w io.Writer) (io.WriteCloser, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	return zlib.NewWriterLevel(w, level)
}

// OpenStream opens a stream as the indirect object ref.  Data written to the
// returned stream is encoded using the given filters.  As in the /Filter
// array, the first filter is the first one to be applied when decoding.  The stream
// object is written to the file when the stream is closed.  Entries of dict
// can be modified until then.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	if pdf.w == nil {
		return nil, errClosed
	}
	if dict == nil {
		dict = Dict{}
	}

	s := &stream{
		pdf:  pdf,
		ref:  ref,
		dict: dict,
		buf:  &bytes.Buffer{},
	}

	var names Array
	var parms Array
	hasParms := false
	var w io.Writer = s.buf
	for _, f := range filters {
		enc, err := f.Encode(w)
		if err != nil {
			return nil, err
		}
		s.encoders = append(s.encoders, enc)
		w = enc
	}
	for _, f := range filters {
		name, p := f.Info()
		names = append(names, name)
		if p != nil {
			parms = append(parms, p)
			hasParms = true
		} else {
			parms = append(parms, nil)
		}
	}
	s.w = w

	switch len(names) {
	case 0:
		// pass
	case 1:
		dict["Filter"] = names[0]
		if hasParms {
			dict["DecodeParms"] = parms[0]
		}
	default:
		dict["Filter"] = names
		if hasParms {
			dict["DecodeParms"] = parms
		}
	}

	return s, nil
}

type stream struct {
	pdf      *Writer
	ref      Reference
	dict     Dict
	buf      *bytes.Buffer
	w        io.Writer
	encoders []io.WriteCloser // the writer for s.w comes last
}

func (s *stream) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, errStreamClosed
	}
	return s.w.Write(p)
}

// Close flushes the encoders and writes the stream object to the file.
func (s *stream) Close() error {
	if s.w == nil {
		return errStreamClosed
	}
	s.w = nil

	for i := len(s.encoders) - 1; i >= 0; i-- {
		err := s.encoders[i].Close()
		if err != nil {
			return err
		}
	}

	pdf := s.pdf
	if pdf.w == nil {
		return errClosed
	}
	num := s.ref.Number()
	if num == 0 || num >= pdf.nextRef {
		return fmt.Errorf("invalid reference %s", s.ref)
	}
	if _, seen := pdf.xref[num]; seen {
		return fmt.Errorf("object %s already written", s.ref)
	}
	pdf.xref[num] = pdf.w.pos

	s.dict["Length"] = Integer(s.buf.Len())

	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", num, s.ref.Generation())
	if err != nil {
		return err
	}
	err = s.dict.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = pdf.w.Write(s.buf.Bytes())
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendstream\nendobj\n")
	return err
}

var errStreamClosed = errors.New("stream already closed")
