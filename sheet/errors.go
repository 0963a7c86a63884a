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

package sheet

import (
	"fmt"

	"seehuhn.de/go/glyphsheet/charset"
)

// FontInitError indicates that the font parsing backend could not be set
// up.
type FontInitError = charset.FontInitError

// FontLoadError indicates that the font file could not be read or parsed.
type FontLoadError = charset.FontLoadError

// DocumentCreateError indicates that the output document could not be
// created.
type DocumentCreateError struct {
	FileName string
	Err      error
}

func (err *DocumentCreateError) Error() string {
	return fmt.Sprintf("cannot create document %q: %v", err.FileName, err.Err)
}

func (err *DocumentCreateError) Unwrap() error {
	return err.Err
}

// FontEmbedError indicates that the font could not be embedded into the
// output document.
type FontEmbedError struct {
	FileName string
	Err      error
}

func (err *FontEmbedError) Error() string {
	return fmt.Sprintf("cannot embed font %q: %v", err.FileName, err.Err)
}

func (err *FontEmbedError) Unwrap() error {
	return err.Err
}

// DocumentWriteError indicates that the pages or the final document could
// not be written.
type DocumentWriteError struct {
	FileName string
	Err      error
}

func (err *DocumentWriteError) Error() string {
	return fmt.Sprintf("cannot write document %q: %v", err.FileName, err.Err)
}

func (err *DocumentWriteError) Unwrap() error {
	return err.Err
}

// InternalError reports an unexpected failure inside one of the libraries
// used to generate the document.
type InternalError struct {
	Value any
}

func (err *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", err.Value)
}

// Unwrap returns the panic value, if it is an error.
func (err *InternalError) Unwrap() error {
	if e, ok := err.Value.(error); ok {
		return e
	}
	return nil
}
