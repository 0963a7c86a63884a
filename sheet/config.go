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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphsheet/charset"
	"seehuhn.de/go/glyphsheet/layout"
	"seehuhn.de/go/glyphsheet/pdf/document"
)

// Default file names.
const (
	DefaultFontFile   = "../simkai.ttf"
	DefaultOutputFile = "output.pdf"
)

// Config describes one run of the character table generator.
type Config struct {
	// FontFile is the TrueType or OpenType font to list.
	FontFile string

	// OutputFile is the name of the PDF file to write.
	OutputFile string

	// PageWords is the number of characters per page.
	PageWords int

	// LineWords is the number of characters per line.
	LineWords int

	// Left is the x coordinate where lines start.
	Left float64

	// Paper is the page size.
	Paper rect.Rect

	// Parser names the font parsing backend, see [charset.LookupParser].
	Parser string

	// Order determines the order of the characters in the table.
	Order charset.Order

	// Compress enables stream compression in the output.
	Compress bool

	// OutputIntent adds an sRGB output intent to the output.
	OutputIntent bool

	// Producer is recorded in the document metadata.
	Producer string

	// Now returns the time recorded as the creation date.
	// If this is nil, [time.Now] is used.
	Now func() time.Time

	// Logger receives progress messages.  If this is nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration which lists the characters of
// "../simkai.ttf" in "output.pdf", 300 characters per A4 page.
func DefaultConfig() *Config {
	return &Config{
		FontFile:   DefaultFontFile,
		OutputFile: DefaultOutputFile,
		PageWords:  layout.DefaultPageWords,
		LineWords:  layout.DefaultLineWords,
		Left:       layout.DefaultLeft,
		Paper:      document.A4,
		Parser:     charset.DefaultParser,
		Order:      charset.ByteOrder,
		Compress:   true,
		Producer:   "glyphsheet",
	}
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() error {
	if cfg.FontFile == "" {
		return errors.New("no font file given")
	}
	if cfg.OutputFile == "" {
		return errors.New("no output file given")
	}
	if !(cfg.Paper.URx > cfg.Paper.LLx && cfg.Paper.URy > cfg.Paper.LLy) {
		return fmt.Errorf("invalid paper size %v", cfg.Paper)
	}
	return cfg.params().Validate()
}

func (cfg *Config) params() layout.Params {
	return layout.Params{
		PageWords:  cfg.PageWords,
		LineWords:  cfg.LineWords,
		PageHeight: cfg.Paper.URy - cfg.Paper.LLy,
		Left:       cfg.Left,
	}
}

func (cfg *Config) now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}
