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

// Package sheet generates PDF character tables for font files.
//
// [Generate] runs the complete pipeline: the characters of the font's
// Unicode character map are collected, arranged into pages and written to
// a PDF file which uses the font itself to show them.
package sheet

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"seehuhn.de/go/glyphsheet/charset"
	"seehuhn.de/go/glyphsheet/layout"
	"seehuhn.de/go/glyphsheet/pdf"
	"seehuhn.de/go/glyphsheet/pdf/document"
)

// Result summarises a successful run.
type Result struct {
	// Characters is the number of distinct characters listed.
	Characters int

	// Pages is the number of pages written.
	Pages int

	// OutputFile is the name of the file written.
	OutputFile string
}

// Generate writes the character table described by cfg.
// If cfg is nil, [DefaultConfig] is used.
//
// On failure no output file is created, and an existing output file is
// left unchanged.  Failures of the font parser are reported as
// [*FontInitError] or [*FontLoadError], failures of the document as
// [*DocumentCreateError], [*FontEmbedError] or [*DocumentWriteError].
// Unexpected panics are converted into an [*InternalError].
func Generate(cfg *Config) (res *Result, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var doc *document.MultiPage
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &InternalError{Value: r}
		}
		if err != nil && doc != nil {
			doc.Discard()
		}
	}()

	p, err := charset.LookupParser(cfg.Parser)
	if err != nil {
		return nil, err
	}
	set, err := charset.CollectLogged(p, cfg.FontFile, cfg.Order, logger)
	if err != nil {
		return nil, err
	}

	pages, err := layout.Paginate(set.Chars(), cfg.params())
	if err != nil {
		return nil, err
	}
	logger.Info("characters collected",
		"font", cfg.FontFile,
		"characters", set.Len(),
		"pages", len(pages))

	opt := &document.Options{
		Version:      pdf.V1_7,
		Compress:     cfg.Compress,
		Title:        "Characters in " + filepath.Base(cfg.FontFile),
		Producer:     cfg.Producer,
		CreationDate: cfg.now(),
		OutputIntent: cfg.OutputIntent,
		Logger:       logger,
	}
	doc, err = document.Create(cfg.OutputFile, cfg.Paper, opt)
	if err != nil {
		return nil, &DocumentCreateError{FileName: cfg.OutputFile, Err: err}
	}

	F, err := doc.EmbedFont(cfg.FontFile)
	if err != nil {
		return nil, &FontEmbedError{FileName: cfg.FontFile, Err: err}
	}

	err = layout.Render(doc, F, pages)
	if err != nil {
		return nil, &DocumentWriteError{FileName: cfg.OutputFile, Err: err}
	}

	err = doc.Close()
	if err != nil {
		return nil, &DocumentWriteError{FileName: cfg.OutputFile, Err: fmt.Errorf("save: %w", err)}
	}

	res = &Result{
		Characters: set.Len(),
		Pages:      len(pages),
		OutputFile: cfg.OutputFile,
	}
	return res, nil
}
