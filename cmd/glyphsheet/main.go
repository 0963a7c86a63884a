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

// Glyphsheet writes a PDF file which lists all characters of a font.
//
// Usage:
//
//	glyphsheet [flags] [font]
//
// The characters in the Unicode character map of the font are shown using
// the font itself, 15 characters per line and 300 characters per page.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/glyphsheet/charset"
	"seehuhn.de/go/glyphsheet/internal/buildinfo"
	"seehuhn.de/go/glyphsheet/internal/logging"
	"seehuhn.de/go/glyphsheet/internal/profile"
	"seehuhn.de/go/glyphsheet/layout"
	"seehuhn.de/go/glyphsheet/pdf/document"
	"seehuhn.de/go/glyphsheet/sheet"
)

type cli struct {
	Font   string `arg:"" optional:"" default:"${default_font}" env:"GLYPHSHEET_FONT" help:"TrueType or OpenType font file."`
	Output string `short:"o" default:"${default_output}" env:"GLYPHSHEET_OUTPUT" help:"Name of the PDF file to write."`

	PageWords int    `default:"${page_words}" help:"Number of characters per page."`
	LineWords int    `default:"${line_words}" help:"Number of characters per line."`
	Paper     string `default:"A4" help:"Paper size (A4, A5, Letter or Legal)."`
	Parser    string `default:"${default_parser}" enum:"${parsers}" help:"Font parser (${parsers})."`
	Order     string `default:"bytes" help:"Character order: bytes, font or collate:<language>."`

	Compress   bool `default:"true" negatable:"" help:"Compress PDF streams."`
	SRGBIntent bool `name:"srgb-intent" help:"Add an sRGB output intent."`
	ExitCode   bool `help:"Exit with status 1 if the file cannot be generated."`

	LogLevel   string `default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	LogFormat  string `default:"auto" enum:"auto,text,json" help:"Log format (auto, text, json)."`
	CPUProfile string `name:"cpuprofile" type:"path" help:"Write a CPU profile to this file."`
	MemProfile string `name:"memprofile" type:"path" help:"Write a memory profile to this file."`

	Version kong.VersionFlag `help:"Print the version and exit."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts cli
	exited := false
	exitCode := 0
	parser, err := kong.New(&opts,
		kong.Name("glyphsheet"),
		kong.Description("Write a PDF table of all characters in a font."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
		kong.Vars{
			"version":        buildinfo.Short("glyphsheet"),
			"default_font":   sheet.DefaultFontFile,
			"default_output": sheet.DefaultOutputFile,
			"page_words":     fmt.Sprint(layout.DefaultPageWords),
			"line_words":     fmt.Sprint(layout.DefaultLineWords),
			"default_parser": charset.DefaultParser,
			"parsers":        strings.Join(charset.Parsers(), ","),
		})
	if err != nil {
		fmt.Fprintln(stderr, "glyphsheet:", err)
		return 2
	}
	_, err = parser.Parse(args)
	if exited {
		return exitCode
	}
	if err != nil {
		fmt.Fprintln(stderr, "glyphsheet:", err)
		return 2
	}

	cfg, err := opts.config(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "glyphsheet:", err)
		return 2
	}

	stop, err := profile.Start(opts.CPUProfile, opts.MemProfile)
	if err != nil {
		fmt.Fprintln(stderr, "glyphsheet:", err)
		return 2
	}
	defer func() {
		if err := stop(); err != nil {
			fmt.Fprintln(stderr, "glyphsheet:", err)
		}
	}()

	res, err := sheet.Generate(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "glyphsheet:", err)
		if opts.ExitCode {
			return 1
		}
		return 0
	}
	fmt.Fprintf(stdout, "%s: %d characters on %d pages\n",
		res.OutputFile, res.Characters, res.Pages)
	return 0
}

// config converts the command line options into a generator configuration.
func (opts *cli) config(logOut io.Writer) (*sheet.Config, error) {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(opts.LogFormat)
	if err != nil {
		return nil, err
	}
	paper, ok := document.Paper(opts.Paper)
	if !ok {
		return nil, fmt.Errorf("unknown paper size %q", opts.Paper)
	}
	order, err := charset.ParseOrder(opts.Order)
	if err != nil {
		return nil, err
	}

	cfg := sheet.DefaultConfig()
	cfg.FontFile = opts.Font
	cfg.OutputFile = opts.Output
	cfg.PageWords = opts.PageWords
	cfg.LineWords = opts.LineWords
	cfg.Paper = paper
	cfg.Parser = opts.Parser
	cfg.Order = order
	cfg.Compress = opts.Compress
	cfg.OutputIntent = opts.SRGBIntent
	cfg.Producer = buildinfo.Short("glyphsheet")
	cfg.Logger = logging.New(logOut, level, format)
	return cfg, cfg.Validate()
}
