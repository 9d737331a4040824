// svg2font - convert SVG icons into a TrueType icon font
// Copyright (C) 2026  The svg2font Authors
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/cipherchabon/svg2font"
	"github.com/cipherchabon/svg2font/iconset"
	"github.com/cipherchabon/svg2font/manifest"
	"github.com/cipherchabon/svg2font/preview"
)

type generateOptions struct {
	input    string
	output   string
	name     string
	preview  bool
	manifest bool
	verbose  bool
	workers  int
	base     string
}

func generate(args []string, stdout io.Writer) error {
	opt := &generateOptions{}

	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.StringVar(&opt.input, "i", "./icons", "directory containing the SVG icons")
	flags.StringVar(&opt.input, "input", "./icons", "directory containing the SVG icons")
	flags.StringVar(&opt.output, "o", "./output", "output directory")
	flags.StringVar(&opt.output, "output", "./output", "output directory")
	flags.StringVar(&opt.name, "n", "Icons", "font family name")
	flags.StringVar(&opt.name, "name", "Icons", "font family name")
	flags.BoolVar(&opt.preview, "p", false, "write an HTML preview page")
	flags.BoolVar(&opt.preview, "preview", false, "write an HTML preview page")
	flags.BoolVar(&opt.manifest, "m", false, "write a JSON manifest")
	flags.BoolVar(&opt.manifest, "manifest", false, "write a JSON manifest")
	flags.BoolVar(&opt.verbose, "v", false, "show debug output")
	flags.BoolVar(&opt.verbose, "verbose", false, "show debug output")
	flags.IntVar(&opt.workers, "j", runtime.NumCPU(), "number of glyphs converted in parallel")
	flags.StringVar(&opt.base, "base", "E000", "first code point, in hexadecimal")
	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return errUsage
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	base, err := parseCodepoint(opt.base)
	if err != nil {
		return err
	}
	if opt.name == "" {
		return errors.New("empty font name")
	}

	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	svg2font.SetLogger(logger)
	defer svg2font.SetLogger(nil)

	err = os.MkdirAll(opt.output, 0o755)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Scanning %s ...\n", opt.input)
	entries, err := iconset.Load(opt.input, base, logger)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no SVG icons found in %s", opt.input)
	}
	fmt.Fprintf(stdout, "Found %d icons\n", len(entries))

	cfg := svg2font.DefaultConfig()
	cfg.Workers = opt.workers
	fontData, err := svg2font.Build(iconset.Icons(entries), opt.name, &cfg)
	if err != nil {
		return err
	}

	baseName := outputBase(opt.name)
	fontPath := filepath.Join(opt.output, baseName+".ttf")
	err = os.WriteFile(fontPath, fontData, 0o644)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%d bytes)\n", fontPath, len(fontData))

	if opt.preview {
		previewPath := filepath.Join(opt.output, baseName+"_preview.html")
		err = writeFile(previewPath, func(w io.Writer) error {
			return preview.Write(w, opt.name, fontData, entries)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", previewPath)
	}

	if opt.manifest {
		manifestPath := filepath.Join(opt.output, baseName+".json")
		err = writeFile(manifestPath, manifest.New(opt.name, entries).Write)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", manifestPath)
	}

	first := entries[0].Codepoint
	last := entries[len(entries)-1].Codepoint
	summary := fmt.Sprintf("Generated %q with %d icons (U+%04X-U+%04X)",
		opt.name, len(entries), first, last)
	fmt.Fprintln(stdout, highlight(stdout, summary))
	return nil
}

// outputBase returns the file name stem for the font family name.
func outputBase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// parseCodepoint parses a hexadecimal code point.  The prefixes "U+" and
// "0x" are accepted.
func parseCodepoint(s string) (rune, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "0x")
	x, err := strconv.ParseUint(t, 16, 32)
	if err != nil || x > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(x), nil
}

func writeFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
