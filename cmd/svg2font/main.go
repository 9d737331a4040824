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

// Svg2font converts a directory of SVG icons into a TrueType icon font.
//
// Usage:
//
//	svg2font generate [flags]
//	svg2font check font.ttf
//
// The generate command reads all ".svg" files from the input directory,
// assigns them consecutive code points in the Unicode Private Use Area
// and writes the font, optionally together with an HTML preview page and
// a JSON manifest.  The check command reads a TrueType font and lists the
// private-use code points it maps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) {
		usage(os.Stderr)
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "svg2font:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "generate":
		return generate(args[1:], stdout)
	case "check":
		return check(args[1:], stdout)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "svg2font: unknown command %q\n", args[0])
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  svg2font generate [flags]   build an icon font from a directory of SVG files")
	fmt.Fprintln(w, "  svg2font check font.ttf     list the private-use code points of a font")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run \"svg2font generate -h\" for the list of flags.")
}

// highlight returns msg in bold green, if w is a terminal.
func highlight(w io.Writer, msg string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return msg
	}
	return "\x1b[1;32m" + msg + "\x1b[0m"
}
