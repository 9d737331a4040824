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

package svg2font

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIcons is returned by [Build] if the icon list is empty.
	ErrNoIcons = errors.New("svg2font: no icons")

	// ErrCodepointOrder indicates that the code points of the icons are
	// not strictly increasing.
	ErrCodepointOrder = errors.New("svg2font: code points not increasing")
)

// IconError reports a problem with one of the icons passed to [Build].
type IconError struct {
	Index int // position in the icon list
	Name  string
	Err   error
}

func (err *IconError) Error() string {
	return fmt.Sprintf("svg2font: icon %d (%q): %v", err.Index, err.Name, err.Err)
}

func (err *IconError) Unwrap() error {
	return err.Err
}
