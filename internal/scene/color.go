// seehuhn.de/go/canvasfx - drawing helpers for 2D canvases
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrColor is returned for malformed colour strings.
var ErrColor = errors.New("malformed colour")

// ParseColor parses a colour of the form #rgb, #rgba, #rrggbb or
// #rrggbbaa.  The name "none" gives transparent black.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return color.NRGBA{}, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
	}

	var vals [4]uint8
	vals[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
			}
			vals[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
			}
			vals[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrColor, s)
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
