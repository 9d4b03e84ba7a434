// seehuhn.de/go/svgpath - processing of SVG path data
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

package svgpath

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
	"seehuhn.de/go/geom/vec"
)

// Parse reads SVG path data.
//
// Only absolute commands (M, L, H, V, C, Q, A and Z, with z accepted as an
// alias for Z) are supported.  A command letter can be followed by several
// groups of operands; each group becomes a separate command, and groups
// following the first one of a MoveTo become LineTo commands.  Empty input
// gives an empty path.
func Parse(s string) (Path, error) {
	b := []byte(s)
	var res Path

	pos := skipSeparators(b, 0)
	for pos < len(b) {
		c := b[pos]
		if !isLetter(c) {
			return nil, &MalformedPathError{
				Pos: pos,
				Msg: fmt.Sprintf("expected command letter, found %q", c),
			}
		}
		cmdPos := pos
		letter := c
		if letter == 'z' {
			letter = 'Z'
		}
		n, known := arity[letter]
		if !known {
			if upper := c - 'a' + 'A'; c >= 'a' && c <= 'z' && isSVGCommand(upper) {
				return nil, &UnsupportedTransformError{Pos: pos, Command: c}
			}
			return nil, &MalformedPathError{
				Pos: pos,
				Msg: fmt.Sprintf("unsupported command %q", c),
			}
		}
		pos++

		var args []float64
		for {
			pos = skipSeparators(b, pos)
			if pos >= len(b) || isLetter(b[pos]) {
				break
			}
			x, next, err := parseNumber(b, pos)
			if err != nil {
				return nil, err
			}
			args = append(args, x)
			pos = next
		}

		if n == 0 {
			if len(args) > 0 {
				return nil, &MalformedPathError{
					Pos: cmdPos,
					Msg: fmt.Sprintf("%c takes no operands, found %d", letter, len(args)),
				}
			}
			res = append(res, Close{})
			continue
		}
		if len(args) == 0 || len(args)%n != 0 {
			return nil, &MalformedPathError{
				Pos: cmdPos,
				Msg: fmt.Sprintf("%c needs a multiple of %d operands, found %d",
					letter, n, len(args)),
			}
		}
		for i := 0; i < len(args); i += n {
			cmd := makeCommand(letter, args[i:i+n])
			if m, isMove := cmd.(MoveTo); isMove && i > 0 {
				cmd = LineTo(m)
			}
			res = append(res, cmd)
		}
	}

	return res, nil
}

// MustParse is like [Parse] but panics on error.
// It is intended for tests and for initialising tables of paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func makeCommand(letter byte, a []float64) Command {
	switch letter {
	case 'M':
		return MoveTo{P: vec.Vec2{X: a[0], Y: a[1]}}
	case 'L':
		return LineTo{P: vec.Vec2{X: a[0], Y: a[1]}}
	case 'H':
		return HLineTo{X: a[0]}
	case 'V':
		return VLineTo{Y: a[0]}
	case 'C':
		return CubeTo{
			C1: vec.Vec2{X: a[0], Y: a[1]},
			C2: vec.Vec2{X: a[2], Y: a[3]},
			P:  vec.Vec2{X: a[4], Y: a[5]},
		}
	case 'Q':
		return QuadTo{
			C: vec.Vec2{X: a[0], Y: a[1]},
			P: vec.Vec2{X: a[2], Y: a[3]},
		}
	case 'A':
		return ArcTo{
			RX:       a[0],
			RY:       a[1],
			Rotation: a[2],
			LargeArc: a[3],
			Sweep:    a[4],
			P:        vec.Vec2{X: a[5], Y: a[6]},
		}
	default:
		panic("svgpath: no command for letter " + string(letter))
	}
}

// parseNumber reads the number starting at b[pos].  It returns the value
// and the offset of the first byte after the number.
//
// The scanner only finds the extent of the token.  Its value is not
// always correctly rounded for long mantissas, so the token is converted
// again with strconv.ParseFloat.
func parseNumber(b []byte, pos int) (float64, int, error) {
	_, n := parsestrconv.ParseFloat(b[pos:])
	end := pos + n
	if n == 0 || !endsNumber(b[pos:end], b, end) {
		return 0, pos, &NumberFormatError{Pos: pos, Token: numberToken(b, pos)}
	}
	x, err := strconv.ParseFloat(string(b[pos:end]), 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, pos, &NumberFormatError{Pos: pos, Token: numberToken(b, pos)}
	}
	return x, end, nil
}

// endsNumber reports whether the number tok may end right before b[pos].
// A sign can directly start the next number, as in "10-20", and so can a
// decimal point if tok already has one, as in "0.5.5".
func endsNumber(tok, b []byte, pos int) bool {
	if pos >= len(b) {
		return true
	}
	c := b[pos]
	switch {
	case isSeparator(c), c == '+', c == '-':
		return true
	case c == '.':
		return bytes.ContainsAny(tok, ".eE")
	case c == 'e' || c == 'E':
		return false
	default:
		return isLetter(c)
	}
}

// numberToken returns the garbled token starting at b[pos], for use in
// error messages.
func numberToken(b []byte, pos int) string {
	end := pos + 1
	for end < len(b) && !isSeparator(b[end]) {
		c := b[end]
		if isLetter(c) && c != 'e' && c != 'E' {
			break
		}
		end++
	}
	return string(b[pos:end])
}

func skipSeparators(b []byte, pos int) int {
	for pos < len(b) && isSeparator(b[pos]) {
		pos++
	}
	return pos
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// isSVGCommand reports whether c is an upper-case SVG path command letter,
// including those this package does not implement.
func isSVGCommand(c byte) bool {
	switch c {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}
