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
	"strconv"
)

// String returns the path in SVG path data syntax.  See [Format].
func (p Path) String() string {
	return Format(p)
}

// Format serialises a path.
//
// Every command letter is directly followed by its operands.  Operands and
// commands are separated by a single space.  Numbers use the shortest
// decimal representation which reads back to the same value, without
// exponent notation.
func Format(p Path) string {
	buf := make([]byte, 0, 16*len(p))
	for i, cmd := range p {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, cmd.Letter())
		for j, x := range cmd.Args() {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendNumber(buf, x)
		}
	}
	return string(buf)
}

func appendNumber(buf []byte, x float64) []byte {
	if x == 0 {
		// avoid "-0"
		return append(buf, '0')
	}
	return strconv.AppendFloat(buf, x, 'f', -1, 64)
}
