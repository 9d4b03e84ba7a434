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
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestContours(t *testing.T) {
	p := MustParse("M0 0 L10 0 L10 10 Z M20 20 L30 20 M40 40 M50 50 L60 60 L50 50 Z")
	sp, err := Contours(p)
	require.NoError(t, err)
	require.Equal(t, []SubPath{
		{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, Closed: true},
		{Points: []vec.Vec2{{X: 20, Y: 20}, {X: 30, Y: 20}}},
		{Points: []vec.Vec2{{X: 40, Y: 40}}},
		{Points: []vec.Vec2{{X: 50, Y: 50}, {X: 60, Y: 60}, {X: 50, Y: 50}}, Closed: true},
	}, sp)
}

func TestContoursAfterClose(t *testing.T) {
	// drawing after Z continues from the start of the closed subpath
	sp, err := Contours(MustParse("M0 0 L10 0 L10 10 Z L0 10 L5 5 Z Z"))
	require.NoError(t, err)
	require.Len(t, sp, 2)
	require.True(t, sp[0].Closed)
	require.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 5, Y: 5}, {X: 0, Y: 0}}, sp[1].Points)
	require.True(t, sp[1].Closed)
}

func TestContoursErrors(t *testing.T) {
	_, err := Contours(MustParse("L1 1"))
	require.ErrorIs(t, err, ErrMalformedPath)

	_, err = Contours(MustParse("Z"))
	require.ErrorIs(t, err, ErrMalformedPath)

	_, err = Contours(MustParse("M0 0 Q1 1 2 0"))
	var e *MalformedPathError
	require.ErrorAs(t, err, &e)
	require.Equal(t, 1, e.Pos)
}

func TestSubPathPath(t *testing.T) {
	for _, text := range []string{
		"M0 0 L10 0 L10 10 Z",
		"M1 2 L3 4",
		"M5 5",
	} {
		p := MustParse(text)
		sp, err := Contours(p)
		require.NoError(t, err)
		require.Len(t, sp, 1)
		require.Equal(t, p, sp[0].Path())
	}
	require.Nil(t, SubPath{}.Path())
}

func TestRings(t *testing.T) {
	sp, err := Contours(MustParse("M0 0 L10 0 L10 10 Z M20 20 M30 30 L40 30 L40 40"))
	require.NoError(t, err)
	rings := Rings(sp)
	require.Equal(t, [][]vec.Vec2{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		{{X: 30, Y: 30}, {X: 40, Y: 30}, {X: 40, Y: 40}},
	}, rings)
}
