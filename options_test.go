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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, AngleBounded, opts.Policy)
	require.Equal(t, 5.0, opts.MaxAngleDegrees)
	require.Equal(t, 9, opts.MaxSteps)
	require.Equal(t, 10, opts.UniformPointCount)
	require.NoError(t, opts.Validate())

	// the zero value selects the defaults
	require.NoError(t, Options{}.Validate())
	require.Equal(t, opts, Options{}.withDefaults())
}

func TestOptionsValidate(t *testing.T) {
	bad := []Options{
		{Policy: Policy(7)},
		{MaxAngleDegrees: -1},
		{MaxAngleDegrees: 180},
		{MaxSteps: -2},
		{UniformPointCount: 1},
	}
	for _, opts := range bad {
		require.ErrorIs(t, opts.Validate(), ErrInvalidOptions, "%+v", opts)
	}
}

func TestPolicyText(t *testing.T) {
	for _, p := range []Policy{AngleBounded, Uniform} {
		text, err := p.MarshalText()
		require.NoError(t, err)
		var q Policy
		require.NoError(t, q.UnmarshalText(text))
		require.Equal(t, p, q)
	}

	var q Policy
	require.NoError(t, q.UnmarshalText([]byte("angle-bounded")))
	require.Equal(t, AngleBounded, q)
	require.ErrorIs(t, q.UnmarshalText([]byte("fast")), ErrInvalidOptions)

	_, err := Policy(3).MarshalText()
	require.Error(t, err)
	require.Equal(t, "Policy(3)", Policy(3).String())
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader(`
policy = "uniform"
uniform_points = 16
`))
	require.NoError(t, err)
	require.Equal(t, Options{
		Policy:            Uniform,
		MaxAngleDegrees:   5,
		MaxSteps:          9,
		UniformPointCount: 16,
	}, opts)

	opts, err = LoadOptions(strings.NewReader("max_angle = 2.5\nmax_steps = 12\n"))
	require.NoError(t, err)
	require.Equal(t, AngleBounded, opts.Policy)
	require.Equal(t, 2.5, opts.MaxAngleDegrees)
	require.Equal(t, 12, opts.MaxSteps)

	opts, err = LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsErrors(t *testing.T) {
	for _, doc := range []string{
		`max_angle = 270`,
		`policy = "fast"`,
		`tolerance = 0.1`,
		`max_steps = "many"`,
		`max_angle = `,
	} {
		_, err := LoadOptions(strings.NewReader(doc))
		require.ErrorIs(t, err, ErrInvalidOptions, doc)
	}
}
