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
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Policy selects how curves are approximated by line segments.
type Policy int

const (
	// AngleBounded refines curves until consecutive line segments turn by
	// less than Options.MaxAngleDegrees.
	AngleBounded Policy = iota

	// Uniform samples every curve at Options.UniformPointCount evenly
	// spaced parameter values.
	Uniform
)

func (p Policy) String() string {
	switch p {
	case AngleBounded:
		return "angle"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case AngleBounded, Uniform:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidOptions, int(p))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Both "angle" and "uniform" are accepted.
func (p *Policy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "angle", "angle-bounded":
		*p = AngleBounded
	case "uniform":
		*p = Uniform
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidOptions, text)
	}
	return nil
}

// Options controls curve flattening.
//
// Zero fields are replaced by the corresponding values from
// [DefaultOptions].
type Options struct {
	Policy            Policy  `toml:"policy"`
	MaxAngleDegrees   float64 `toml:"max_angle"`
	MaxSteps          int     `toml:"max_steps"`
	UniformPointCount int     `toml:"uniform_points"`
}

// DefaultOptions returns the default flattening options.
func DefaultOptions() Options {
	return Options{
		Policy:            AngleBounded,
		MaxAngleDegrees:   5,
		MaxSteps:          9,
		UniformPointCount: 10,
	}
}

// withDefaults returns a copy of opts where zero fields are replaced by
// the default values.
func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.MaxAngleDegrees == 0 {
		opts.MaxAngleDegrees = def.MaxAngleDegrees
	}
	if opts.MaxSteps == 0 {
		opts.MaxSteps = def.MaxSteps
	}
	if opts.UniformPointCount == 0 {
		opts.UniformPointCount = def.UniformPointCount
	}
	return opts
}

// Validate checks that the options are usable.  Zero fields are allowed,
// since they select the defaults.
func (opts Options) Validate() error {
	opts = opts.withDefaults()
	switch {
	case opts.Policy != AngleBounded && opts.Policy != Uniform:
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidOptions, int(opts.Policy))
	case !(opts.MaxAngleDegrees > 0 && opts.MaxAngleDegrees < 180):
		return fmt.Errorf("%w: max angle %g is outside (0, 180)",
			ErrInvalidOptions, opts.MaxAngleDegrees)
	case opts.MaxSteps < 1:
		return fmt.Errorf("%w: max steps %d < 1", ErrInvalidOptions, opts.MaxSteps)
	case opts.UniformPointCount < 2:
		return fmt.Errorf("%w: uniform point count %d < 2",
			ErrInvalidOptions, opts.UniformPointCount)
	}
	return nil
}

// LoadOptions reads options from a TOML document.  Keys not present in
// the document keep their default values.  Unknown keys are an error.
//
// Example:
//
//	policy = "angle"
//	max_angle = 2.5
//	max_steps = 12
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
