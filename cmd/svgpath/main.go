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

// Command svgpath processes SVG path data from the command line.
//
// The path is taken from the first argument, or read from standard input
// if no argument is given.  Depending on -mode, the path is transformed,
// flattened, or converted into a compound polygon, and the result is
// written to standard output as SVG path data.
//
// Usage:
//
//	svgpath [flags] [path]
//
// Example:
//
//	svgpath -mode polygon -matrix 2,0,0,2,0,0 "M0 0 H10 V10 H0 Z"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgpath"
)

func main() {
	configFile := flag.String("config", "", "read flattening options from this TOML file")
	policy := flag.String("policy", "", "flattening policy (angle or uniform)")
	maxAngle := flag.Float64("angle", 0, "maximal turning angle in degrees for the angle policy")
	maxSteps := flag.Int("steps", 0, "maximal number of refinement rounds for the angle policy")
	points := flag.Int("points", 0, "number of points per curve for the uniform policy")
	matrixFlag := flag.String("matrix", "", "transformation matrix `a,b,c,d,e,f`")
	mode := flag.String("mode", "polygon", "output: transform, flatten or polygon")
	verbose := flag.Bool("v", false, "log debugging information to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	svgpath.SetLogger(logger)

	opts, err := loadOptions(*configFile)
	if err != nil {
		fail(err)
	}
	if *policy != "" {
		if err := opts.Policy.UnmarshalText([]byte(*policy)); err != nil {
			fail(err)
		}
	}
	if *maxAngle != 0 {
		opts.MaxAngleDegrees = *maxAngle
	}
	if *maxSteps != 0 {
		opts.MaxSteps = *maxSteps
	}
	if *points != 0 {
		opts.UniformPointCount = *points
	}
	if err := opts.Validate(); err != nil {
		fail(err)
	}

	m := matrix.Identity
	if *matrixFlag != "" {
		m, err = parseMatrix(*matrixFlag)
		if err != nil {
			fail(err)
		}
	}

	var data string
	switch flag.NArg() {
	case 0:
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
		}
		data = string(body)
	case 1:
		data = flag.Arg(0)
	default:
		fail(errors.New("too many arguments"))
	}

	out, err := run(data, m, opts, *mode)
	if err != nil {
		fail(err)
	}
	for _, line := range out {
		fmt.Println(line)
	}
}

func run(data string, m matrix.Matrix, opts svgpath.Options, mode string) ([]string, error) {
	p, err := svgpath.Parse(data)
	if err != nil {
		return nil, err
	}
	p, err = svgpath.Transform(p, m)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "transform":
		return []string{p.String()}, nil
	case "flatten":
		flat, stats, err := svgpath.Flatten(p, opts)
		if err != nil {
			return nil, err
		}
		if stats.Unconverged > 0 {
			svgpath.Logger().Warn("flattening did not converge",
				"curves", stats.Curves, "unconverged", stats.Unconverged)
		}
		return []string{flat.String()}, nil
	case "polygon":
		cp, err := svgpath.Polygonize(p, opts)
		if err != nil {
			return nil, err
		}
		return svgpath.PathStrings(cp), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func loadOptions(fname string) (svgpath.Options, error) {
	if fname == "" {
		return svgpath.DefaultOptions(), nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return svgpath.Options{}, err
	}
	defer f.Close()
	return svgpath.LoadOptions(f)
}

// parseMatrix reads six comma-separated numbers.
func parseMatrix(s string) (matrix.Matrix, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 6 {
		return matrix.Matrix{}, fmt.Errorf("matrix %q: need 6 numbers, got %d", s, len(fields))
	}
	var m matrix.Matrix
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return matrix.Matrix{}, fmt.Errorf("matrix %q: %w", s, err)
		}
		m[i] = x
	}
	return m, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "svgpath:", err)
	os.Exit(1)
}
