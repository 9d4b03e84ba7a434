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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/svgpath/polygon"
)

// PolygonizeAll applies [Polygonize] to every path, using up to workers
// goroutines.  If workers is zero or negative, runtime.GOMAXPROCS(0) is
// used.  The results are in the same order as paths.
//
// The first error stops the remaining work and is returned together with
// the index of the offending path.
func PolygonizeAll(ctx context.Context, paths []Path, opts Options, workers int) ([]polygon.CompoundPolygon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	res := make([]polygon.CompoundPolygon, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cp, err := Polygonize(p, opts)
			if err != nil {
				return fmt.Errorf("path %d: %w", i, err)
			}
			res[i] = cp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
