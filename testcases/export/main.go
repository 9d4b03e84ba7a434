// Command export writes the test cases, together with the results of
// processing them, to JSON and renders PNG previews of the composed
// polygons.
// Run from the svgpath module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"

	"seehuhn.de/go/svgpath"
	"seehuhn.de/go/svgpath/polygon"
	"seehuhn.de/go/svgpath/testcases"
)

func main() {
	outDir := flag.String("out", "testdata", "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	previewDir := filepath.Join(outDir, "preview")
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	opts := svgpath.DefaultOptions()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, cp, err := process(name, tc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, jtc)

			img := render(cp, tc.Width, tc.Height)
			if err := writePNG(filepath.Join(previewDir, name+".png"), img); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Input       string     `json:"input"`
	CTM         [6]float64 `json:"ctm"`
	Transformed string     `json:"transformed"`
	Flattened   string     `json:"flattened"`
	Composed    []string   `json:"composed"`
	Area        float64    `json:"area"`
	Fills       int        `json:"fills"`
	Holes       int        `json:"holes"`
	Unconverged int        `json:"unconverged,omitempty"`
}

func process(name string, tc testcases.TestCase, opts svgpath.Options) (jsonTestCase, polygon.CompoundPolygon, error) {
	var cp polygon.CompoundPolygon

	p, err := svgpath.Parse(tc.Path)
	if err != nil {
		return jsonTestCase{}, cp, err
	}
	p, err = svgpath.Transform(p, tc.Matrix())
	if err != nil {
		return jsonTestCase{}, cp, err
	}
	flat, stats, err := svgpath.Flatten(p, opts)
	if err != nil {
		return jsonTestCase{}, cp, err
	}
	cp, err = svgpath.Polygonize(p, opts)
	if err != nil {
		return jsonTestCase{}, cp, err
	}

	jtc := jsonTestCase{
		Name:        name,
		Width:       tc.Width,
		Height:      tc.Height,
		Input:       tc.Path,
		CTM:         tc.Matrix(),
		Transformed: p.String(),
		Flattened:   flat.String(),
		Composed:    svgpath.PathStrings(cp),
		Area:        cp.Area(),
		Fills:       len(cp.Fills),
		Holes:       len(cp.Holes),
		Unconverged: stats.Unconverged,
	}
	return jtc, cp, nil
}

// render fills the compound polygon with white on a black background.
func render(cp polygon.CompoundPolygon, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	for _, ring := range cp.Rings() {
		if len(ring) == 0 {
			continue
		}
		r.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, pt := range ring[1:] {
			r.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
