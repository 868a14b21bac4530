// Command svgbuf prints the viewbox and the line buffers extracted from an SVG file,
// as JSON. It can also write a PNG preview, or run its built-in checks.
//
//	svgbuf [flags] file.svg
//	svgbuf -selftest
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svgdoc"
	"github.com/benoitkugler/svgbuf/svglines"
	"github.com/benoitkugler/svgbuf/svgraster"
	"github.com/benoitkugler/svgbuf/svgtest"
)

var errSelfTest = errors.New("self test failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	cfg       svglines.Config
	fit       bool
	pngFile   string
	size      int
	lineWidth float64
	selfTest  bool
	file      string
}

func parseArgs(args []string) (options, error) {
	var (
		opts           options
		color, viewBox string
		strict, warn   bool
	)
	fs := flag.NewFlagSet("svgbuf", flag.ContinueOnError)
	fs.StringVar(&color, "color", "#000000", "default line color, as #rrggbb")
	fs.StringVar(&viewBox, "viewbox", "-1 -1 2 2", "default viewbox, as \"min-x min-y width height\"")
	fs.BoolVar(&strict, "strict", false, "fail on lines with malformed endpoints")
	fs.BoolVar(&warn, "warn", false, "log lines with malformed endpoints")
	fs.BoolVar(&opts.fit, "fit", false, "use the bounds of the lines when the document has no valid viewbox")
	fs.StringVar(&opts.pngFile, "png", "", "write a preview image to this file")
	fs.IntVar(&opts.size, "size", 512, "width and height of the preview image, in pixels")
	fs.Float64Var(&opts.lineWidth, "width", 2, "line width of the preview, in pixels")
	fs.BoolVar(&opts.selfTest, "selftest", false, "run the built-in checks and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	c := svgcolor.ParseHex(color)
	if !c.Valid {
		return opts, fmt.Errorf("invalid -color %q", color)
	}
	vb, ok := svglines.ParseViewBox(viewBox)
	if !ok {
		return opts, fmt.Errorf("invalid -viewbox %q", viewBox)
	}
	opts.cfg = svglines.Config{ViewBox: vb, Color: c.Color, ErrorMode: svglines.IgnoreErrorMode}
	switch {
	case strict:
		opts.cfg.ErrorMode = svglines.StrictErrorMode
	case warn:
		opts.cfg.ErrorMode = svglines.WarnErrorMode
	}
	if opts.size <= 0 {
		return opts, fmt.Errorf("invalid -size %d", opts.size)
	}

	if opts.selfTest {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return opts, errors.New("expected exactly one svg file")
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.selfTest {
		report := svgtest.Run(selfTestCases())
		if err := svgtest.WriteReport(stdout, report); err != nil {
			return err
		}
		if !report.OK() {
			return errSelfTest
		}
		return nil
	}

	doc, err := svgdoc.ReadDocument(opts.file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.file, err)
	}
	res, err := svglines.Extract(doc, opts.cfg)
	if err != nil {
		return fmt.Errorf("extracting lines of %s: %w", opts.file, err)
	}
	if opts.fit {
		if _, ok := svglines.DocumentViewBox(doc); !ok {
			if bounds, ok := res.Lines.Bounds(); ok {
				res.ViewBox = bounds
			}
		}
	}

	if err := writeJSON(stdout, res); err != nil {
		return err
	}

	if opts.pngFile != "" {
		img := svgraster.RasterLinesToImage(res.Lines, res.ViewBox, opts.size, opts.size, opts.lineWidth)
		f, err := os.Create(opts.pngFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		return f.Close()
	}
	return nil
}

// number is written as null when it is not finite
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type output struct {
	ViewBox  [4]number   `json:"viewBox"`
	Vertices [][2]number `json:"vertices"`
	Colors   [][4]number `json:"colors"`
}

func writeJSON(w io.Writer, res svglines.Result) error {
	out := output{
		Vertices: make([][2]number, len(res.Lines.Vertices)),
		Colors:   make([][4]number, len(res.Lines.Colors)),
	}
	for i, v := range res.ViewBox {
		out.ViewBox[i] = number(v)
	}
	for i, v := range res.Lines.Vertices {
		out.Vertices[i] = [2]number{number(v[0]), number(v[1])}
	}
	for i, c := range res.Lines.Colors {
		out.Colors[i] = [4]number{number(c[0]), number(c[1]), number(c[2]), number(c[3])}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
