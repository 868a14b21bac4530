package main

import (
	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svgdoc"
	"github.com/benoitkugler/svgbuf/svglines"
	"github.com/benoitkugler/svgbuf/svgtest"
)

var (
	suiteColor   = svgcolor.Black
	suiteViewBox = svglines.ViewBox{-1, -1, 2, 2}
)

// linesCase checks that ExtractLines on `src` returns
// the expected vertices and colors.
func linesCase(name, src string, vertices, colors [][]float64) svgtest.Case {
	return svgtest.Case{Name: name, Fn: func() error {
		doc, err := svgdoc.ParseString(src)
		if err != nil {
			return err
		}
		out := svglines.ExtractLines(doc, suiteColor)
		return svgtest.AssertArrayEquals(
			[]interface{}{vertices, colors},
			[]interface{}{out.Vertices, out.Colors},
		)
	}}
}

func viewBoxCase(name, src string, expected svglines.ViewBox) svgtest.Case {
	return svgtest.Case{Name: name, Fn: func() error {
		doc, err := svgdoc.ParseString(src)
		if err != nil {
			return err
		}
		return svgtest.AssertArrayEquals(expected, svglines.ResolveViewBox(doc, suiteViewBox))
	}}
}

// selfTestCases validates the extraction on small documents.
func selfTestCases() []svgtest.Case {
	red := []float64{1, 0, 0, 1}
	def := []float64{suiteColor.R, suiteColor.G, suiteColor.B, 1}
	return []svgtest.Case{
		linesCase("ExtractLines: valid line elements",
			"<svg><line x1='10' y1='80' x2='90' y2='20' stroke='#FF0000' /></svg>",
			[][]float64{{10, 80}, {90, 20}},
			[][]float64{red, red}),
		linesCase("ExtractLines: valid line elements with floats",
			"<svg><line x1='10.1' y1='80.1' x2='90.1' y2='20.1' stroke='#FF0000' /></svg>",
			[][]float64{{10.1, 80.1}, {90.1, 20.1}},
			[][]float64{red, red}),
		linesCase("ExtractLines: multiple valid line elements",
			"<svg><line x1='10' y1='80' x2='90' y2='20' stroke='#FF0000' />"+
				"<line x1='10' y1='80' x2='90' y2='20' stroke='#FF0000' /></svg>",
			[][]float64{{10, 80}, {90, 20}, {10, 80}, {90, 20}},
			[][]float64{red, red, red, red}),
		linesCase("ExtractLines: no color",
			"<svg><line x1='10' y1='80' x2='90' y2='20' /></svg>",
			[][]float64{{10, 80}, {90, 20}},
			[][]float64{def, def}),
		linesCase("ExtractLines: stroke in style",
			"<svg><line x1='10' y1='80' x2='90' y2='20' style='fill:none;stroke:#ff0000;stroke-width:1.165' /></svg>",
			[][]float64{{10, 80}, {90, 20}},
			[][]float64{red, red}),
		linesCase("ExtractLines: stroke attribute wins over style",
			"<svg><line x1='10' y1='80' x2='90' y2='20' stroke='#FF0000' style='stroke:#00ff00' /></svg>",
			[][]float64{{10, 80}, {90, 20}},
			[][]float64{red, red}),
		linesCase("ExtractLines: no line elements",
			"<svg></svg>",
			[][]float64{},
			[][]float64{}),

		viewBoxCase("ResolveViewBox: viewbox attribute exists and is correct",
			"<svg viewBox='0 0 100 100' xmlns='http://www.w3.org/2000/svg'></svg>",
			svglines.ViewBox{0, 0, 100, 100}),
		viewBoxCase("ResolveViewBox: viewbox attribute exists has floats",
			"<svg viewBox='0 0 100.1 100.1' xmlns='http://www.w3.org/2000/svg'></svg>",
			svglines.ViewBox{0, 0, 100.1, 100.1}),
		viewBoxCase("ResolveViewBox: viewbox attribute exists but is missing values",
			"<svg viewBox='0 0 100' xmlns='http://www.w3.org/2000/svg'></svg>",
			suiteViewBox),
		viewBoxCase("ResolveViewBox: viewbox attribute exists but has too many values",
			"<svg viewBox='0 0 100 100 100' xmlns='http://www.w3.org/2000/svg'></svg>",
			suiteViewBox),
		viewBoxCase("ResolveViewBox: viewbox attribute has NaNs",
			"<svg viewBox='0 0 100 abcd' xmlns='http://www.w3.org/2000/svg'></svg>",
			suiteViewBox),
		viewBoxCase("ResolveViewBox: viewbox attribute does not exist",
			"<svg xmlns='http://www.w3.org/2000/svg'></svg>",
			suiteViewBox),

		{Name: "ParseHex: round trip", Fn: func() error {
			c := svgcolor.ParseHex("#Fbd9BD")
			if err := svgtest.AssertTrue(c.Valid); err != nil {
				return err
			}
			return svgtest.AssertEquals("#fbd9bd", c.Hex())
		}},
		{Name: "ParseHex: invalid input", Fn: func() error {
			return svgtest.AssertFalse(svgcolor.ParseHex("#FFF").Valid)
		}},
	}
}
