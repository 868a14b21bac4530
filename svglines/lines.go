// Extracts the viewbox and the line elements of an SVG document,
// as flat vertex and color buffers which can be directly
// uploaded to a graphics pipeline.
//
// By default, missing or malformed data never triggers an error: the caller
// supplied defaults are used instead. See ErrorMode for stricter handling.
package svglines

import (
	"log"
	"math"
	"regexp"

	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svgdoc"
)

// Vertex is one line endpoint.
type Vertex [2]float64

// Buffer stores the lines as two parallel sequences: entries 2i and 2i+1
// of Vertices and Colors are the endpoints of the i-th line.
type Buffer struct {
	Vertices []Vertex
	Colors   []svgcolor.RGBA
}

// Len returns the number of lines.
func (b Buffer) Len() int { return len(b.Vertices) / 2 }

// Float32 flattens the buffer: 2 floats per vertex and 4 per color.
func (b Buffer) Float32() (vertices, colors []float32) {
	vertices = make([]float32, 0, 2*len(b.Vertices))
	for _, v := range b.Vertices {
		vertices = append(vertices, float32(v[0]), float32(v[1]))
	}
	colors = make([]float32, 0, 4*len(b.Colors))
	for _, c := range b.Colors {
		colors = append(colors, float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3]))
	}
	return vertices, colors
}

// matches for example style="fill:none;stroke:#f40000;stroke-width:1.165"
var styleStroke = regexp.MustCompile(`stroke:(#[0-9A-Fa-f]{6})`)

// strokeColor resolves the color of a line element. A stroke attribute
// always wins, even when it is not a valid color: the style attribute is
// only inspected when there is no stroke attribute.
func strokeColor(line svgdoc.Element, def svgcolor.Color) svgcolor.Color {
	if stroke, ok := line.Attr("stroke"); ok {
		return svgcolor.ParseHex(stroke).Or(def)
	}
	if style, ok := line.Attr("style"); ok {
		if match := styleStroke.FindStringSubmatch(style); match != nil {
			return svgcolor.ParseHex(match[1]).Or(def)
		}
	}
	return def
}

var endpointAttrs = [4]string{"x1", "y1", "x2", "y2"}

// readEndpoints parses x1, y1, x2, y2. Absent or malformed values are NaN;
// the name and raw value of the first of them are also returned.
func readEndpoints(line svgdoc.Element) (coords [4]float64, badAttr, badValue string) {
	for i, name := range endpointAttrs {
		v, ok := line.Attr(name)
		if !ok {
			coords[i] = math.NaN()
		} else {
			coords[i] = parseNumber(v)
		}
		if math.IsNaN(coords[i]) && badAttr == "" {
			badAttr, badValue = name, v
			if !ok {
				badValue = "<missing>"
			}
		}
	}
	return coords, badAttr, badValue
}

// ExtractLines walks every line element of `doc`, in document order,
// and returns their endpoints and stroke colors.
// `def` is used for lines without a usable color.
// Malformed endpoints are not checked: they end up as NaN.
// With no lines, both sequences of the result are empty (but not nil).
func ExtractLines(doc *svgdoc.Document, def svgcolor.Color) Buffer {
	out, _ := extractLines(doc, def, IgnoreErrorMode)
	return out
}

func extractLines(doc *svgdoc.Document, def svgcolor.Color, mode ErrorMode) (Buffer, error) {
	lines := doc.All("line")
	out := Buffer{
		Vertices: make([]Vertex, 0, 2*len(lines)),
		Colors:   make([]svgcolor.RGBA, 0, 2*len(lines)),
	}
	for i, line := range lines {
		coords, badAttr, badValue := readEndpoints(line)
		if badAttr != "" {
			switch mode {
			case StrictErrorMode:
				return out, &GeometryError{Index: i, Attr: badAttr, Value: badValue}
			case WarnErrorMode:
				log.Printf("line %d: invalid %s attribute %q", i, badAttr, badValue)
			}
		}
		out.Vertices = append(out.Vertices, Vertex{coords[0], coords[1]}, Vertex{coords[2], coords[3]})

		// one color per vertex
		color := strokeColor(line, def).RGBA()
		out.Colors = append(out.Colors, color, color)
	}
	return out, nil
}
