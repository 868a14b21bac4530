package svglines

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgbuf/svgdoc"
)

// ViewBox is the visible region declared by an SVG document:
// min-x, min-y, width, height.
type ViewBox [4]float64

// X returns min-x.
func (vb ViewBox) X() float64 { return vb[0] }

// Y returns min-y.
func (vb ViewBox) Y() float64 { return vb[1] }

// W returns the width.
func (vb ViewBox) W() float64 { return vb[2] }

// H returns the height.
func (vb ViewBox) H() float64 { return vb[3] }

// ParseViewBox reads a viewBox attribute value: exactly four numbers
// separated by single spaces. The boolean is false
// for any other input, in which case the returned value must be ignored.
func ParseViewBox(v string) (ViewBox, bool) {
	var vb ViewBox
	dims := strings.Split(v, " ")
	if len(dims) != len(vb) {
		return vb, false
	}
	for i, dim := range dims {
		vb[i] = parseNumber(dim)
		if math.IsNaN(vb[i]) {
			return vb, false
		}
	}
	return vb, true
}

// DocumentViewBox returns the viewBox of the first `svg` element of `doc`.
// The boolean is false if there is no such element, or if its
// viewBox attribute is missing or malformed.
func DocumentViewBox(doc *svgdoc.Document) (ViewBox, bool) {
	root, ok := doc.First("svg")
	if !ok {
		return ViewBox{}, false
	}
	v, ok := root.Attr("viewBox")
	if !ok {
		return ViewBox{}, false
	}
	return ParseViewBox(v)
}

// ResolveViewBox returns the viewBox of the first `svg` element of `doc`,
// or `def` when it is missing or malformed. The result is never
// a mix of the two.
func ResolveViewBox(doc *svgdoc.Document, def ViewBox) ViewBox {
	if vb, ok := DocumentViewBox(doc); ok {
		return vb
	}
	return def
}
