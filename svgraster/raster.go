// Implements a raster backend to preview extracted lines,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"math"

	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svglines"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Renderer strokes lines on a rasterx scanner.
type Renderer struct {
	width, height int
	dasher        *rasterx.Dasher
}

// NewRenderer returns a renderer drawing in a `width` x `height` pixels area,
// through `scanner`.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{width: width, height: height, dasher: rasterx.NewDasher(width, height, scanner)}
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func isFinite(v svglines.Vertex) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outCode(v, min, max svglines.Vertex) int {
	code := 0
	if v[0] < min[0] {
		code |= outLeft
	} else if v[0] > max[0] {
		code |= outRight
	}
	if v[1] < min[1] {
		code |= outTop
	} else if v[1] > max[1] {
		code |= outBottom
	}
	return code
}

// clipSegment restricts the segment [a, b] to the rectangle (Cohen-Sutherland).
// Clipped endpoints are placed exactly on the rectangle border.
// It returns false if the segment lies outside.
func clipSegment(a, b svglines.Vertex, min, max svglines.Vertex) (svglines.Vertex, svglines.Vertex, bool) {
	codeA, codeB := outCode(a, min, max), outCode(b, min, max)
	for iter := 0; iter < 4; iter++ {
		if codeA|codeB == 0 {
			return a, b, true
		}
		if codeA&codeB != 0 {
			return a, b, false
		}
		// move the outside endpoint onto one border
		p, code := &a, codeA
		if code == 0 {
			p, code = &b, codeB
		}
		other := b
		if p == &b {
			other = a
		}
		switch {
		case code&outLeft != 0:
			p[1] += (other[1] - p[1]) * ((min[0] - p[0]) / (other[0] - p[0]))
			p[0] = min[0]
		case code&outRight != 0:
			p[1] += (other[1] - p[1]) * ((max[0] - p[0]) / (other[0] - p[0]))
			p[0] = max[0]
		case code&outTop != 0:
			p[0] += (other[0] - p[0]) * ((min[1] - p[1]) / (other[1] - p[1]))
			p[1] = min[1]
		default:
			p[0] += (other[0] - p[0]) * ((max[1] - p[1]) / (other[1] - p[1]))
			p[1] = max[1]
		}
		if !isFinite(*p) {
			return a, b, false
		}
		codeA, codeB = outCode(a, min, max), outCode(b, min, max)
	}
	return a, b, codeA|codeB == 0
}

// DrawLines maps the `vb` region onto the whole drawing area
// and strokes each line of `buf` with its color.
// Lines with a non finite endpoint (in pixels) are skipped, and nothing is drawn
// for an empty viewbox.
func (rd *Renderer) DrawLines(buf svglines.Buffer, vb svglines.ViewBox, lineWidth float64) {
	if !(vb.W() > 0 && vb.H() > 0) {
		return
	}
	scaleX, scaleY := float64(rd.width)/vb.W(), float64(rd.height)/vb.H()
	toPixel := func(v svglines.Vertex) svglines.Vertex {
		return svglines.Vertex{(v[0] - vb.X()) * scaleX, (v[1] - vb.Y()) * scaleY}
	}
	// segments are clipped to the drawing area, with room for the caps,
	// so that pixel coordinates always fit in fixed.Int26_6
	margin := math.Abs(lineWidth) + 1
	clipMin := svglines.Vertex{-margin, -margin}
	clipMax := svglines.Vertex{float64(rd.width) + margin, float64(rd.height) + margin}

	for i := 0; i+1 < len(buf.Vertices); i += 2 {
		a, b := toPixel(buf.Vertices[i]), toPixel(buf.Vertices[i+1])
		if !isFinite(a) || !isFinite(b) {
			continue
		}
		a, b, ok := clipSegment(a, b, clipMin, clipMax)
		if !ok {
			continue
		}
		rgba := buf.Colors[i]
		rd.dasher.Clear()
		rd.dasher.SetStroke(fixed.Int26_6(lineWidth*64), fixed.Int26_6(4*64),
			rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
		rd.dasher.Start(toFixed(a[0], a[1]))
		rd.dasher.Line(toFixed(b[0], b[1]))
		rd.dasher.Stop(false)
		rd.dasher.SetColor(svgcolor.Color{R: rgba[0], G: rgba[1], B: rgba[2]}.NRGBA(rgba[3]))
		rd.dasher.Draw()
	}
}

// RasterLinesToImage uses a ScannerGV instance to render
// the lines into a new image, and returns it.
func RasterLinesToImage(buf svglines.Buffer, vb svglines.ViewBox, width, height int, lineWidth float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	NewRenderer(width, height, scanner).DrawLines(buf, vb, lineWidth)
	return img
}
