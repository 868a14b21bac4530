package svgraster

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svgdoc"
	"github.com/benoitkugler/svgbuf/svglines"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderString(t *testing.T, src string, width, height int) *image.RGBA {
	t.Helper()
	doc, err := svgdoc.ParseString(src)
	if err != nil {
		t.Fatalf("can't parse svg source: %s", err)
	}
	res, err := svglines.Extract(doc, svglines.DefaultConfig)
	if err != nil {
		t.Fatalf("can't extract lines: %s", err)
	}
	return RasterLinesToImage(res.Lines, res.ViewBox, width, height, 4)
}

func TestHorizontalLine(t *testing.T) {
	img := renderString(t, `<svg viewBox="0 0 100 100">
		<line x1="0" y1="50" x2="100" y2="50" stroke="#ff0000"/>
	</svg>`, 50, 50)

	r, g, b, a := img.At(25, 25).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("expected opaque red on the line, got %d %d %d %d", r, g, b, a)
	}
	for _, p := range []image.Point{{0, 0}, {49, 0}, {0, 49}, {49, 49}, {25, 5}} {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0 {
			t.Errorf("expected transparent pixel at %v", p)
		}
	}

	// sanity check of the encoded output
	if _, err := toPngBytes(img); err != nil {
		t.Fatal(err)
	}
}

func TestViewBoxMapping(t *testing.T) {
	// the line sits in the top left quadrant of the viewbox
	img := renderString(t, `<svg viewBox="-10 -10 20 20">
		<line x1="-10" y1="-5" x2="0" y2="-5" stroke="#0000ff"/>
	</svg>`, 40, 40)

	if _, _, b, _ := img.At(10, 10).RGBA(); b != 0xffff {
		t.Errorf("expected blue pixel at (10, 10)")
	}
	if _, _, _, a := img.At(30, 10).RGBA(); a != 0 {
		t.Errorf("expected transparent pixel at (30, 10)")
	}
	if _, _, _, a := img.At(10, 30).RGBA(); a != 0 {
		t.Errorf("expected transparent pixel at (10, 30)")
	}
}

func TestSkipped(t *testing.T) {
	nan := math.NaN()
	black := svgcolor.Black.RGBA()
	buf := svglines.Buffer{
		Vertices: []svglines.Vertex{{nan, 5}, {10, 5}, {0, 5}, {math.Inf(1), 5}},
		Colors:   []svgcolor.RGBA{black, black, black, black},
	}
	for _, vb := range []svglines.ViewBox{{0, 0, 10, 10}, {0, 0, 0, 10}, {0, 0, 10, -1}} {
		img := RasterLinesToImage(buf, vb, 10, 10, 2)
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				t.Fatalf("viewbox %v: expected an empty image", vb)
			}
		}
	}
}

func TestFarCoordinates(t *testing.T) {
	img := renderString(t, `<svg viewBox="0 0 100 100">
		<line x1="-1e300" y1="50" x2="1e300" y2="50" stroke="#ff0000"/>
		<line x1="50" y1="-1e300" x2="50" y2="1e300" stroke="#0000ff"/>
		<line x1="1e300" y1="1e300" x2="2e300" y2="2e300" stroke="#00ff00"/>
	</svg>`, 50, 50)

	for _, x := range []int{1, 10, 40, 48} {
		if r, _, _, a := img.At(x, 25).RGBA(); r != 0xffff || a != 0xffff {
			t.Errorf("expected opaque red at (%d, 25)", x)
		}
	}
	for _, y := range []int{1, 10, 40, 48} {
		if _, _, b, a := img.At(25, y).RGBA(); b != 0xffff || a != 0xffff {
			t.Errorf("expected opaque blue at (25, %d)", y)
		}
	}
	if _, _, _, a := img.At(45, 45).RGBA(); a != 0 {
		t.Errorf("expected transparent pixel at (45, 45)")
	}
}

func TestClipSegment(t *testing.T) {
	min, max := svglines.Vertex{0, 0}, svglines.Vertex{10, 10}
	a, b, ok := clipSegment(svglines.Vertex{-1e300, 5}, svglines.Vertex{1e300, 5}, min, max)
	if !ok || a != (svglines.Vertex{0, 5}) || b != (svglines.Vertex{10, 5}) {
		t.Errorf("unexpected clip: %v %v %v", a, b, ok)
	}
	a, b, ok = clipSegment(svglines.Vertex{2, 3}, svglines.Vertex{4, 5}, min, max)
	if !ok || a != (svglines.Vertex{2, 3}) || b != (svglines.Vertex{4, 5}) {
		t.Errorf("inner segment should be unchanged: %v %v %v", a, b, ok)
	}
	if _, _, ok = clipSegment(svglines.Vertex{20, 0}, svglines.Vertex{30, 10}, min, max); ok {
		t.Error("segment outside should be rejected")
	}
	// the extent of the segment overflows float64
	a, b, ok = clipSegment(svglines.Vertex{-1.7e308, 5}, svglines.Vertex{1.7e308, 5}, min, max)
	if !ok || a != (svglines.Vertex{0, 5}) || b != (svglines.Vertex{10, 5}) {
		t.Errorf("unexpected clip: %v %v %v", a, b, ok)
	}
	a, b, ok = clipSegment(svglines.Vertex{5, -20}, svglines.Vertex{5, 20}, min, max)
	if !ok || a != (svglines.Vertex{5, 0}) || b != (svglines.Vertex{5, 10}) {
		t.Errorf("unexpected clip: %v %v %v", a, b, ok)
	}
}

// TestPreview renders a small document and writes it as a PNG file.
func TestPreview(t *testing.T) {
	img := renderString(t, `<svg viewBox="0 0 100 100">
		<line x1="10" y1="80" x2="90" y2="20" stroke="#FF0000"/>
		<line x1="10" y1="20" x2="90" y2="80" style="fill:none;stroke:#00aa00;stroke-width:1.165"/>
		<line x1="50" y1="5" x2="50" y2="95"/>
	</svg>`, 200, 200)
	b, err := toPngBytes(img)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "preview.png")
	if err = os.WriteFile(out, b, os.ModePerm); err != nil {
		t.Fatalf("can't save rasterized image: %s", err)
	}
}
