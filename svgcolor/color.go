// Converts the hexadecimal colors found in SVG documents
// to the normalized [0,1] components expected by graphics pipelines.
package svgcolor

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color stores red, green and blue components, normalized to [0,1].
type Color struct {
	R, G, B float64
}

// RGBA is a color as emitted in vertex buffers: R, G, B, A.
type RGBA [4]float64

// Black is the zero Color.
var Black = Color{}

// RGBA returns the color with an opaque alpha.
func (c Color) RGBA() RGBA { return RGBA{c.R, c.G, c.B, 1} }

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 0xff))
}

// Hex formats the color as #rrggbb. It is the inverse
// of ParseHex for the 16M colors it accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

// NRGBA converts to the standard library representation, with the
// given opacity.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(opacity)}
}

// Optional is the result of a parse:
// Valid is false when the input was not a color.
type Optional struct {
	Color
	Valid bool
}

// Or returns the parsed color, or `def` if it is not valid.
func (o Optional) Or(def Color) Color {
	if o.Valid {
		return o.Color
	}
	return def
}

// ParseHex reads a color such as #FBD9BD or fbd9bd : an optional '#'
// followed by exactly 6 hexadecimal digits, in any case.
// Any other input yields an invalid Optional.
func ParseHex(colorStr string) Optional {
	colorStr = strings.TrimPrefix(colorStr, "#")
	if len(colorStr) != 6 {
		return Optional{}
	}
	var rgb [3]uint8
	for i := range rgb {
		// with base 16, ParseUint refuses signs and '_' separators
		t, err := strconv.ParseUint(colorStr[2*i:2*i+2], 16, 8)
		if err != nil {
			return Optional{}
		}
		rgb[i] = uint8(t)
	}
	return Optional{
		Color: Color{
			R: float64(rgb[0]) / 0xff,
			G: float64(rgb[1]) / 0xff,
			B: float64(rgb[2]) / 0xff,
		},
		Valid: true,
	}
}
