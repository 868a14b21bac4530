package svglines

import "math"

// Bounds returns the smallest viewbox containing every finite vertex.
// The boolean is false when there is no such vertex.
func (b Buffer) Bounds() (ViewBox, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	for _, v := range b.Vertices {
		x, y := v[0], v[1]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		seen = true
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	if !seen {
		return ViewBox{}, false
	}
	return ViewBox{minX, minY, maxX - minX, maxY - minY}, true
}
