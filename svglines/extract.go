package svglines

import (
	"fmt"

	"github.com/benoitkugler/svgbuf/svgcolor"
	"github.com/benoitkugler/svgbuf/svgdoc"
)

// ErrorMode is the strategy used by Extract when a line
// has an endpoint which is not a number.
type ErrorMode uint8

const (
	// IgnoreErrorMode keeps NaN endpoints in the output, silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode keeps NaN endpoints in the output and logs a warning.
	WarnErrorMode
	// StrictErrorMode stops on the first malformed endpoint.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<ErrorMode %d>", m)
	}
}

// GeometryError is returned in StrictErrorMode.
type GeometryError struct {
	Index int    // of the line, in document order
	Attr  string // x1, y1, x2 or y2
	Value string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry for line %d: attribute %s is %q", e.Index, e.Attr, e.Value)
}

// Config groups the values used when the document
// does not provide usable data.
type Config struct {
	ViewBox   ViewBox
	Color     svgcolor.Color
	ErrorMode ErrorMode
}

// DefaultConfig maps the document onto the [-1,1] clip space,
// with black lines.
var DefaultConfig = Config{
	ViewBox:   ViewBox{-1, -1, 2, 2},
	Color:     svgcolor.Black,
	ErrorMode: IgnoreErrorMode,
}

// Result is the data extracted from one document.
type Result struct {
	ViewBox ViewBox
	Lines   Buffer
}

// Extract resolves the viewbox and the lines of `doc`.
// An error is only returned in StrictErrorMode.
func Extract(doc *svgdoc.Document, cfg Config) (Result, error) {
	lines, err := extractLines(doc, cfg.Color, cfg.ErrorMode)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ViewBox: ResolveViewBox(doc, cfg.ViewBox),
		Lines:   lines,
	}, nil
}
