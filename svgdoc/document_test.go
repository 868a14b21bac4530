package svgdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueries(t *testing.T) {
	doc, err := ParseString(`<svg viewBox="0 0 10 10">
		<line x1="1" id="a"/>
		<g><line x1="2" id="b" stroke=""/></g>
		<circle r="3"/>
	</svg>`)
	assert.NoError(t, err)

	root, ok := doc.First("svg")
	assert.True(t, ok)
	vb, ok := root.Attr("viewBox")
	assert.True(t, ok)
	assert.Equal(t, "0 0 10 10", vb)

	lines := doc.All("line")
	assert.Len(t, lines, 2)
	id0, _ := lines[0].Attr("id")
	id1, _ := lines[1].Attr("id")
	assert.Equal(t, []string{"a", "b"}, []string{id0, id1})

	// present but empty is not absent
	stroke, ok := lines[1].Attr("stroke")
	assert.True(t, ok)
	assert.Equal(t, "", stroke)
	_, ok = lines[0].Attr("stroke")
	assert.False(t, ok)

	_, ok = doc.First("rect")
	assert.False(t, ok)
	rects := doc.All("rect")
	assert.NotNil(t, rects)
	assert.Len(t, rects, 0)
}

func TestNamespacedElements(t *testing.T) {
	doc, err := ParseString(`<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:line x1="4"/></svg:svg>`)
	assert.NoError(t, err)
	lines := doc.All("line")
	assert.Len(t, lines, 1)
	x1, ok := lines[0].Attr("x1")
	assert.True(t, ok)
	assert.Equal(t, "4", x1)
}

func TestPrefixedAttributes(t *testing.T) {
	doc, err := ParseString(`<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
		<line inkscape:x1="99" x1="1" inkscape:stroke="#00ff00" stroke="#ff0000"/>
		<line inkscape:x1="99" sodipodi:y1="5"/>
	</svg>`)
	assert.NoError(t, err)
	lines := doc.All("line")
	assert.Len(t, lines, 2)

	x1, ok := lines[0].Attr("x1")
	assert.True(t, ok)
	assert.Equal(t, "1", x1)
	stroke, _ := lines[0].Attr("stroke")
	assert.Equal(t, "#ff0000", stroke)

	// only prefixed versions: absent
	_, ok = lines[1].Attr("x1")
	assert.False(t, ok)
	_, ok = lines[1].Attr("y1")
	assert.False(t, ok)
}

func TestCharset(t *testing.T) {
	// "é" encoded in latin-1
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><title id=\"caf\xe9\"/></svg>"
	doc, err := ParseString(src)
	assert.NoError(t, err)
	title, ok := doc.First("title")
	assert.True(t, ok)
	id, _ := title.Attr("id")
	assert.Equal(t, "café", id)
}

func TestInvalid(t *testing.T) {
	for _, src := range []string{
		"",
		"just text",
		"<svg><line></svg>",
	} {
		_, err := ParseString(src)
		assert.Error(t, err, src)
	}
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.svg")
	err := os.WriteFile(path, []byte(`<svg><line x1="10" y1="80" x2="90" y2="20"/></svg>`), 0o644)
	assert.NoError(t, err)

	doc, err := ReadDocument(path)
	assert.NoError(t, err)
	assert.Len(t, doc.All("line"), 1)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing.svg"))
	assert.Error(t, err)
}
