// Provides a minimal, read-only view of an XML (SVG) document:
// the elements are decoded once, in document order, and can then be
// queried by tag name, with attributes looked up by name.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

var errInvalidDocument = errors.New("invalid svg xml document")

// Element is one start tag of the document, with its attributes.
type Element struct {
	Name  xml.Name
	Attrs []xml.Attr
}

// Attr returns the value of the unprefixed attribute `name`.
// Prefixed attributes (such as inkscape:label) are never matched.
// The boolean is false when the attribute is absent, which
// is not the same as present and empty.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Document holds the elements of a parsed document, in document order.
// It is never modified after ReadDocumentStream returns.
type Document struct {
	elements []Element
}

// First returns the first element (in document order)
// whose local name is `tag`.
func (d *Document) First(tag string) (Element, bool) {
	for _, e := range d.elements {
		if e.Name.Local == tag {
			return e, true
		}
	}
	return Element{}, false
}

// All returns every element whose local name is `tag`, at any depth,
// in document order. The returned slice is never nil.
func (d *Document) All(tag string) []Element {
	out := []Element{}
	for _, e := range d.elements {
		if e.Name.Local == tag {
			out = append(out, e)
		}
	}
	return out
}

// ReadDocumentStream decodes the whole document from the given io.Reader.
// Encodings other than UTF-8 are supported when declared in the
// xml prolog.
func ReadDocumentStream(stream io.Reader) (*Document, error) {
	doc := &Document{}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if se, ok := t.(xml.StartElement); ok {
			doc.elements = append(doc.elements, Element{
				Name:  se.Name,
				Attrs: append([]xml.Attr(nil), se.Attr...),
			})
		}
	}
	if len(doc.elements) == 0 {
		return nil, errInvalidDocument
	}
	return doc, nil
}

// ReadDocument reads the document from the named file.
func ReadDocument(file string) (*Document, error) {
	fin, errf := os.Open(file)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadDocumentStream(fin)
}

// ParseString is a shortcut for ReadDocumentStream on an in-memory document.
func ParseString(s string) (*Document, error) {
	return ReadDocumentStream(strings.NewReader(s))
}
