// Package svg reads and mutates SVG documents. Parsing and serialization
// go through beevik/etree, which keeps attribute order, namespace
// prefixes, comments and processing instructions intact, so an edited
// template round-trips faithfully even for tool-authored files carrying
// editor metadata.
package svg

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// Parse reads an SVG document from r.
func Parse(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse svg: document has no root element")
	}
	return doc, nil
}

// LoadFile parses the SVG document at path.
func LoadFile(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FindByID returns the element whose id attribute equals id, searching
// the tree depth-first, or nil when absent.
func FindByID(doc *etree.Document, id string) *etree.Element {
	if id == "" {
		return nil
	}
	return findByID(doc.Root(), id)
}

func findByID(el *etree.Element, id string) *etree.Element {
	if el == nil {
		return nil
	}
	if el.SelectAttrValue("id", "") == id {
		return el
	}
	for _, c := range el.ChildElements() {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// RemoveAttrFunc drops every attribute of el matching pred, returning
// the count removed. Relative order of the remaining attributes is
// preserved.
func RemoveAttrFunc(el *etree.Element, pred func(etree.Attr) bool) int {
	removed := 0
	for _, a := range append([]etree.Attr(nil), el.Attr...) {
		if pred(a) {
			el.RemoveAttr(a.FullKey())
			removed++
		}
	}
	return removed
}
