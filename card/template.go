// Package card fills the WiFi card template and writes the result.
package card

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/flanksource/wificard/svg"
)

// Field identifiers of the two substitution targets in the template.
const (
	FieldNetworkName = "WifiNetworkNameValue"
	FieldPassword    = "WifiNetworkPasswordValue"
)

// FieldNotFoundError reports a field identifier absent from the document.
// A card missing a field is not a valid partial result, so callers treat
// this as fatal.
type FieldNotFoundError struct {
	ID string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("text element with id %q not found", e.ID)
}

// UpdateField replaces the visible text of the element identified by
// elementID with replacement, mutating doc in place.
//
// When the element carries a styled tspan child, the tspan keeps the ink:
// its text is replaced, the parent's direct text and any character data
// trailing the tspan are cleared so the tspan's text is the only rendered
// content, and every stroke property on the tspan is dropped in favor of
// an explicit stroke:none. The template's tspans carry both a fill and a
// stroke, and vector PDF renderers draw the stroke as an extra outline
// around each glyph, fusing adjacent characters. Fill, font and opacity
// declarations are left untouched since the parent is fully transparent
// and relies on the tspan for visible ink.
//
// Without a tspan child the element's children are dropped and its direct
// text set to replacement.
//
// The operation is idempotent and performs no I/O.
func UpdateField(doc *etree.Document, elementID, replacement string) error {
	el := svg.FindByID(doc, elementID)
	if el == nil {
		return &FieldNotFoundError{ID: elementID}
	}

	// Elements with more than one tspan are outside the template contract;
	// the first one is taken and the rest left as found.
	if span := firstSpan(el); span != nil {
		span.SetText(replacement)
		span.SetTail("")
		el.SetText("")
		disableStroke(span)
		return nil
	}

	el.Child = nil
	el.SetText(replacement)
	return nil
}

func firstSpan(el *etree.Element) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == "tspan" {
			return c
		}
	}
	return nil
}

// disableStroke strips every stroke-related property from both the style
// declaration list and the presentation attributes, then pins the stroke
// to "none" wherever styling lives on the span.
func disableStroke(span *etree.Element) {
	svg.RemoveAttrFunc(span, func(a etree.Attr) bool {
		return strings.HasPrefix(a.Key, "stroke")
	})

	if attr := span.SelectAttr("style"); attr != nil {
		style := svg.ParseStyle(attr.Value)
		style.RemoveFunc(func(d svg.Declaration) bool {
			return strings.HasPrefix(d.Property, "stroke")
		})
		style.Set("stroke", "none")
		span.CreateAttr("style", style.String())
		return
	}
	span.CreateAttr("stroke", "none")
}
