package svg

import "strings"

// Declaration is a single property:value pair from a style attribute.
type Declaration struct {
	Property string
	Value    string
}

// Style is the ordered declaration list of a style attribute. Mutation
// preserves declaration order so serialized styles stay diffable against
// the source template.
type Style []Declaration

// ParseStyle splits a style attribute value into declarations. Malformed
// entries (no colon) are dropped.
func ParseStyle(s string) Style {
	var style Style
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		style = append(style, Declaration{
			Property: strings.TrimSpace(prop),
			Value:    strings.TrimSpace(value),
		})
	}
	return style
}

// Get returns the value of the named property.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Set replaces the named property in place, appending when absent.
func (s *Style) Set(property, value string) {
	for i, d := range *s {
		if d.Property == property {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Declaration{Property: property, Value: value})
}

// Remove drops the named property, reporting whether it was present.
func (s *Style) Remove(property string) bool {
	return s.RemoveFunc(func(d Declaration) bool { return d.Property == property }) > 0
}

// RemoveFunc drops every declaration matching pred, returning the count
// removed.
func (s *Style) RemoveFunc(pred func(Declaration) bool) int {
	kept := (*s)[:0]
	removed := 0
	for _, d := range *s {
		if pred(d) {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	*s = kept
	return removed
}

func (s Style) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.Property + ":" + d.Value
	}
	return strings.Join(parts, ";")
}
