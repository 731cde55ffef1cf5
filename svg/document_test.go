package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50" viewBox="0 0 100 50">
  <rect id="Background" x="0" y="0" width="100" height="50" style="fill:#ffffff"/>
  <text id="Title" x="10" y="20" style="font-size:12px"><tspan id="TitleSpan" style="fill:#000000">Hello</tspan></text>
</svg>
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)
	require.NotNil(t, doc.Root())

	assert.Equal(t, "svg", doc.Root().Tag)
	children := doc.Root().ChildElements()
	require.Len(t, children, 2)

	rect := children[0]
	assert.Equal(t, "rect", rect.Tag)
	assert.Equal(t, "fill:#ffffff", rect.SelectAttrValue("style", ""))

	text := children[1]
	spans := text.ChildElements()
	require.Len(t, spans, 1)
	assert.Equal(t, "Hello", spans[0].Text())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("<svg><unclosed></svg>"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleSVG, buf.String())
}

// Inkscape and friends embed comments, a DOCTYPE and sodipodi processing
// instructions in the files they save; editing a field must not strip them.
func TestRoundTripEditorMetadata(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Created with Inkscape (http://www.inkscape.org/) -->
<?sodipodi version="0.32"?>
<svg xmlns="http://www.w3.org/2000/svg">
  <!-- card background -->
  <rect id="Background" width="100" height="50"/>
</svg>
`
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE svg PUBLIC")
	assert.Contains(t, out, "<!-- Created with Inkscape (http://www.inkscape.org/) -->")
	assert.Contains(t, out, "<?sodipodi version=\"0.32\"?>")
	assert.Contains(t, out, "<!-- card background -->")
}

func TestRoundTripStable(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)
	FindByID(doc, "TitleSpan").SetText("a < b & \"c\"")

	var first bytes.Buffer
	_, err = doc.WriteTo(&first)
	require.NoError(t, err)
	assert.Contains(t, first.String(), "a &lt; b &amp;")

	reparsed, err := Parse(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "a < b & \"c\"", FindByID(reparsed, "TitleSpan").Text())

	var second bytes.Buffer
	_, err = reparsed.WriteTo(&second)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestNamespacePrefixes(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#icon"/></svg>
`
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	use := doc.Root().ChildElements()[0]
	assert.Equal(t, "#icon", use.SelectAttrValue("xlink:href", ""))

	var buf bytes.Buffer
	_, err = doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, src, buf.String())
}

func TestFindByID(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleSVG))
	require.NoError(t, err)

	assert.NotNil(t, FindByID(doc, "Background"))
	assert.NotNil(t, FindByID(doc, "TitleSpan"))
	assert.Nil(t, FindByID(doc, "Missing"))
	assert.Nil(t, FindByID(doc, ""))

	span := FindByID(doc, "TitleSpan")
	assert.Equal(t, "tspan", span.Tag)
}

func TestRemoveAttrFunc(t *testing.T) {
	el := etree.NewElement("tspan")
	el.CreateAttr("id", "x")
	el.CreateAttr("stroke", "#040404")
	el.CreateAttr("stroke-width", "1")
	el.CreateAttr("fill", "#000000")

	removed := RemoveAttrFunc(el, func(a etree.Attr) bool { return strings.HasPrefix(a.Key, "stroke") })
	assert.Equal(t, 2, removed)
	assert.Nil(t, el.SelectAttr("stroke"))
	assert.Nil(t, el.SelectAttr("stroke-width"))

	// order of survivors is preserved
	require.Len(t, el.Attr, 2)
	assert.Equal(t, "id", el.Attr[0].Key)
	assert.Equal(t, "fill", el.Attr[1].Key)

	assert.Zero(t, RemoveAttrFunc(el, func(a etree.Attr) bool { return a.Key == "missing" }))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does-not-exist.svg")
	assert.Error(t, err)
}
