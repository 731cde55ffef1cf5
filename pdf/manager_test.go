package pdf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerDetection(t *testing.T) {
	m := NewManager()

	names := m.Names()
	t.Logf("available converters: %v", names)

	// the built-in rasterizer is always present, and always last
	require.NotEmpty(t, names)
	assert.Equal(t, "raster", names[len(names)-1])

	assert.Contains(t, m.Formats(), FormatPDF)
	assert.Contains(t, m.Formats(), FormatPNG)
}

func TestManagerSetPreferred(t *testing.T) {
	m := NewManager()

	assert.NoError(t, m.SetPreferred(""))
	assert.NoError(t, m.SetPreferred("raster"))

	err := m.SetPreferred("imagemagick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imagemagick")
}

func TestManagerConvert(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.SetPreferred("raster"))

	svgPath := writeTestSVG(t)
	outPath := filepath.Join(t.TempDir(), "card.pdf")

	require.NoError(t, m.Convert(context.Background(), svgPath, outPath, nil))
	requireValidPDF(t, outPath)
}

func TestManagerConvertUnsupportedFormat(t *testing.T) {
	m := NewManager()

	err := m.Convert(context.Background(), writeTestSVG(t), "out.eps", &Options{Format: "eps"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"eps"`)
}

// brokenConverter always fails, for exercising the fallback chain.
type brokenConverter struct{}

func (brokenConverter) Name() string      { return "broken" }
func (brokenConverter) Available() bool   { return true }
func (brokenConverter) Formats() []string { return []string{FormatPDF, FormatPNG} }
func (brokenConverter) Convert(context.Context, string, string, *Options) error {
	return &ConvertError{Converter: "broken", Op: "convert", Err: fmt.Errorf("boom")}
}

func TestManagerFallback(t *testing.T) {
	m := &Manager{converters: []Converter{brokenConverter{}, NewRasterConverter()}}

	svgPath := writeTestSVG(t)
	outPath := filepath.Join(t.TempDir(), "card.pdf")

	require.NoError(t, m.Convert(context.Background(), svgPath, outPath, DefaultOptions()))
	requireValidPDF(t, outPath)
}

func TestManagerAllFail(t *testing.T) {
	m := &Manager{converters: []Converter{brokenConverter{}}}

	err := m.Convert(context.Background(), "in.svg", "out.pdf", DefaultOptions())
	require.Error(t, err)

	var convErr *ConvertError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "broken", convErr.Converter)
}

func TestManagerPreferredFirst(t *testing.T) {
	m := &Manager{converters: []Converter{brokenConverter{}, NewRasterConverter()}}
	require.NoError(t, m.SetPreferred("raster"))

	svgPath := writeTestSVG(t)
	outPath := filepath.Join(t.TempDir(), "card.pdf")

	// raster goes first and succeeds, so the broken converter is never hit
	require.NoError(t, m.Convert(context.Background(), svgPath, outPath, DefaultOptions()))
	requireValidPDF(t, outPath)
}

func TestConvertError(t *testing.T) {
	inner := errors.New("boom")
	err := &ConvertError{Converter: "rsvg-convert", Op: "convert", Err: inner}

	assert.Contains(t, err.Error(), "rsvg-convert")
	assert.ErrorIs(t, err, inner)
}
