// Package pdf converts generated SVG cards to printable formats.
//
// Conversion prefers external vector tools (rsvg-convert, inkscape) which
// keep the card's text as real glyphs, and falls back to a built-in
// pure-Go rasterizer so conversion always works without system
// dependencies.
package pdf

import (
	"context"
	"fmt"
)

// Output formats a converter can produce.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Converter turns an SVG file into another format.
type Converter interface {
	// Name identifies the converter in flags, config and logs.
	Name() string

	// Available reports whether the converter can run on this system.
	Available() bool

	// Formats lists the output formats this converter supports.
	Formats() []string

	// Convert writes svgPath converted to opts.Format at outputPath.
	Convert(ctx context.Context, svgPath, outputPath string, opts *Options) error
}

// Options holds conversion parameters.
type Options struct {
	// Format is one of FormatPDF or FormatPNG.
	Format string

	// Width and Height force the raster size in pixels (0 = derive from
	// the SVG viewBox).
	Width  int
	Height int

	// DPI scales raster output (0 = 96, the SVG user-unit density).
	DPI int

	// Background fills behind the card ("" keeps it transparent).
	Background string
}

// DefaultOptions returns options producing a PDF at screen density.
func DefaultOptions() *Options {
	return &Options{Format: FormatPDF, DPI: 96}
}

// ConvertError reports a failure from a specific converter.
type ConvertError struct {
	Converter string
	Op        string
	Err       error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s converter %s failed: %v", e.Converter, e.Op, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
