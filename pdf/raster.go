package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	marotoimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVG user units are defined at 96 per inch; 25.4 mm to the inch.
const (
	svgUnitsPerInch = 96.0
	mmPerInch       = 25.4
	pageMarginMM    = 10.0
)

// RasterConverter rasterizes the card in-process and, for PDF output,
// places the raster on a card-sized page. It needs no system tools, which
// is why it sits last in the fallback chain: text fidelity is lower than
// the vector converters since glyphs become pixels.
type RasterConverter struct{}

func NewRasterConverter() *RasterConverter {
	return &RasterConverter{}
}

func (c *RasterConverter) Name() string {
	return "raster"
}

func (c *RasterConverter) Available() bool {
	return true
}

func (c *RasterConverter) Formats() []string {
	return []string{FormatPDF, FormatPNG}
}

func (c *RasterConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	pngBytes, widthUnits, heightUnits, err := c.rasterize(svgPath, opts)
	if err != nil {
		return &ConvertError{Converter: c.Name(), Op: "rasterize", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return &ConvertError{Converter: c.Name(), Op: "convert", Err: err}
	}

	switch opts.Format {
	case FormatPNG:
		if err := os.WriteFile(outputPath, pngBytes, 0644); err != nil {
			return &ConvertError{Converter: c.Name(), Op: "write png", Err: err}
		}
		return nil
	case FormatPDF:
		if err := c.writePDF(pngBytes, widthUnits, heightUnits, outputPath); err != nil {
			return &ConvertError{Converter: c.Name(), Op: "write pdf", Err: err}
		}
		return nil
	default:
		return &ConvertError{Converter: c.Name(), Op: "convert", Err: fmt.Errorf("unsupported format: %s", opts.Format)}
	}
}

// rasterize renders the SVG to PNG bytes, returning the card's intrinsic
// size in SVG user units alongside.
func (c *RasterConverter) rasterize(svgPath string, opts *Options) ([]byte, float64, float64, error) {
	f, err := os.Open(svgPath)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	// Ignore unsupported SVG features rather than failing the fallback.
	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("parse svg: %w", err)
	}

	widthUnits, heightUnits := icon.ViewBox.W, icon.ViewBox.H
	if widthUnits <= 0 || heightUnits <= 0 {
		return nil, 0, 0, fmt.Errorf("svg has no usable viewBox")
	}

	dpi := float64(opts.DPI)
	if dpi <= 0 {
		dpi = svgUnitsPerInch
	}
	widthPx, heightPx := opts.Width, opts.Height
	if widthPx <= 0 {
		widthPx = int(widthUnits * dpi / svgUnitsPerInch)
	}
	if heightPx <= 0 {
		heightPx = int(heightUnits * dpi / svgUnitsPerInch)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	if opts.Background != "" {
		bg, err := parseColor(opts.Background)
		if err != nil {
			return nil, 0, 0, err
		}
		draw.Draw(rgba, rgba.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	icon.SetTarget(0, 0, float64(widthPx), float64(heightPx))
	scanner := rasterx.NewScannerGV(widthPx, heightPx, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(widthPx, heightPx, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, 0, 0, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), widthUnits, heightUnits, nil
}

// writePDF places the rasterized card on a page sized to the card plus a
// uniform margin.
func (c *RasterConverter) writePDF(pngBytes []byte, widthUnits, heightUnits float64, outputPath string) error {
	cardWidthMM := widthUnits * mmPerInch / svgUnitsPerInch
	cardHeightMM := heightUnits * mmPerInch / svgUnitsPerInch

	cfg := config.NewBuilder().
		WithDimensions(cardWidthMM+2*pageMarginMM, cardHeightMM+2*pageMarginMM).
		Build()

	m := maroto.New(cfg)
	m.AddRow(cardHeightMM, col.New(12).Add(
		marotoimage.NewFromBytes(pngBytes, extension.Png, props.Rect{Center: true, Percent: 100}),
	))

	doc, err := m.Generate()
	if err != nil {
		return err
	}
	return doc.Save(outputPath)
}

func parseColor(s string) (color.Color, error) {
	switch s {
	case "white":
		return color.White, nil
	case "black":
		return color.Black, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if ok && len(hex) == 3 { // #rgb -> #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("invalid background color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
