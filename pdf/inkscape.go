package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// InkscapeConverter shells out to Inkscape (1.x command line). Slower to
// start than librsvg but renders the widest range of SVG features.
type InkscapeConverter struct{}

func NewInkscapeConverter() *InkscapeConverter {
	return &InkscapeConverter{}
}

func (c *InkscapeConverter) Name() string {
	return "inkscape"
}

func (c *InkscapeConverter) Available() bool {
	_, err := exec.LookPath("inkscape")
	return err == nil
}

func (c *InkscapeConverter) Formats() []string {
	return []string{FormatPDF, FormatPNG}
}

func (c *InkscapeConverter) Convert(ctx context.Context, svgPath, outputPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	args := []string{svgPath, "--export-filename=" + outputPath}
	switch opts.Format {
	case FormatPDF:
		args = append(args, "--export-type=pdf")
	case FormatPNG:
		args = append(args, "--export-type=png")
		if opts.Width > 0 {
			args = append(args, "--export-width="+strconv.Itoa(opts.Width))
		}
		if opts.Height > 0 {
			args = append(args, "--export-height="+strconv.Itoa(opts.Height))
		}
		if opts.DPI > 0 {
			args = append(args, "--export-dpi="+strconv.Itoa(opts.DPI))
		}
		if opts.Background != "" {
			args = append(args, "--export-background="+opts.Background)
		}
	default:
		return &ConvertError{Converter: c.Name(), Op: "convert", Err: fmt.Errorf("unsupported format: %s", opts.Format)}
	}

	cmd := exec.CommandContext(ctx, "inkscape", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return &ConvertError{Converter: c.Name(), Op: "convert", Err: fmt.Errorf("%w: %s", err, out)}
	}
	return nil
}
