package pdf

import (
	"context"
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"
)

// Manager picks a converter and falls back down the chain when one fails.
// Detection order is rsvg-convert, inkscape, then the built-in rasterizer,
// which is always available.
type Manager struct {
	converters []Converter
	preferred  string
}

// NewManager detects the converters available on this system.
func NewManager() *Manager {
	m := &Manager{}
	for _, c := range []Converter{NewRSVGConverter(), NewInkscapeConverter(), NewRasterConverter()} {
		if c.Available() {
			m.converters = append(m.converters, c)
		}
	}
	logger.Debugf("SVG converters available: %v", m.Names())
	return m
}

// SetPreferred moves the named converter to the front of the chain.
func (m *Manager) SetPreferred(name string) error {
	if name == "" {
		return nil
	}
	if !lo.ContainsBy(m.converters, func(c Converter) bool { return c.Name() == name }) {
		return fmt.Errorf("converter %q not available (have %v)", name, m.Names())
	}
	m.preferred = name
	return nil
}

// Names lists the available converters in chain order.
func (m *Manager) Names() []string {
	return lo.Map(m.converters, func(c Converter, _ int) string { return c.Name() })
}

// Formats lists every format at least one converter supports.
func (m *Manager) Formats() []string {
	return lo.Uniq(lo.FlatMap(m.converters, func(c Converter, _ int) []string { return c.Formats() }))
}

// Convert converts svgPath to outputPath, trying the preferred converter
// first and falling back through the chain on failure.
func (m *Manager) Convert(ctx context.Context, svgPath, outputPath string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	chain := m.converters
	if m.preferred != "" {
		chain = append(
			lo.Filter(chain, func(c Converter, _ int) bool { return c.Name() == m.preferred }),
			lo.Filter(chain, func(c Converter, _ int) bool { return c.Name() != m.preferred })...,
		)
	}

	var lastErr error
	for _, c := range chain {
		if !lo.Contains(c.Formats(), opts.Format) {
			continue
		}
		if err := c.Convert(ctx, svgPath, outputPath, opts); err != nil {
			logger.Warnf("%s failed, trying next converter: %v", c.Name(), err)
			lastErr = err
			continue
		}
		if c.Name() == "raster" && opts.Format == FormatPDF {
			logger.Debugf("Used built-in rasterizer; install rsvg-convert or inkscape for vector text output")
		}
		logger.Infof("Generated %s card: %s (%s)", opts.Format, outputPath, c.Name())
		return nil
	}

	if lastErr == nil {
		return fmt.Errorf("no converter supports format %q", opts.Format)
	}
	return fmt.Errorf("all converters failed: %w", lastErr)
}
