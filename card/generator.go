package card

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/beevik/etree"
	"github.com/flanksource/commons/logger"
	"github.com/natefinch/atomic"

	"github.com/flanksource/wificard/svg"
)

//go:embed WIFINetworkTemplate.svg
var defaultTemplate []byte

// Generator fills the card template and writes the result as an SVG file.
type Generator struct {
	// TemplatePath overrides the embedded template when set.
	TemplatePath string

	// Output resolves where generated files are written.
	Output *OutputResolver
}

// NewGenerator returns a generator using the embedded template and the
// default output directory.
func NewGenerator() *Generator {
	return &Generator{Output: NewOutputResolver("")}
}

// Generate fills the template with the network name and password and
// writes the SVG to fileName (normalized into the output directory, .svg
// extension appended when missing). Returns the path written.
func (g *Generator) Generate(networkName, password, fileName string) (string, error) {
	doc, err := g.loadTemplate()
	if err != nil {
		return "", err
	}

	if err := UpdateField(doc, FieldNetworkName, networkName); err != nil {
		return "", err
	}
	if err := UpdateField(doc, FieldPassword, password); err != nil {
		return "", err
	}

	out, err := g.Output.Resolve(EnsureExt(fileName, ".svg"))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("serialize card: %w", err)
	}
	if err := atomic.WriteFile(out, &buf); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}

	logger.Infof("Generated SVG card: %s", out)
	return out, nil
}

func (g *Generator) loadTemplate() (*etree.Document, error) {
	if g.TemplatePath != "" {
		logger.Debugf("Loading template from %s", g.TemplatePath)
		return svg.LoadFile(g.TemplatePath)
	}
	doc, err := svg.Parse(bytes.NewReader(defaultTemplate))
	if err != nil {
		return nil, fmt.Errorf("embedded template: %w", err)
	}
	return doc, nil
}
