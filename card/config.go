package card

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no --config
// flag is given.
const DefaultConfigFile = "wificard.yaml"

// Config holds the defaults a user can pin in a config file instead of
// repeating flags on every invocation. Flags always win over the file.
type Config struct {
	// Template is a path to an SVG template overriding the embedded one.
	Template string `yaml:"template"`

	// OutputDir is where generated files are written.
	OutputDir string `yaml:"output_dir"`

	// Converter names the preferred SVG converter (rsvg-convert, inkscape,
	// raster).
	Converter string `yaml:"converter"`

	// PDF generates a PDF alongside the SVG by default.
	PDF bool `yaml:"pdf"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{OutputDir: DefaultOutputDir}
}

// LoadConfig reads a YAML config file. An empty path falls back to
// DefaultConfigFile, which is optional; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	return cfg, nil
}
