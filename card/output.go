package card

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputDir is where generated cards land unless the caller says
// otherwise.
const DefaultOutputDir = "output"

// OutputResolver places generated files inside a single output directory.
// It owns all filesystem path knowledge so the template code stays a pure
// tree mutation.
type OutputResolver struct {
	Dir string
}

// NewOutputResolver returns a resolver rooted at dir, falling back to
// DefaultOutputDir when dir is empty.
func NewOutputResolver(dir string) *OutputResolver {
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &OutputResolver{Dir: dir}
}

// Resolve normalizes path into the output directory, creating the
// directory when needed. Absolute paths and paths already inside the
// directory pass through unchanged.
func (r *OutputResolver) Resolve(path string) (string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", r.Dir, err)
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, r.Dir+string(filepath.Separator)) || strings.HasPrefix(path, r.Dir+"/") {
		return path, nil
	}
	return filepath.Join(r.Dir, path), nil
}

// EnsureExt appends ext when name does not already end with it. The
// comparison is case-insensitive, so "Card.SVG" stays as-is.
func EnsureExt(name, ext string) string {
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

// ReplaceExt swaps name's extension for ext, e.g. card.svg -> card.pdf.
func ReplaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
