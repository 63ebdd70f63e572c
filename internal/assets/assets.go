// Package assets resolves control icon assets and decodes them into images
// sized for the floating window.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for icons
	_ "image/png"  // PNG decoder for icons
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nfnt/resize"
)

const (
	appName         = "pipctl"
	DefaultIconSize = 48
)

// ErrEmptyPath is returned when decoding an empty asset path.
var ErrEmptyPath = errors.New("empty asset path")

// Resolver maps asset names to files under a root directory.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at dir. An empty dir selects
// $XDG_DATA_HOME/pipctl/assets.
func NewResolver(dir string) *Resolver {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, appName, "assets")
	}
	return &Resolver{root: dir}
}

// Root returns the asset directory.
func (r *Resolver) Root() string { return r.root }

// Path returns the file path of the named asset. Empty names stay empty so
// the control falls back to its built-in icon; absolute paths are kept.
func (r *Resolver) Path(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.root, filepath.FromSlash(name))
}

// Decoder loads icon images from disk and scales them to a square.
type Decoder struct {
	size uint
}

// NewDecoder creates a decoder producing size×size icons. A non-positive size
// selects DefaultIconSize.
func NewDecoder(size int) *Decoder {
	if size <= 0 {
		size = DefaultIconSize
	}
	return &Decoder{size: uint(size)}
}

// Resolve implements pip.IconResolver.
func (d *Decoder) Resolve(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon %s: %w", filepath.Base(path), err)
	}

	b := img.Bounds()
	if b.Dx() == int(d.size) && b.Dy() == int(d.size) {
		return img, nil
	}
	return resize.Resize(d.size, d.size, img, resize.Lanczos3), nil
}

// Fixed is an icon resolver that returns canned images without touching the
// filesystem. Paths missing from the map fail to resolve.
type Fixed map[string]image.Image

// Resolve implements pip.IconResolver.
func (f Fixed) Resolve(path string) (image.Image, error) {
	img, ok := f[path]
	if !ok {
		return nil, fmt.Errorf("no fixed icon for %q", path)
	}
	return img, nil
}
