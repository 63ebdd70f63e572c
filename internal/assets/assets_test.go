package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestResolver_Path(t *testing.T) {
	r := NewResolver("/assets")

	tests := []struct {
		name, in, want string
	}{
		{"empty stays empty", "", ""},
		{"blank stays empty", "   ", ""},
		{"relative joins root", "icons/back.png", filepath.Join("/assets", "icons", "back.png")},
		{"absolute kept", "/tmp/x.png", "/tmp/x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Path(tt.in))
		})
	}
}

func TestResolver_DefaultRoot(t *testing.T) {
	r := NewResolver("")
	assert.True(t, strings.HasSuffix(r.Root(), filepath.Join("pipctl", "assets")), "root = %s", r.Root())
}

func TestDecoder_ResizesToSquare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	writePNG(t, path, 100, 50)

	img, err := NewDecoder(32).Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestDecoder_KeepsMatchingSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	writePNG(t, path, DefaultIconSize, DefaultIconSize)

	img, err := NewDecoder(0).Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultIconSize, img.Bounds().Dx())
}

func TestDecoder_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	d := NewDecoder(16)

	_, err := d.Resolve("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = d.Resolve(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = d.Resolve(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestFixed(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	f := Fixed{"a": img}

	got, err := f.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, img, got)

	_, err = f.Resolve("b")
	assert.Error(t, err)
}
