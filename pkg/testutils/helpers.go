package testutils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// WritePNG writes a small solid PNG to path.
func WritePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// CreateLibrary creates one directory per key under root. Names ending in
// .png get a real image, everything else a placeholder.
func CreateLibrary(t *testing.T, root string, library map[string][]string) {
	t.Helper()
	for dir, names := range library {
		full := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(full, 0755))
		for _, name := range names {
			path := filepath.Join(full, name)
			if strings.HasSuffix(name, ".png") && !strings.HasPrefix(name, ".") {
				WritePNG(t, path, 8, 8)
				continue
			}
			require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		}
	}
}
