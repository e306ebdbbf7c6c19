// Package imageload decodes clothing images, corrects their EXIF orientation
// and scales them to the display box.
package imageload

import (
	"image"
	"os"
	"sync"

	"wardrobe/internal/errors"
	"wardrobe/internal/log"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

const defaultCacheSize = 64

// Loader returns images resized to a fixed width and height. Resized images
// are cached by path; the oldest entry is evicted first.
type Loader struct {
	width, height int

	mu       sync.Mutex
	cache    map[string]image.Image
	order    []string
	capacity int
}

func New(width, height int) *Loader {
	return NewWithCache(width, height, defaultCacheSize)
}

// NewWithCache sets the number of resized images kept. Zero disables caching.
func NewWithCache(width, height, capacity int) *Loader {
	return &Loader{
		width:    width,
		height:   height,
		cache:    make(map[string]image.Image),
		capacity: capacity,
	}
}

// Size returns the box images are scaled to.
func (l *Loader) Size() (int, int) {
	return l.width, l.height
}

// Load decodes path, applies its EXIF orientation and resizes it.
func (l *Loader) Load(path string) (image.Image, error) {
	if img, ok := l.cached(path); ok {
		return img, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("image not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("cannot access image", path, errors.FileAccessDenied, err)
	}

	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.NewFileError("failed to decode image", path, errors.ImageDecodeFailed, err)
	}

	src = applyOrientation(src, readOrientation(path))
	img := imaging.Resize(src, l.width, l.height, imaging.Lanczos)

	l.store(path, img)
	return img, nil
}

func (l *Loader) cached(path string) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.cache[path]
	return img, ok
}

func (l *Loader) store(path string, img image.Image) {
	if l.capacity <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[path]; ok {
		return
	}
	if len(l.order) >= l.capacity {
		oldest := l.order[0]
		l.order = l.order[1:]
		delete(l.cache, oldest)
	}
	l.cache[path] = img
	l.order = append(l.order, path)
}

// readOrientation returns the EXIF orientation tag, or 1 when there is none.
func readOrientation(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 1
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		log.Debugf("unreadable orientation in %s: %v", path, err)
		return 1
	}
	return v
}

// applyOrientation maps EXIF orientations 2-8 onto the matching transform.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}
