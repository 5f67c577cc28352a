package ebitenhost

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/webp"
)

// Loader decodes webp assets from a file system and caches them as
// Ebitengine images. Asset paths are rooted ("/faces/x.webp"); the leading
// slash is dropped before opening the file in fsys.
type Loader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*ebiten.Image)}
}

// fsName converts an asset path into an fs.FS name.
func fsName(p string) string {
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		return "."
	}
	return name
}

// Decode reads and decodes the asset at p without caching it.
func (l *Loader) Decode(p string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("load asset %s: no file system", p)
	}
	f, err := l.fsys.Open(fsName(p))
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", p, err)
	}
	defer f.Close()

	img, err := webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", p, err)
	}
	return img, nil
}

// Image returns the cached Ebitengine image for p, decoding it on first use.
func (l *Loader) Image(p string) (*ebiten.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}
	src, err := l.Decode(p)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.cache[p] = img
	return img, nil
}

// Missing returns every path in paths that cannot be opened, joined into one
// error, or nil when all exist. Use it with gaze.Grid.Manifest to check that
// an asset set is complete before running.
func (l *Loader) Missing(paths []string) error {
	var errs []error
	for _, p := range paths {
		if _, err := fs.Stat(l.fsys, fsName(p)); err != nil {
			errs = append(errs, fmt.Errorf("asset %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Cached returns the number of decoded images held by the loader.
func (l *Loader) Cached() int {
	return len(l.cache)
}
