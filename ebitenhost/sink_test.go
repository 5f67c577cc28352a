package ebitenhost

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gaze"
)

// mapSource serves pre-made images by path and counts lookups.
type mapSource struct {
	images  map[string]*ebiten.Image
	lookups int
}

func (m *mapSource) Image(p string) (*ebiten.Image, error) {
	m.lookups++
	if img, ok := m.images[p]; ok {
		return img, nil
	}
	return nil, errors.New("no such asset: " + p)
}

func newMapSource(paths ...string) *mapSource {
	m := &mapSource{images: make(map[string]*ebiten.Image)}
	for _, p := range paths {
		m.images[p] = ebiten.NewImage(4, 4)
	}
	return m
}

func TestImageSink_ImmediateSwap(t *testing.T) {
	src := newMapSource("/faces/a.webp", "/faces/b.webp")
	s := NewImageSink(src, 0)

	s.Render(gaze.Frame{Path: "/faces/a.webp"})
	if s.Path() != "/faces/a.webp" || s.current != src.images["/faces/a.webp"] {
		t.Fatal("first frame should show a")
	}
	s.Render(gaze.Frame{Path: "/faces/b.webp"})
	if s.current != src.images["/faces/b.webp"] || s.previous != nil || s.Fading() {
		t.Error("swap without fade should be immediate")
	}
	if s.alpha != 1 {
		t.Errorf("alpha = %v, want 1", s.alpha)
	}
}

func TestImageSink_SamePathSkipsLookup(t *testing.T) {
	src := newMapSource("/faces/a.webp")
	s := NewImageSink(src, 0)

	s.Render(gaze.Frame{Path: "/faces/a.webp"})
	s.Render(gaze.Frame{Path: "/faces/a.webp", Debug: "x:1 y:2\na.webp"})
	if src.lookups != 1 {
		t.Errorf("lookups = %d, want 1", src.lookups)
	}
	if s.debug != "x:1 y:2\na.webp" {
		t.Errorf("debug text should still update, got %q", s.debug)
	}
}

func TestImageSink_Fade(t *testing.T) {
	src := newMapSource("/faces/a.webp", "/faces/b.webp")
	s := NewImageSink(src, 0.2)

	s.Render(gaze.Frame{Path: "/faces/a.webp"})
	if s.Fading() {
		t.Error("the first image has nothing to fade from")
	}

	s.Render(gaze.Frame{Path: "/faces/b.webp"})
	if !s.Fading() || s.previous != src.images["/faces/a.webp"] {
		t.Fatal("second image should fade in over the first")
	}
	if s.alpha != 0 {
		t.Errorf("fade should start at alpha 0, got %v", s.alpha)
	}

	s.Update(0.1)
	if !s.Fading() || s.alpha <= 0 || s.alpha >= 1 {
		t.Errorf("mid-fade alpha = %v, fading = %v", s.alpha, s.Fading())
	}

	s.Update(0.2)
	if s.Fading() || s.alpha != 1 || s.previous != nil {
		t.Errorf("after fade: alpha = %v, fading = %v", s.alpha, s.Fading())
	}
}

func TestImageSink_LoadErrorKeepsPrevious(t *testing.T) {
	src := newMapSource("/faces/a.webp")
	s := NewImageSink(src, 0)

	s.Render(gaze.Frame{Path: "/faces/a.webp"})
	s.Render(gaze.Frame{Path: "/faces/missing.webp"})
	if s.Err() == nil {
		t.Fatal("expected a load error")
	}
	if s.current != src.images["/faces/a.webp"] {
		t.Error("previous image should stay on screen")
	}

	s.Render(gaze.Frame{Path: "/faces/a.webp"})
	if s.Err() != nil {
		t.Errorf("error should clear after a good load, got %v", s.Err())
	}
}

func TestPanelBoundsTracksRect(t *testing.T) {
	reg, err := gaze.NewRegistry(gaze.RegistryConfig{})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(reg, NewLoader(fstest.MapFS{}), RunConfig{Width: 640, Height: 480})
	p, err := g.AddPanel(gaze.Descriptor{Name: "a"}, gaze.Rect{Left: 0, Top: 0, Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Panels()) != 1 || g.Panels()[0] != p {
		t.Fatal("panel not registered")
	}

	p.Rect.Left = 200 // layout shift
	reg.PointerMove(250, 50)
	if reg.Active() != p.Tracker {
		t.Error("tracker should follow the panel's current rectangle")
	}
	if w, h := g.Layout(1280, 960); w != 640 || h != 480 {
		t.Errorf("Layout = %d x %d, want configured size", w, h)
	}
}
