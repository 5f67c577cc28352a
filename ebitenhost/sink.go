package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/gaze"
)

// placeholderColor fills a panel whose asset could not be loaded.
var placeholderColor = color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff}

// ImageSource resolves asset paths to images. *Loader implements it.
type ImageSource interface {
	Image(path string) (*ebiten.Image, error)
}

// ImageSink is a gaze.Sink that shows the current asset. When FadeSeconds is
// positive, a new asset fades in over the previous one; otherwise swaps are
// immediate.
type ImageSink struct {
	FadeSeconds float32

	src ImageSource

	path     string
	current  *ebiten.Image
	previous *ebiten.Image
	debug    string
	err      error

	fade  *gween.Tween
	alpha float32
}

// NewImageSink creates a sink loading images from src.
func NewImageSink(src ImageSource, fadeSeconds float32) *ImageSink {
	return &ImageSink{src: src, FadeSeconds: fadeSeconds, alpha: 1}
}

// Render implements gaze.Sink. Loading errors keep the previous image on
// screen and are reported by Err and in the debug overlay.
func (s *ImageSink) Render(f gaze.Frame) {
	s.debug = f.Debug
	if f.Path == s.path {
		return
	}
	s.path = f.Path

	img, err := s.src.Image(f.Path)
	if err != nil {
		s.err = err
		return
	}
	s.err = nil

	if s.FadeSeconds > 0 && s.current != nil {
		s.previous = s.current
		s.fade = gween.New(0, 1, s.FadeSeconds, ease.OutQuad)
		s.alpha = 0
	} else {
		s.previous = nil
		s.fade = nil
		s.alpha = 1
	}
	s.current = img
}

// Update advances the cross-fade by dt seconds.
func (s *ImageSink) Update(dt float32) {
	if s.fade == nil {
		return
	}
	v, done := s.fade.Update(dt)
	s.alpha = v
	if done {
		s.alpha = 1
		s.fade = nil
		s.previous = nil
	}
}

// Path returns the asset path most recently rendered.
func (s *ImageSink) Path() string { return s.path }

// Err returns the error from the most recent load, or nil.
func (s *ImageSink) Err() error { return s.err }

// Fading reports whether a cross-fade is in progress.
func (s *ImageSink) Fading() bool { return s.fade != nil }

// Draw paints the sink's image stretched to r, plus the debug overlay.
func (s *ImageSink) Draw(dst *ebiten.Image, r gaze.Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	if s.current == nil {
		area := image.Rect(int(r.Left), int(r.Top), int(r.Right()), int(r.Bottom()))
		dst.SubImage(area).(*ebiten.Image).Fill(placeholderColor)
	}
	if s.previous != nil {
		drawStretched(dst, s.previous, r, 1)
	}
	if s.current != nil {
		drawStretched(dst, s.current, r, s.alpha)
	}

	text := s.debug
	if s.err != nil && text != "" {
		text += "\n" + s.err.Error()
	}
	if text != "" {
		ebitenutil.DebugPrintAt(dst, text, int(r.Left)+4, int(r.Top)+4)
	}
}

func drawStretched(dst, img *ebiten.Image, r gaze.Rect, alpha float32) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.Left, r.Top)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
