package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/gaze"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	ClearColor    color.Color
	// FadeSeconds is the cross-fade applied to every panel's sink.
	FadeSeconds float32
}

// Panel is one tracker with its on-screen rectangle and sink. Move a panel
// by assigning Rect; the tracker reads it on every event.
type Panel struct {
	Rect    gaze.Rect
	Tracker *gaze.Tracker
	Sink    *ImageSink
}

// Bounds implements gaze.Container.
func (p *Panel) Bounds() gaze.Rect { return p.Rect }

// Game is an ebiten.Game that hosts a gaze.Registry.
type Game struct {
	reg    *gaze.Registry
	loader *Loader
	poller *Poller
	panels []*Panel
	cfg    RunConfig

	// OnUpdate, if set, runs once per tick after input has been processed.
	OnUpdate func(dt float32)
}

// NewGame creates a game drawing trackers from reg with assets from loader.
func NewGame(reg *gaze.Registry, loader *Loader, cfg RunConfig) *Game {
	g := &Game{
		reg:    reg,
		loader: loader,
		poller: NewPoller(reg),
		cfg:    cfg,
	}
	g.poller.SetScreenSize(cfg.Width, cfg.Height)
	return g
}

// AddPanel creates a tracker over r and a sink that draws it.
func (g *Game) AddPanel(d gaze.Descriptor, r gaze.Rect) (*Panel, error) {
	p := &Panel{Rect: r, Sink: NewImageSink(g.loader, g.cfg.FadeSeconds)}
	t, err := g.reg.CreateTracker(d, p, p.Sink)
	if err != nil {
		return nil, fmt.Errorf("add panel: %w", err)
	}
	p.Tracker = t
	g.panels = append(g.panels, p)
	return p, nil
}

// Panels returns the game's panels in creation order.
func (g *Game) Panels() []*Panel {
	return g.panels
}

// Registry returns the hosted registry.
func (g *Game) Registry() *gaze.Registry {
	return g.reg
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	g.reg.Update()
	g.poller.Update()
	for _, p := range g.panels {
		p.Sink.Update(dt)
	}
	if g.OnUpdate != nil {
		g.OnUpdate(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != nil {
		screen.Fill(g.cfg.ClearColor)
	}
	for _, p := range g.panels {
		p.Sink.Draw(screen, p.Rect)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size so client coordinates match panel rectangles.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width <= 0 || g.cfg.Height <= 0 {
		g.poller.SetScreenSize(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs g until the window is closed.
func Run(g *Game) error {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	return ebiten.RunGame(g)
}
