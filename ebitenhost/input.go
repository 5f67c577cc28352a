// Package ebitenhost runs gaze trackers inside an Ebitengine game: it polls
// the cursor and touch screen into a gaze.Registry and draws each tracker's
// current asset with an optional cross-fade.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gaze"
)

// touchPoint is one touch as reported by Ebitengine.
type touchPoint struct {
	id   ebiten.TouchID
	x, y int
}

// inputSample is the raw input state for one frame.
type inputSample struct {
	cursorX, cursorY int
	touches          []touchPoint
}

// Poller turns per-frame Ebitengine input state into gaze input events.
// Ebitengine only exposes positions, so moves are synthesized when a
// position changes and PointerExit when the cursor leaves the screen.
type Poller struct {
	reg *gaze.Registry

	screenW, screenH int

	lastX, lastY int
	seen         bool
	inside       bool

	primary    ebiten.TouchID
	hasPrimary bool

	touchBuf []ebiten.TouchID
	pointBuf []touchPoint
}

// NewPoller creates a poller feeding reg.
func NewPoller(reg *gaze.Registry) *Poller {
	return &Poller{reg: reg}
}

// SetScreenSize sets the logical screen size used to detect the cursor
// leaving the window. A zero size disables exit detection.
func (p *Poller) SetScreenSize(w, h int) {
	p.screenW, p.screenH = w, h
}

// Update reads Ebitengine's input state. Call once per tick.
func (p *Poller) Update() {
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	points := p.pointBuf[:0]
	for _, id := range p.touchBuf {
		x, y := ebiten.TouchPosition(id)
		points = append(points, touchPoint{id: id, x: x, y: y})
	}
	p.pointBuf = points

	mx, my := ebiten.CursorPosition()
	p.apply(inputSample{cursorX: mx, cursorY: my, touches: points})
}

// apply runs the polling state machine for one frame.
func (p *Poller) apply(s inputSample) {
	if len(s.touches) > 0 {
		p.applyTouch(s.touches)
		return
	}
	if p.hasPrimary {
		// Touch ended: the finger has left the surface.
		p.hasPrimary = false
		p.seen = false
		p.reg.PointerExit()
	}

	inside := p.screenW <= 0 || p.screenH <= 0 ||
		(s.cursorX >= 0 && s.cursorY >= 0 && s.cursorX < p.screenW && s.cursorY < p.screenH)
	if !inside {
		if p.inside {
			p.reg.PointerExit()
		}
		p.inside = false
		p.seen = false
		return
	}
	p.inside = true

	if p.seen && s.cursorX == p.lastX && s.cursorY == p.lastY {
		return
	}
	p.lastX, p.lastY = s.cursorX, s.cursorY
	p.seen = true
	p.reg.PointerMove(float64(s.cursorX), float64(s.cursorY))
}

// applyTouch forwards the primary touch: the oldest finger still down.
func (p *Poller) applyTouch(touches []touchPoint) {
	primary := touches[0]
	if p.hasPrimary {
		for _, t := range touches {
			if t.id == p.primary {
				primary = t
				break
			}
		}
	}
	if !p.hasPrimary || primary.id != p.primary {
		p.primary = primary.id
		p.hasPrimary = true
		p.seen = false
	}

	if p.seen && primary.x == p.lastX && primary.y == p.lastY {
		return
	}
	p.lastX, p.lastY = primary.x, primary.y
	p.seen = true
	p.reg.TouchMove([]gaze.Vec2{{X: float64(primary.x), Y: float64(primary.y)}})
}
