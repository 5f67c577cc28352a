package gaze

// --- Per-pointer state ---

type pointerState struct {
	hoverTracker *Tracker // last tracker the pointer was over (for enter/leave)
	lastX        float64
	lastY        float64
	moved        bool // at least one position has been seen
}

// --- Hit testing ---

// hitTest finds the topmost tracker whose container contains (x, y).
// Returns nil if nothing is hit.
func (r *Registry) hitTest(x, y float64) *Tracker {
	// Iterate backward: the most recently created tracker is on top.
	for i := len(r.trackers) - 1; i >= 0; i-- {
		t := r.trackers[i]
		if t.Bounds().Contains(x, y) {
			return t
		}
	}
	return nil
}

// --- Input processing ---

// PointerMove handles a mouse or pen move at client coordinates (x, y). It
// fires leave on the previously hovered tracker and enter on the newly
// hovered one when the hover target changes, then routes the move.
func (r *Registry) PointerMove(x, y float64) {
	r.processHover(x, y)
	r.router.RoutePointerMove(x, y)
}

// TouchMove handles a touch move. Only the first touch point is consumed;
// a move with no touch points is ignored.
func (r *Registry) TouchMove(touches []Vec2) {
	if len(touches) == 0 {
		return
	}
	r.processHover(touches[0].X, touches[0].Y)
	r.router.RouteTouchMove(touches)
}

// PointerExit handles the pointer leaving the input surface entirely. The
// hovered tracker, if any, receives PointerLeave.
func (r *Registry) PointerExit() {
	ps := &r.pointer
	if ps.hoverTracker != nil {
		prev := ps.hoverTracker
		ps.hoverTracker = nil
		prev.PointerLeave()
	}
}

// Hovered returns the tracker currently under the pointer, or nil.
func (r *Registry) Hovered() *Tracker {
	return r.pointer.hoverTracker
}

// processHover runs the hover state machine for the single pointer.
func (r *Registry) processHover(x, y float64) {
	ps := &r.pointer
	target := r.hitTest(x, y)

	// Fire hover leave/enter when the hovered tracker changes.
	if target != ps.hoverTracker {
		prev := ps.hoverTracker
		ps.hoverTracker = target
		if prev != nil {
			prev.PointerLeave()
		}
		if target != nil {
			target.PointerEnter()
		}
	}
	ps.lastX = x
	ps.lastY = y
	ps.moved = true
}

// LastPointer returns the last pointer position seen and whether any has been.
func (r *Registry) LastPointer() (x, y float64, ok bool) {
	return r.pointer.lastX, r.pointer.lastY, r.pointer.moved
}
