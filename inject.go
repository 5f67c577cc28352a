package gaze

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticTouch
	syntheticExit
)

// syntheticEvent represents a single injected input event in client
// coordinates, fed through the same path as real input.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectMove queues a pointer move at the given client coordinates. The event
// is consumed on the next Update call.
func (r *Registry) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectTouch queues a single-point touch move at the given client coordinates.
func (r *Registry) InjectTouch(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticEvent{kind: syntheticTouch, x: x, y: y})
}

// InjectExit queues the pointer leaving the input surface.
func (r *Registry) InjectExit() {
	r.injectQueue = append(r.injectQueue, syntheticEvent{kind: syntheticExit})
}

// InjectPath queues a straight-line pointer move from (fromX, fromY) to
// (toX, toY) as `frames` moves, both endpoints included. Minimum frames is 2.
func (r *Registry) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (r *Registry) Pending() int {
	return len(r.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the regular input handlers. Returns true if an event was consumed.
func (r *Registry) processInjectedInput() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		r.PointerMove(evt.x, evt.y)
	case syntheticTouch:
		r.TouchMove([]Vec2{{X: evt.x, Y: evt.y}})
	case syntheticExit:
		r.PointerExit()
	}
	return true
}
