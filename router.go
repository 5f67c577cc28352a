package gaze

// Target receives routed pointer moves. Bounds is queried on every routed
// event so implementations must report the current layout, never a cached one.
type Target interface {
	Bounds() Rect
	SetFromClient(x, y float64)
}

// GatePolicy decides which moves reach the active target.
type GatePolicy uint8

const (
	// GateStrict forwards only moves that fall inside the active target's
	// current bounds (edges inclusive). A pointer that jumps out of the
	// container without a leave event stops driving it.
	GateStrict GatePolicy = iota
	// GateTrust forwards every move to the active target and relies solely
	// on enter/leave events for gating.
	GateTrust
)

// String returns the policy name used in configuration files.
func (p GatePolicy) String() string {
	switch p {
	case GateStrict:
		return "strict"
	case GateTrust:
		return "trust"
	default:
		return "unknown"
	}
}

// Router holds at most one active target and forwards pointer moves to it.
// It is single-threaded: all calls must come from the same event loop.
type Router struct {
	active Target
	policy GatePolicy

	routed  uint64
	dropped uint64
}

// NewRouter creates a router with no active target.
func NewRouter(policy GatePolicy) *Router {
	return &Router{policy: policy}
}

// Policy returns the router's gate policy.
func (r *Router) Policy() GatePolicy {
	return r.policy
}

// SetActive replaces the active target outright. Passing nil disables routing.
func (r *Router) SetActive(t Target) {
	r.active = t
}

// Active returns the current target, or nil.
func (r *Router) Active() Target {
	return r.active
}

// RoutePointerMove forwards client coordinates to the active target. It
// reports whether the move was delivered; with no active target, or a move
// rejected by the gate, it does nothing and returns false.
func (r *Router) RoutePointerMove(x, y float64) bool {
	t := r.active
	if t == nil {
		return false
	}
	if r.policy == GateStrict && !t.Bounds().Contains(x, y) {
		r.dropped++
		return false
	}
	r.routed++
	t.SetFromClient(x, y)
	return true
}

// RouteTouchMove forwards the first touch point. Additional points are
// ignored; an empty slice is a no-op.
func (r *Router) RouteTouchMove(touches []Vec2) bool {
	if len(touches) == 0 {
		return false
	}
	return r.RoutePointerMove(touches[0].X, touches[0].Y)
}

// Stats returns how many moves were delivered and how many the gate dropped.
func (r *Router) Stats() (routed, dropped uint64) {
	return r.routed, r.dropped
}
