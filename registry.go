package gaze

import (
	"fmt"
	"io"
	"os"
)

// EventStore is the interface for optional ECS integration.
// When set on a Registry, tracker events are forwarded to it.
type EventStore interface {
	EmitEvent(event TrackerEvent)
}

// TrackerEvent carries tracker data for the ECS bridge.
type TrackerEvent struct {
	Type      EventType
	TrackerID uint32
	Name      string
	Cell      Cell
	Asset     string
	// Client coordinates of the move that produced the frame (EventFrame only).
	X, Y float64
}

// RegistryConfig configures a Registry. A zero Grid means DefaultGrid.
type RegistryConfig struct {
	Grid   Grid
	Policy GatePolicy
	Debug  bool
}

// Registry creates trackers that share one Router and turns raw pointer input
// into enter/leave boundary events and routed moves.
type Registry struct {
	router   *Router
	grid     Grid
	trackers []*Tracker
	store    EventStore

	debug    bool
	debugOut io.Writer

	// Input state
	pointer     pointerState
	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewRegistry creates a registry with its own Router.
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	g := cfg.Grid
	if g == (Grid{}) {
		g = DefaultGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("new registry: %w", err)
	}
	return &Registry{
		router:   NewRouter(cfg.Policy),
		grid:     g,
		debug:    cfg.Debug,
		debugOut: os.Stderr,
	}, nil
}

// CreateTracker creates a tracker over c that renders into sink, registers it
// for hover hit testing, and renders its centered frame. Later trackers sit
// above earlier ones when containers overlap.
func (r *Registry) CreateTracker(d Descriptor, c Container, sink Sink) (*Tracker, error) {
	if c == nil {
		return nil, fmt.Errorf("create tracker %q: nil container", d.Name)
	}
	t := newTracker(r.router, r.grid, d, c, sink, r.emit)
	if r.debug {
		debugCheckContainer(r.debugOut, t)
	}
	r.trackers = append(r.trackers, t)
	t.Center()
	return t, nil
}

// Trackers returns the registered trackers in creation order. The returned
// slice MUST NOT be mutated.
func (r *Registry) Trackers() []*Tracker {
	return r.trackers
}

// Tracker returns the first tracker with the given name, or nil.
func (r *Registry) Tracker(name string) *Tracker {
	for _, t := range r.trackers {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Active returns the tracker that owns the router, or nil.
func (r *Registry) Active() *Tracker {
	t, _ := r.router.Active().(*Tracker)
	return t
}

// Router returns the shared router.
func (r *Registry) Router() *Router {
	return r.router
}

// Grid returns the lattice used by every tracker in the registry.
func (r *Registry) Grid() Grid {
	return r.grid
}

// SetEventStore sets the optional ECS bridge.
func (r *Registry) SetEventStore(store EventStore) {
	r.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, activation
// transitions and suspicious containers are logged to the debug writer.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer restores stderr.
func (r *Registry) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	r.debugOut = w
}

// Update advances scripted input by one frame: the test runner steps first,
// then at most one injected event is consumed.
func (r *Registry) Update() {
	if r.testRunner != nil {
		r.testRunner.step(r)
	}
	r.processInjectedInput()
}

func (r *Registry) emit(ev TrackerEvent) {
	if r.debug && ev.Type != EventFrame {
		debugLogEvent(r.debugOut, ev)
	}
	if r.store != nil {
		r.store.EmitEvent(ev)
	}
}
