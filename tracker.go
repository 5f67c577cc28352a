package gaze

// Container is the bounded area a tracker follows the pointer over. Bounds
// must report the current client rectangle; it may change between calls.
type Container interface {
	Bounds() Rect
}

// RectContainer is a Container with fixed bounds.
type RectContainer Rect

// Bounds returns the rectangle.
func (c RectContainer) Bounds() Rect { return Rect(c) }

// ContainerFunc adapts a function to the Container interface.
type ContainerFunc func() Rect

// Bounds calls f.
func (f ContainerFunc) Bounds() Rect { return f() }

// Frame is one rendering update pushed to a Sink.
type Frame struct {
	Path   string // BasePath + Asset
	Asset  string // canonical asset file name
	Cell   Cell
	LocalX float64 // pointer position relative to the container's top-left
	LocalY float64
	Debug  string // empty unless the tracker's descriptor enables debug
}

// Sink displays frames. Implementations decide how to load and draw Path.
type Sink interface {
	Render(f Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Frame)

// Render calls f.
func (f SinkFunc) Render(fr Frame) { f(fr) }

// --- ID counter ---

// trackerIDCounter is a plain counter (no atomic, gaze is single-threaded).
var trackerIDCounter uint32

func nextTrackerID() uint32 {
	trackerIDCounter++
	return trackerIDCounter
}

// Tracker swaps a sink's image to follow the pointer over one container.
//
// A tracker is Inactive until PointerEnter claims the router, and returns to
// Inactive on PointerLeave, which also re-renders the centered frame. While
// it owns the router, routed moves arrive through SetFromClient.
type Tracker struct {
	ID   uint32
	Name string

	// OnActivate, OnDeactivate and OnFrame are optional per-tracker callbacks.
	OnActivate   func(t *Tracker)
	OnDeactivate func(t *Tracker)
	OnFrame      func(t *Tracker, f Frame)

	container Container
	sink      Sink
	router    *Router
	grid      Grid
	basePath  string
	debug     bool

	last Frame
	emit func(TrackerEvent)
}

// NewTracker creates a standalone tracker bound to router and renders the
// centered frame once so the sink starts in a deterministic state. sink may
// be nil. Trackers that should take part in hover hit testing are created
// with Registry.CreateTracker instead.
func NewTracker(router *Router, grid Grid, d Descriptor, c Container, sink Sink) *Tracker {
	t := newTracker(router, grid, d, c, sink, nil)
	t.Center()
	return t
}

func newTracker(router *Router, grid Grid, d Descriptor, c Container, sink Sink, emit func(TrackerEvent)) *Tracker {
	return &Tracker{
		ID:        nextTrackerID(),
		Name:      d.Name,
		container: c,
		sink:      sink,
		router:    router,
		grid:      grid,
		basePath:  d.ResolvedBasePath(),
		debug:     d.Debug,
		emit:      emit,
	}
}

// Bounds returns the container's current rectangle.
func (t *Tracker) Bounds() Rect {
	if t.container == nil {
		return Rect{}
	}
	return t.container.Bounds()
}

// Active reports whether this tracker currently owns the router.
func (t *Tracker) Active() bool {
	return t.router != nil && t.router.Active() == Target(t)
}

// Cell returns the lattice cell of the last rendered frame.
func (t *Tracker) Cell() Cell { return t.last.Cell }

// Asset returns the asset name of the last rendered frame.
func (t *Tracker) Asset() string { return t.last.Asset }

// LastFrame returns the most recently rendered frame.
func (t *Tracker) LastFrame() Frame { return t.last }

// Debug reports whether frames carry debug text.
func (t *Tracker) Debug() bool { return t.debug }

// BasePath returns the prefix prepended to asset names.
func (t *Tracker) BasePath() string { return t.basePath }

// PointerEnter claims the router. Any previously active tracker silently
// loses it; it is not re-centered.
func (t *Tracker) PointerEnter() {
	if t.router == nil {
		return
	}
	t.router.SetActive(t)
	if t.OnActivate != nil {
		t.OnActivate(t)
	}
	t.emitEvent(EventActivate, 0, 0)
}

// PointerLeave clears the router and renders the centered frame.
func (t *Tracker) PointerLeave() {
	if t.router != nil {
		t.router.SetActive(nil)
	}
	t.Center()
	if t.OnDeactivate != nil {
		t.OnDeactivate(t)
	}
	t.emitEvent(EventDeactivate, 0, 0)
}

// Center renders the frame for a pointer resting at the container's center.
func (t *Tracker) Center() {
	cx, cy := t.Bounds().Center()
	t.SetFromClient(cx, cy)
}

// SetFromClient converts client coordinates into a lattice cell and pushes the
// resulting frame to the sink. The container's bounds are read fresh on every
// call so layout shifts between events are honored.
func (t *Tracker) SetFromClient(x, y float64) {
	r := t.Bounds()
	cell := t.grid.CellFor(Normalize(r, x, y))
	asset := t.grid.AssetName(cell)

	f := Frame{
		Path:   t.basePath + asset,
		Asset:  asset,
		Cell:   cell,
		LocalX: x - r.Left,
		LocalY: y - r.Top,
	}
	if t.debug {
		f.Debug = FormatDebug(f.LocalX, f.LocalY, asset)
	}
	t.last = f

	if t.sink != nil {
		t.sink.Render(f)
	}
	if t.OnFrame != nil {
		t.OnFrame(t, f)
	}
	t.emitEvent(EventFrame, x, y)
}

func (t *Tracker) emitEvent(typ EventType, x, y float64) {
	if t.emit == nil {
		return
	}
	t.emit(TrackerEvent{
		Type:      typ,
		TrackerID: t.ID,
		Name:      t.Name,
		Cell:      t.last.Cell,
		Asset:     t.last.Asset,
		X:         x,
		Y:         y,
	})
}
