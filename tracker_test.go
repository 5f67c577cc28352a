package gaze

import (
	"math"
	"testing"
)

// frameRecorder is a Sink that keeps every frame it receives.
type frameRecorder struct {
	frames []Frame
}

func (r *frameRecorder) Render(f Frame) { r.frames = append(r.frames, f) }

func (r *frameRecorder) last() Frame {
	if len(r.frames) == 0 {
		return Frame{}
	}
	return r.frames[len(r.frames)-1]
}

var testRect = Rect{Left: 100, Top: 100, Width: 200, Height: 200}

func newTestTracker(t *testing.T, router *Router, d Descriptor, c Container) (*Tracker, *frameRecorder) {
	t.Helper()
	sink := &frameRecorder{}
	return NewTracker(router, DefaultGrid, d, c, sink), sink
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		x, y float64
		want Offset
	}{
		{"center", testRect, 200, 200, Offset{0, 0}},
		{"top edge is up", testRect, 200, 100, Offset{0, 1}},
		{"bottom-left corner", testRect, 100, 300, Offset{-1, -1}},
		{"outside clamps", testRect, 50, 250, Offset{-1, -0.5}},
		{"far outside clamps", testRect, 10000, -10000, Offset{1, 1}},
		{"zero width", Rect{Left: 10, Top: 10, Width: 0, Height: 100}, 500, 10, Offset{0, 1}},
		{"zero size", Rect{}, 50, 50, Offset{0, 0}},
		{"negative size", Rect{Width: -10, Height: -10}, 50, 50, Offset{0, 0}},
		{"NaN width", Rect{Width: math.NaN(), Height: 100}, 50, 0, Offset{0, 1}},
		{"NaN pointer", testRect, math.NaN(), math.NaN(), Offset{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.r, tt.x, tt.y); got != tt.want {
				t.Errorf("Normalize(%+v, %v, %v) = %+v, want %+v", tt.r, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTracker_InitialFrameIsCentered(t *testing.T) {
	tr, sink := newTestTracker(t, NewRouter(GateStrict), Descriptor{}, RectContainer(testRect))

	if len(sink.frames) != 1 {
		t.Fatalf("expected 1 frame at construction, got %d", len(sink.frames))
	}
	f := sink.frames[0]
	if f.Path != "/faces/gaze_px0_py0_256.webp" {
		t.Errorf("initial path = %q", f.Path)
	}
	if f.Debug != "" {
		t.Errorf("debug text without debug flag: %q", f.Debug)
	}
	if tr.Active() {
		t.Error("tracker should start inactive")
	}
}

func TestTracker_SetFromClient(t *testing.T) {
	tr, sink := newTestTracker(t, NewRouter(GateStrict), Descriptor{}, RectContainer(testRect))

	tests := []struct {
		name  string
		x, y  float64
		asset string
	}{
		{"top center", 200, 100, "gaze_px0_py15_256.webp"},
		{"outside left, lower half", 50, 250, "gaze_pxm15_pym9_256.webp"},
		{"bottom-right", 300, 300, "gaze_px15_pym15_256.webp"},
		{"center", 200, 200, "gaze_px0_py0_256.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr.SetFromClient(tt.x, tt.y)
			if got := sink.last().Asset; got != tt.asset {
				t.Errorf("SetFromClient(%v, %v) asset = %q, want %q", tt.x, tt.y, got, tt.asset)
			}
			if tr.Asset() != tt.asset {
				t.Errorf("Asset() = %q, want %q", tr.Asset(), tt.asset)
			}
		})
	}
}

func TestTracker_BasePathAndDebug(t *testing.T) {
	d := Descriptor{BasePath: "/assets/ada/", Debug: true}
	tr, sink := newTestTracker(t, NewRouter(GateStrict), d, RectContainer(testRect))

	tr.SetFromClient(200, 100)
	f := sink.last()
	if f.Path != "/assets/ada/gaze_px0_py15_256.webp" {
		t.Errorf("path = %q", f.Path)
	}
	if f.LocalX != 100 || f.LocalY != 0 {
		t.Errorf("local = (%v, %v), want (100, 0)", f.LocalX, f.LocalY)
	}
	if want := "x:100 y:0\ngaze_px0_py15_256.webp"; f.Debug != want {
		t.Errorf("debug = %q, want %q", f.Debug, want)
	}
}

func TestTracker_ActivationExclusivity(t *testing.T) {
	router := NewRouter(GateTrust)
	a, sinkA := newTestTracker(t, router, Descriptor{Name: "a"}, RectContainer(testRect))
	b, sinkB := newTestTracker(t, router, Descriptor{Name: "b"}, RectContainer(testRect))

	a.PointerEnter()
	b.PointerEnter() // a never left

	if a.Active() {
		t.Error("a should have lost the router")
	}
	if !b.Active() {
		t.Error("b should own the router")
	}

	nA, nB := len(sinkA.frames), len(sinkB.frames)
	router.RoutePointerMove(200, 100)
	if len(sinkA.frames) != nA {
		t.Error("a received a routed move after b activated")
	}
	if len(sinkB.frames) != nB+1 {
		t.Error("b did not receive the routed move")
	}
}

func TestTracker_LeaveResetsToCenter(t *testing.T) {
	router := NewRouter(GateStrict)
	tr, sink := newTestTracker(t, router, Descriptor{}, RectContainer(testRect))
	center := DefaultGrid.AssetName(DefaultGrid.Center())

	positions := []Vec2{{100, 100}, {300, 300}, {299, 101}, {150, 280}}
	for _, p := range positions {
		tr.PointerEnter()
		router.RoutePointerMove(p.X, p.Y)
		if tr.Asset() == center {
			t.Fatalf("move to %v should leave the center", p)
		}
		tr.PointerLeave()

		if tr.Active() {
			t.Fatal("tracker still active after leave")
		}
		if router.Active() != nil {
			t.Fatal("router still has a target after leave")
		}
		if got := sink.last().Asset; got != center {
			t.Errorf("after leave from %v: asset = %q, want %q", p, got, center)
		}
	}
}

func TestTracker_LayoutShiftIsHonored(t *testing.T) {
	rect := testRect
	c := ContainerFunc(func() Rect { return rect })
	tr, _ := newTestTracker(t, NewRouter(GateTrust), Descriptor{}, c)

	tr.SetFromClient(200, 200)
	if tr.Cell() != (Cell{}) {
		t.Fatalf("cell = %+v, want center", tr.Cell())
	}

	rect.Left = 200 // container moved right; the same point is now its left edge
	tr.SetFromClient(200, 200)
	if tr.Cell() != (Cell{X: -15, Y: 0}) {
		t.Errorf("cell after shift = %+v, want {-15 0}", tr.Cell())
	}
}

func TestTracker_ZeroSizeContainerRendersCenter(t *testing.T) {
	tr, sink := newTestTracker(t, NewRouter(GateTrust), Descriptor{}, RectContainer{})
	tr.PointerEnter()
	tr.SetFromClient(500, -500)
	if got := sink.last().Asset; got != "gaze_px0_py0_256.webp" {
		t.Errorf("zero-size container asset = %q", got)
	}
}

func TestTracker_StrictVersusTrustOnEscape(t *testing.T) {
	// The pointer jumps from inside the container to far outside without a
	// leave event in between.
	for _, tc := range []struct {
		policy GatePolicy
		asset  string
	}{
		{GateStrict, "gaze_px3_py3_256.webp"},
		{GateTrust, "gaze_px15_pym15_256.webp"},
	} {
		t.Run(tc.policy.String(), func(t *testing.T) {
			router := NewRouter(tc.policy)
			tr, _ := newTestTracker(t, router, Descriptor{}, RectContainer(testRect))
			tr.PointerEnter()
			router.RoutePointerMove(210, 190)
			router.RoutePointerMove(900, 900)
			if tr.Asset() != tc.asset {
				t.Errorf("asset = %q, want %q", tr.Asset(), tc.asset)
			}
		})
	}
}

func TestTracker_Callbacks(t *testing.T) {
	router := NewRouter(GateStrict)
	tr, _ := newTestTracker(t, router, Descriptor{}, RectContainer(testRect))

	var log []string
	tr.OnActivate = func(*Tracker) { log = append(log, "activate") }
	tr.OnDeactivate = func(*Tracker) { log = append(log, "deactivate") }
	tr.OnFrame = func(_ *Tracker, f Frame) { log = append(log, f.Asset) }

	tr.PointerEnter()
	router.RoutePointerMove(200, 100)
	tr.PointerLeave()

	want := []string{"activate", "gaze_px0_py15_256.webp", "gaze_px0_py0_256.webp", "deactivate"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestTracker_NilRouterAndSink(t *testing.T) {
	tr := NewTracker(nil, DefaultGrid, Descriptor{}, RectContainer(testRect), nil)
	tr.PointerEnter()
	if tr.Active() {
		t.Error("tracker without a router cannot be active")
	}
	tr.SetFromClient(200, 100)
	if tr.Asset() != "gaze_px0_py15_256.webp" {
		t.Errorf("asset = %q", tr.Asset())
	}
	tr.PointerLeave()
	if tr.Cell() != (Cell{}) {
		t.Errorf("cell after leave = %+v", tr.Cell())
	}
}
