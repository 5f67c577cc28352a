package gaze

import (
	"bytes"
	"math"
	"testing"
)

func TestFormatDebug(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{100, 0, "x:100 y:0\ngaze_px0_py0_256.webp"},
		{10.4, 10.6, "x:10 y:11\ngaze_px0_py0_256.webp"},
		{-2.5, 199.5, "x:-3 y:200\ngaze_px0_py0_256.webp"},
		{math.NaN(), math.Inf(1), "x:0 y:0\ngaze_px0_py0_256.webp"},
	}
	for _, tt := range tests {
		if got := FormatDebug(tt.x, tt.y, "gaze_px0_py0_256.webp"); got != tt.want {
			t.Errorf("FormatDebug(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDebugCheckContainer(t *testing.T) {
	var buf bytes.Buffer
	ok := NewTracker(nil, DefaultGrid, Descriptor{Name: "ok"}, RectContainer(testRect), nil)
	debugCheckContainer(&buf, ok)
	if buf.Len() != 0 {
		t.Errorf("sized container should not warn, got %q", buf.String())
	}

	empty := NewTracker(nil, DefaultGrid, Descriptor{Name: "empty"}, RectContainer{}, nil)
	debugCheckContainer(&buf, empty)
	if want := "[gaze] warning: tracker \"empty\" has a 0x0 container; frames stay centered\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEventTypeString(t *testing.T) {
	for ev, want := range map[EventType]string{
		EventActivate:   "activate",
		EventDeactivate: "deactivate",
		EventFrame:      "frame",
		EventType(99):   "unknown",
	} {
		if got := ev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ev, got, want)
		}
	}
}
