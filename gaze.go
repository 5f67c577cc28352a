package gaze

import "math"

// Vec2 is a 2D point in client (screen) coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in client coordinates. The origin is at
// the top-left, with Y increasing downward.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() &&
		y >= r.Top && y <= r.Bottom()
}

// Offset is a pointer position relative to a container's center, each axis
// in [-1, 1]. X grows rightward, Y grows upward.
type Offset struct {
	X, Y float64
}

// Cell is a point on the quantization lattice, one coordinate per axis.
type Cell struct {
	X, Y int
}

// EventType identifies a kind of tracker event.
type EventType uint8

const (
	EventActivate   EventType = iota // tracker claimed the router
	EventDeactivate                  // tracker released the router and re-centered
	EventFrame                       // tracker pushed a frame to its sink
)

// String returns a lower-case name for the event type.
func (e EventType) String() string {
	switch e {
	case EventActivate:
		return "activate"
	case EventDeactivate:
		return "deactivate"
	case EventFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// clamp limits v to [lo, hi]. NaN maps to 0 (then clamped) because every
// comparison against NaN is false and would otherwise slip through.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize converts a client position into an Offset relative to the center
// of r. Y is inverted so that "up" is positive. A zero, negative or NaN extent
// yields 0 on that axis rather than an infinity.
func Normalize(r Rect, x, y float64) Offset {
	cx, cy := r.Center()
	var o Offset
	if halfW := r.Width / 2; halfW > 0 {
		o.X = clamp((x-cx)/halfW, -1, 1)
	}
	if halfH := r.Height / 2; halfH > 0 {
		o.Y = clamp((cy-y)/halfH, -1, 1)
	}
	return o
}
