package gaze

import (
	"fmt"
	"io"
	"math"
)

// FormatDebug returns the overlay text for a frame: the pointer position
// relative to the container's top-left, rounded to whole pixels, followed by
// the asset name on its own line.
func FormatDebug(localX, localY float64, asset string) string {
	return fmt.Sprintf("x:%d y:%d\n%s", roundPixel(localX), roundPixel(localY), asset)
}

func roundPixel(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// debugLogEvent prints an activation transition to w.
func debugLogEvent(w io.Writer, ev TrackerEvent) {
	_, _ = fmt.Fprintf(w, "[gaze] %s: tracker %q (ID %d) -> %s\n",
		ev.Type, ev.Name, ev.TrackerID, ev.Asset)
}

// debugCheckContainer warns if a tracker's container has no area yet. Such a
// tracker renders the centered frame until its layout gives it a size.
func debugCheckContainer(w io.Writer, t *Tracker) {
	r := t.Bounds()
	if r.Width > 0 && r.Height > 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "[gaze] warning: tracker %q has a %vx%v container; frames stay centered\n",
		t.Name, r.Width, r.Height)
}
