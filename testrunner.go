package gaze

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Tracker string  `json:"tracker,omitempty"`
	Asset   string  `json:"asset,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and expectations across frames
// for automated checks of an asset set or layout. Attach to a Registry via
// SetTestRunner and call Registry.Update once per frame.
//
// Supported actions: "move", "touch", "exit", "path", "wait", "expect"
// (tracker shows asset) and "expectActive" (tracker owns the router; an
// empty tracker name expects no active tracker).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Registry via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "touch", "exit", "path", "wait", "expectActive":
		case "expect":
			if st.Tracker == "" {
				return nil, fmt.Errorf("parse test script: step %d: expect needs a tracker", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the registry. The runner's step
// method is called from Registry.Update before injected input is consumed.
func (r *Registry) SetTestRunner(runner *TestRunner) {
	r.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns a description of every expectation that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Registry.Update.
func (r *TestRunner) step(reg *Registry) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(reg.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		reg.InjectMove(st.X, st.Y)
	case "touch":
		reg.InjectTouch(st.X, st.Y)
	case "exit":
		reg.InjectExit()
	case "path":
		reg.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		r.expectAsset(reg, st)
	case "expectActive":
		r.expectActive(reg, st)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(reg.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) expectAsset(reg *Registry, st testStep) {
	t := reg.Tracker(st.Tracker)
	if t == nil {
		r.failf(st, "no tracker named %q", st.Tracker)
		return
	}
	if got := t.Asset(); got != st.Asset {
		r.failf(st, "tracker %q shows %q, want %q", st.Tracker, got, st.Asset)
	}
}

func (r *TestRunner) expectActive(reg *Registry, st testStep) {
	active := reg.Active()
	switch {
	case st.Tracker == "" && active != nil:
		r.failf(st, "tracker %q is active, want none", active.Name)
	case st.Tracker != "" && (active == nil || active.Name != st.Tracker):
		name := "<none>"
		if active != nil {
			name = active.Name
		}
		r.failf(st, "active tracker is %s, want %q", name, st.Tracker)
	}
}

func (r *TestRunner) failf(st testStep, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.failures = append(r.failures, fmt.Sprintf("step %d (%s): %s", r.cursor-1, st.Action, msg))
}
