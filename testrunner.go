package advdrag

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Angle  float64 `json:"angle,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Snapshot is the render output and state captured by a "snapshot" step.
type Snapshot struct {
	Label  string       `json:"label"`
	State  State        `json:"state"`
	Output RenderOutput `json:"output"`
}

// TestRunner sequences injected pointer input, owner updates and snapshots
// across frames for scripted interaction tests. Attach to a Surface via
// SetTestRunner.
//
// Supported actions: press, move, hover, release, click, drag, rotate, wait,
// snapshot, position, uncontrol, angle, disable, enable.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

var knownActions = map[string]bool{
	"press": true, "move": true, "hover": true, "release": true, "click": true,
	"drag": true, "rotate": true, "wait": true, "snapshot": true,
	"position": true, "uncontrol": true, "angle": true,
	"disable": true, "enable": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Surface via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the surface. The runner's step
// method is called from Surface.Update before injected input is consumed.
func (s *Surface) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed and
// their injected input consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Snapshots returns the captures taken so far, in script order.
func (r *TestRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// RunScript drives s frame by frame until runner finishes or maxFrames
// elapse. It reports whether the script completed.
func RunScript(s *Surface, runner *TestRunner, dt float64, maxFrames int) bool {
	s.SetTestRunner(runner)
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		s.Update(dt)
	}
	return runner.Done()
}

// step advances the test runner by one frame. Called from Surface.Update.
func (r *TestRunner) step(s *Surface) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
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
	case "snapshot":
		r.snapshots = append(r.snapshots, Snapshot{
			Label:  st.Label,
			State:  s.d.State(),
			Output: s.Render(),
		})
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "rotate":
		s.InjectRotate(st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "position":
		s.SetPosition(&Vec2{X: st.X, Y: st.Y})
	case "uncontrol":
		s.SetPosition(nil)
	case "angle":
		s.SetDefaultAngle(st.Angle)
	case "disable":
		s.SetDisabled(true)
	case "enable":
		s.SetDisabled(false)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
