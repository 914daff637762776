package latlong

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	Key     string  `yaml:"key,omitempty"`
	Value   any     `yaml:"value,omitempty"`
	Label   string  `yaml:"label,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Seconds float64 `yaml:"seconds,omitempty"`
}

// script is the top-level YAML/JSON structure of a script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// defaultFrameSeconds is the tick interval used when a tick step gives none.
const defaultFrameSeconds = 1.0 / 60

// ScriptRunner plays a sequence of settings changes, ticks and renders
// against a Filter, one frame per Step, so a host session can be reproduced.
//
// Actions:
//
//	set     key, value   write a setting and call Update
//	tick    frames, seconds   call Tick once per frame (default 1 frame)
//	wait    frames       let frames pass without calling the filter
//	render  label        call Render and report label for capture
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	tickCount int
	tickDt    float64
	done      bool
}

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "set":
			if st.Key == "" {
				return nil, fmt.Errorf("parse script: step %d: set without key", i)
			}
			switch st.Value.(type) {
			case bool, int, float64:
			default:
				return nil, fmt.Errorf("parse script: step %d: unsupported value %v for %q", i, st.Value, st.Key)
			}
		case "tick", "wait", "render":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. It returns the label of a render
// step and true when the caller should capture the frame just rendered.
func (r *ScriptRunner) Step(f *Filter, s *Settings) (string, bool) {
	if r.done {
		return "", false
	}
	if r.tickCount > 0 {
		r.tickCount--
		f.Tick(r.tickDt)
		r.finishIfIdle()
		return "", false
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finishIfIdle()
		return "", false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return "", false
	}

	st := r.steps[r.cursor]
	r.cursor++

	var label string
	var capture bool
	switch st.Action {
	case "set":
		switch v := st.Value.(type) {
		case bool:
			s.SetBool(st.Key, v)
		case int:
			s.SetInt(st.Key, v)
		case float64:
			s.SetInt(st.Key, int(v))
		}
		f.Update(s)
	case "tick":
		r.tickDt = st.Seconds
		if r.tickDt <= 0 {
			r.tickDt = defaultFrameSeconds
		}
		f.Tick(r.tickDt)
		if st.Frames > 1 {
			r.tickCount = st.Frames - 1 // this frame counts as one
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "render":
		f.Render()
		label, capture = st.Label, true
	}

	r.finishIfIdle()
	return label, capture
}

// Run steps the script to completion, calling capture after every render
// step. It stops at the first capture error.
func (r *ScriptRunner) Run(f *Filter, s *Settings, capture func(label string) error) error {
	for !r.done {
		label, ok := r.Step(f, s)
		if !ok || capture == nil {
			continue
		}
		if err := capture(label); err != nil {
			return fmt.Errorf("capture %q: %w", label, err)
		}
	}
	return nil
}

func (r *ScriptRunner) finishIfIdle() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.tickCount == 0 {
		r.done = true
	}
}
