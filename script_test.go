package latlong

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: set
    key: theta
    value: 90
  - action: tick
    frames: 3
  - action: wait
    frames: 2
  - action: render
    label: side
`)
	r, err := LoadScript(data)
	require.NoError(t, err)
	require.Len(t, r.steps, 4)
	assert.Equal(t, "set", r.steps[0].Action)
	assert.Equal(t, "theta", r.steps[0].Key)
	assert.Equal(t, 90, r.steps[0].Value)
	assert.Equal(t, 3, r.steps[1].Frames)
	assert.Equal(t, "side", r.steps[3].Label)
}

func TestLoadScriptJSON(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "set", "key": "on", "value": false}]}`))
	require.NoError(t, err)
	assert.Equal(t, false, r.steps[0].Value)
}

func TestLoadScriptErrors(t *testing.T) {
	cases := map[string]string{
		"invalid":        `steps: [`,
		"empty":          `steps: []`,
		"unknown action": `{"steps": [{"action": "click"}]}`,
		"set no key":     `{"steps": [{"action": "set", "value": 1}]}`,
		"set bad value":  `{"steps": [{"action": "set", "key": "phi", "value": "east"}]}`,
	}
	for name, data := range cases {
		_, err := LoadScript([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestScriptRunnerFrames(t *testing.T) {
	host := &fakeHost{source: &fakeSource{200, 100}}
	s := defaultSettings()
	f, err := New(host, &fakeDevice{}, s)
	require.NoError(t, err)

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "set", "key": "theta", "value": 90},
		{"action": "set", "key": "phi", "value": 180},
		{"action": "tick", "frames": 2},
		{"action": "wait", "frames": 2},
		{"action": "render", "label": "back"}
	]}`))
	require.NoError(t, err)

	var labels []string
	frames := 0
	for !r.Done() {
		label, ok := r.Step(f, s)
		frames++
		if ok {
			labels = append(labels, label)
		}
	}

	// set, set, tick x2, wait x2, render.
	assert.Equal(t, 7, frames)
	assert.Equal(t, []string{"back"}, labels)
	require.Len(t, host.ends, 1)
	assertNear(t, "add_val.x", host.ends[0].add.X, 100)
	assert.Equal(t, 180, s.Int(KeyPhi))
}

func TestScriptRunnerRunCapture(t *testing.T) {
	host := &fakeHost{source: &fakeSource{64, 32}}
	s := defaultSettings()
	f, err := New(host, &fakeDevice{}, s)
	require.NoError(t, err)

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "tick"},
		{"action": "render", "label": "a"},
		{"action": "set", "key": "on", "value": false},
		{"action": "render", "label": "b"}
	]}`))
	require.NoError(t, err)

	var got []string
	require.NoError(t, r.Run(f, s, func(label string) error {
		got = append(got, label)
		return nil
	}))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.False(t, f.Config().Enabled)
}

func TestScriptRunnerRunStopsOnCaptureError(t *testing.T) {
	s := defaultSettings()
	f, err := New(&fakeHost{}, &fakeDevice{}, s)
	require.NoError(t, err)
	r, err := LoadScript([]byte(`{"steps": [{"action": "render", "label": "x"}, {"action": "render", "label": "y"}]}`))
	require.NoError(t, err)

	boom := errors.New("disk full")
	err = r.Run(f, s, func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, r.Done())
}
