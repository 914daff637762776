package latlong

import (
	"errors"

	"github.com/gogpu/gputypes"
)

var errNoSuchEffect = errors.New("no such effect")

type fakeDevice struct {
	depth       int
	enters      int
	leaves      int
	created     int
	destroyed   int
	fail        error
	nilEffect   bool
	noParams    bool
	panicCreate bool
	lastName    string
	outOfScope  int // effect operations seen outside Enter/Leave
}

func (d *fakeDevice) Enter() { d.depth++; d.enters++ }
func (d *fakeDevice) Leave() { d.depth--; d.leaves++ }

func (d *fakeDevice) CreateEffect(name string) (Effect, error) {
	d.lastName = name
	if d.depth == 0 {
		d.outOfScope++
	}
	if d.panicCreate {
		panic("driver crashed")
	}
	if d.fail != nil {
		return nil, d.fail
	}
	if d.nilEffect {
		return nil, nil
	}
	d.created++
	return &fakeEffect{device: d, params: !d.noParams}, nil
}

type fakeParam struct {
	value Vec2
	sets  int
}

func (p *fakeParam) SetVec2(v Vec2) { p.value = v; p.sets++ }

type fakeEffect struct {
	device *fakeDevice
	params bool
	mul    fakeParam
	add    fakeParam
	dead   bool
}

func (e *fakeEffect) Param(name string) Param {
	if !e.params {
		return nil
	}
	switch name {
	case ParamMul:
		return &e.mul
	case ParamAdd:
		return &e.add
	}
	return nil
}

func (e *fakeEffect) Destroy() {
	if e.device.depth == 0 {
		e.device.outOfScope++
	}
	e.dead = true
	e.device.destroyed++
}

type fakeSource struct {
	w, h uint32
}

func (s *fakeSource) BaseWidth() uint32  { return s.w }
func (s *fakeSource) BaseHeight() uint32 { return s.h }

type endCall struct {
	effect Effect
	width  uint32
	height uint32
	mul    Vec2
	add    Vec2
}

type fakeHost struct {
	source   *fakeSource
	refuse   bool
	begins   int
	format   gputypes.TextureFormat
	mode     RenderMode
	ends     []endCall
	inPass   bool
	unpaired int // EndFilter without a successful BeginFilter
}

func (h *fakeHost) Target() Source {
	if h.source == nil {
		return nil
	}
	return h.source
}

func (h *fakeHost) BeginFilter(format gputypes.TextureFormat, mode RenderMode) bool {
	h.begins++
	h.format, h.mode = format, mode
	if h.refuse {
		return false
	}
	h.inPass = true
	return true
}

func (h *fakeHost) EndFilter(effect Effect, width, height uint32) {
	if !h.inPass {
		h.unpaired++
	}
	h.inPass = false
	c := endCall{effect: effect, width: width, height: height}
	if fe, ok := effect.(*fakeEffect); ok {
		c.mul, c.add = fe.mul.value, fe.add.value
	}
	h.ends = append(h.ends, c)
}

type fakeDisplay struct {
	views []View
}

func (d *fakeDisplay) ViewChanged(v View) { d.views = append(d.views, v) }

func defaultSettings() *Settings {
	s := NewSettings()
	ApplyDefaults(s)
	return s
}
