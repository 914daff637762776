package latlong

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Device is the graphics device shared by every filter in the process.
// Enter and Leave bracket any creation or destruction of GPU resources; the
// device serialises those regions across filters.
type Device interface {
	Enter()
	Leave()
	// CreateEffect loads the named effect program. Called only between Enter
	// and Leave.
	CreateEffect(name string) (Effect, error)
}

// Effect is a loaded GPU effect program owned by one filter.
type Effect interface {
	// Param returns the named shader parameter, or nil if the program does
	// not declare it.
	Param(name string) Param
	// Destroy releases the program. Called only between Enter and Leave.
	Destroy()
}

// Param is a vector-valued shader parameter.
type Param interface {
	SetVec2(v Vec2)
}

// Source is the upstream video producer the filter is attached to.
type Source interface {
	BaseWidth() uint32
	BaseHeight() uint32
}

// Host is the pipeline the filter is attached to. It supplies the upstream
// producer and brackets the filtered render pass.
type Host interface {
	// Target returns the upstream producer, or nil when there is none.
	Target() Source
	// BeginFilter starts a filtered pass rendering the target into an
	// intermediate of the given format. It returns false when no pass can
	// be started this frame.
	BeginFilter(format gputypes.TextureFormat, mode RenderMode) bool
	// EndFilter draws the intermediate through effect at width x height and
	// closes the pass.
	EndFilter(effect Effect, width, height uint32)
}

// Display consumes the filter's configuration, e.g. a preview overlay. It is
// notified after construction and after every update.
type Display interface {
	ViewChanged(v View)
}

// State is a filter's lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateConfiguring
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateConfiguring:
		return "configuring"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Option configures a Filter at construction.
type Option func(*Filter)

// WithLogger logs through entry instead of the package logger.
func WithLogger(entry *logrus.Entry) Option {
	return func(f *Filter) { f.log = entry }
}

// WithDisplay registers a consumer notified of every configuration change.
func WithDisplay(d Display) Option {
	return func(f *Filter) { f.display = d }
}

// WithEffectName loads a different effect resource than EffectName.
func WithEffectName(name string) Option {
	return func(f *Filter) { f.effectName = name }
}

// Filter is one latlong filter attached to a host. The host calls its
// methods from a single goroutine: New, then any interleaving of Update,
// Tick and Render, then Destroy. Filters share nothing but the Device.
type Filter struct {
	id         uuid.UUID
	host       Host
	device     Device
	display    Display
	log        *logrus.Entry
	effectName string

	effect   Effect
	paramMul Param
	paramAdd Param

	state   State
	cfg     Config
	dims    Dimensions
	mapping Mapping
	mapped  bool // mapping computed from non-empty dimensions
}

// New loads the effect program inside the device's graphics scope and
// applies settings. If the program cannot be loaded New returns a
// *ResourceLoadError and no filter. A nil settings applies the defaults.
func New(host Host, device Device, settings *Settings, opts ...Option) (*Filter, error) {
	if host == nil || device == nil {
		return nil, ErrNilCollaborator
	}
	f := &Filter{
		id:         uuid.New(),
		host:       host,
		device:     device,
		effectName: EffectName,
		cfg:        DefaultConfig(),
		mapping:    IdentityMapping(),
	}
	for _, opt := range opts {
		opt(f)
	}

	var effect Effect
	err := f.withGraphics(func() error {
		var err error
		effect, err = device.CreateEffect(f.effectName)
		return err
	})
	if err == nil && effect == nil {
		err = &ResourceLoadError{Name: f.effectName}
	}
	if err != nil {
		var loadErr *ResourceLoadError
		if !errors.As(err, &loadErr) {
			loadErr = &ResourceLoadError{Name: f.effectName, Err: err}
		}
		f.logger().WithFields(logrus.Fields{
			"function": "New",
			"effect":   f.effectName,
			"error":    loadErr.Error(),
		}).Error("Failed to load effect program")
		return nil, loadErr
	}

	f.effect = effect
	f.paramMul = effect.Param(ParamMul)
	f.paramAdd = effect.Param(ParamAdd)
	f.state = StateReady

	if settings == nil {
		settings = NewSettings()
		ApplyDefaults(settings)
	}
	f.Update(settings)

	f.logger().WithFields(logrus.Fields{
		"function": "New",
		"effect":   f.effectName,
	}).Info("Filter created")
	return f, nil
}

// withGraphics runs fn inside the device's graphics scope. Leave runs on
// every exit path, including a panic in fn.
func (f *Filter) withGraphics(fn func() error) error {
	f.device.Enter()
	defer f.device.Leave()
	return fn()
}

func (f *Filter) logger() *logrus.Entry {
	if f.log != nil {
		return f.log
	}
	return Logger().WithField("filter", f.id.String())
}

// usable reports whether the filter accepts calls, logging when it does not.
func (f *Filter) usable(op string) bool {
	if f.state == StateDestroyed {
		f.logger().WithField("function", op).Warn("Call on destroyed filter ignored")
		return false
	}
	return true
}

// Update replaces the configuration from settings. It never touches GPU
// resources.
func (f *Filter) Update(settings *Settings) {
	if !f.usable("Update") || settings == nil {
		return
	}
	prev := f.state
	f.state = StateConfiguring
	f.cfg = ConfigFromSettings(settings)
	f.state = prev
	if f.display != nil {
		f.display.ViewChanged(f.cfg.View())
	}
}

// Tick re-reads the upstream dimensions and recomputes the mapping. A
// missing upstream producer reads as 0x0. The elapsed time is unused.
func (f *Filter) Tick(seconds float64) {
	if !f.usable("Tick") {
		return
	}
	f.dims = Dimensions{}
	if src := f.host.Target(); src != nil {
		f.dims = Dimensions{Width: src.BaseWidth(), Height: src.BaseHeight()}
	}
	m := ComputeMapping(f.cfg, f.dims)
	if m != f.mapping {
		f.logger().WithFields(logrus.Fields{
			"function": "Tick",
			"width":    f.dims.Width,
			"height":   f.dims.Height,
			"offset_x": m.Offset.X,
			"offset_y": m.Offset.Y,
		}).Debug("Mapping changed")
	}
	f.mapping = m
	f.mapped = !f.dims.Empty()
}

// Destroy releases the effect program inside the graphics scope. Later calls
// on the filter are ignored.
func (f *Filter) Destroy() {
	if f.state == StateDestroyed {
		return
	}
	if f.effect != nil {
		_ = f.withGraphics(func() error {
			f.effect.Destroy()
			return nil
		})
	}
	f.effect, f.paramMul, f.paramAdd = nil, nil, nil
	f.display = nil
	f.state = StateDestroyed
	f.logger().WithField("function", "Destroy").Info("Filter destroyed")
}

// ID returns the filter's instance id.
func (f *Filter) ID() uuid.UUID { return f.id }

// State returns the lifecycle state.
func (f *Filter) State() State { return f.state }

// Config returns the current configuration.
func (f *Filter) Config() Config { return f.cfg }

// Mapping returns the most recent mapping. ok is false until a tick has run
// with non-empty source dimensions; the mapping must not be used for
// sampling before then.
func (f *Filter) Mapping() (m Mapping, ok bool) { return f.mapping, f.mapped }

// Dimensions returns the most recently observed source dimensions.
func (f *Filter) Dimensions() Dimensions { return f.dims }

// Width returns the most recently observed source width.
func (f *Filter) Width() uint32 { return f.dims.Width }

// Height returns the most recently observed source height.
func (f *Filter) Height() uint32 { return f.dims.Height }
