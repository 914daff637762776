package software

import (
	"errors"
	"fmt"
	"sync"

	"github.com/phanxgames/latlong"
)

// ErrOutsideScope is returned when an effect is created outside Enter/Leave.
var ErrOutsideScope = errors.New("software: graphics scope not entered")

// Device is a CPU stand-in for the shared graphics device. Its scope is a
// plain mutex, so filters on different goroutines serialise effect creation
// and destruction the same way they would on a GPU context.
type Device struct {
	mu      sync.Mutex
	entered bool

	statsMu sync.Mutex
	names   map[string]bool
	stats   Stats
}

// Stats counts scope and effect activity on a Device.
type Stats struct {
	Enters  int
	Leaves  int
	Created int
	Live    int
}

// NewDevice returns a device that knows latlong.EffectName.
func NewDevice() *Device {
	d := &Device{names: make(map[string]bool)}
	d.Register(latlong.EffectName)
	return d
}

// Register makes name loadable through CreateEffect.
func (d *Device) Register(name string) {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	d.names[name] = true
}

// Unregister makes name fail to load.
func (d *Device) Unregister(name string) {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	delete(d.names, name)
}

// Enter acquires the graphics scope.
func (d *Device) Enter() {
	d.mu.Lock()
	d.entered = true
	d.statsMu.Lock()
	d.stats.Enters++
	d.statsMu.Unlock()
}

// Leave releases the graphics scope.
func (d *Device) Leave() {
	d.statsMu.Lock()
	d.stats.Leaves++
	d.statsMu.Unlock()
	d.entered = false
	d.mu.Unlock()
}

// CreateEffect returns a remap effect for a registered name.
func (d *Device) CreateEffect(name string) (latlong.Effect, error) {
	if !d.entered {
		return nil, ErrOutsideScope
	}
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	if !d.names[name] {
		return nil, fmt.Errorf("software: effect %q not found", name)
	}
	d.stats.Created++
	d.stats.Live++
	return newEffect(d, name), nil
}

// Stats returns a snapshot of the device counters.
func (d *Device) Stats() Stats {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	return d.stats
}

func (d *Device) released() {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	d.stats.Live--
}
