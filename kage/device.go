package kage

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/latlong"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// graphicsMu is the process-wide graphics scope shared by every Device.
var graphicsMu sync.Mutex

// Device loads Kage effect programs by resource name. A name such as
// "latlong_filter.effect" resolves to shaders/latlong_filter.kage.
type Device struct {
	sources map[string][]byte
}

// NewDevice returns a device serving the embedded shaders.
func NewDevice() *Device {
	return &Device{sources: make(map[string][]byte)}
}

// AddSource registers Kage source under name, shadowing any embedded shader.
func (d *Device) AddSource(name string, src []byte) {
	d.sources[name] = src
}

// Enter acquires the process-wide graphics scope.
func (d *Device) Enter() { graphicsMu.Lock() }

// Leave releases the process-wide graphics scope.
func (d *Device) Leave() { graphicsMu.Unlock() }

// CreateEffect compiles the named program.
func (d *Device) CreateEffect(name string) (latlong.Effect, error) {
	src, err := d.source(name)
	if err != nil {
		return nil, err
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("kage: compile %q: %w", name, err)
	}
	return newEffect(name, s), nil
}

func (d *Device) source(name string) ([]byte, error) {
	if src, ok := d.sources[name]; ok {
		return src, nil
	}
	file := strings.TrimSuffix(path.Base(name), path.Ext(name)) + ".kage"
	src, err := shaderFS.ReadFile("shaders/" + file)
	if err != nil {
		return nil, fmt.Errorf("kage: effect %q: %w", name, err)
	}
	return src, nil
}
