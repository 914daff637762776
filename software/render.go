package software

import (
	"fmt"
	"image"

	"github.com/phanxgames/latlong"
)

// Render runs one full filter session over src: create, tick, render,
// destroy. It returns the viewport image.
func Render(src image.Image, settings *latlong.Settings, opts ...latlong.Option) (*image.RGBA, error) {
	host := NewHost(NewFrame(src))
	f, err := latlong.New(host, NewDevice(), settings, opts...)
	if err != nil {
		return nil, err
	}
	defer f.Destroy()

	f.Tick(0)
	f.Render()
	if host.Output() == nil {
		return nil, fmt.Errorf("software: render pass skipped for %dx%d source", f.Width(), f.Height())
	}
	return host.Output(), nil
}
