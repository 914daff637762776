package software

import (
	"image"
	"math"

	"github.com/phanxgames/latlong"
)

// Param holds one vec2 uniform.
type Param struct {
	value latlong.Vec2
	set   bool
}

// SetVec2 stores the uniform value for the next draw.
func (p *Param) SetVec2(v latlong.Vec2) {
	p.value = v
	p.set = true
}

// Value returns the stored value and whether it was ever set.
func (p *Param) Value() (latlong.Vec2, bool) {
	return p.value, p.set
}

// Effect is the CPU version of the latlong effect program: every output
// pixel samples the source at (x, y)*mul_val + add_val, wrapped into the
// source frame.
type Effect struct {
	device    *Device
	name      string
	mul, add  Param
	destroyed bool
}

func newEffect(d *Device, name string) *Effect {
	e := &Effect{device: d, name: name}
	e.mul.value = latlong.Vec2{X: 1, Y: 1}
	return e
}

// Name returns the resource name the effect was loaded from.
func (e *Effect) Name() string { return e.name }

// Param returns mul_val or add_val, and nil for any other name.
func (e *Effect) Param(name string) latlong.Param {
	switch name {
	case latlong.ParamMul:
		return &e.mul
	case latlong.ParamAdd:
		return &e.add
	}
	return nil
}

// Mapping returns the uniforms currently bound.
func (e *Effect) Mapping() latlong.Mapping {
	return latlong.Mapping{Scale: e.mul.value, Offset: e.add.value}
}

// Destroyed reports whether Destroy has been called.
func (e *Effect) Destroyed() bool { return e.destroyed }

// Destroy releases the effect. Repeated calls are no-ops.
func (e *Effect) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.device != nil {
		e.device.released()
	}
}

// Apply remaps src into a new w x h image using the bound uniforms.
func (e *Effect) Apply(src *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}
	m := e.Mapping()
	for y := 0; y < h; y++ {
		sy := wrap(int(math.Floor(float64(y)*m.Scale.Y+m.Offset.Y)), sh)
		srow := src.PixOffset(b.Min.X, b.Min.Y+sy)
		drow := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			sx := wrap(int(math.Floor(float64(x)*m.Scale.X+m.Offset.X)), sw)
			copy(dst.Pix[drow+x*4:drow+x*4+4], src.Pix[srow+sx*4:srow+sx*4+4])
		}
	}
	return dst
}

func wrap(v, span int) int {
	v %= span
	if v < 0 {
		v += span
	}
	return v
}
