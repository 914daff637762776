package software

import (
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/latlong"
)

// Frame is an upstream producer backed by an RGBA image.
type Frame struct {
	img *image.RGBA
}

// NewFrame converts img to RGBA and wraps it as a producer.
func NewFrame(img image.Image) *Frame {
	if rgba, ok := img.(*image.RGBA); ok {
		return &Frame{img: rgba}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return &Frame{img: rgba}
}

// Image returns the frame pixels.
func (f *Frame) Image() *image.RGBA { return f.img }

// BaseWidth returns the frame width.
func (f *Frame) BaseWidth() uint32 { return uint32(f.img.Bounds().Dx()) }

// BaseHeight returns the frame height.
func (f *Frame) BaseHeight() uint32 { return uint32(f.img.Bounds().Dy()) }

// Host runs filtered passes on the CPU. The upstream frame is rendered into
// the pass as-is and the effect's output is kept until the next pass.
type Host struct {
	frame    *Frame
	pass     *image.RGBA
	output   *image.RGBA
	lastMode latlong.RenderMode

	// Passes counts completed passes, Skipped the passes that could not
	// start or finish.
	Passes  int
	Skipped int
}

// NewHost returns a host with the given upstream frame, which may be nil.
func NewHost(frame *Frame) *Host {
	return &Host{frame: frame}
}

// SetFrame replaces the upstream frame. Nil detaches it.
func (h *Host) SetFrame(frame *Frame) { h.frame = frame }

// Target returns the upstream frame, or nil when detached.
func (h *Host) Target() latlong.Source {
	if h.frame == nil {
		return nil
	}
	return h.frame
}

// BeginFilter starts a pass when a non-empty frame is attached and the format
// is RGBA.
func (h *Host) BeginFilter(format gputypes.TextureFormat, mode latlong.RenderMode) bool {
	h.lastMode = mode
	if h.frame == nil || h.frame.img.Bounds().Empty() || format != gputypes.TextureFormatRGBA8Unorm {
		h.Skipped++
		return false
	}
	h.pass = h.frame.img
	return true
}

// EndFilter applies effect to the pass and stores the output. A pass with a
// zero width or height, or with an effect from another backend, is counted
// as skipped and leaves the previous output in place.
func (h *Host) EndFilter(effect latlong.Effect, width, height uint32) {
	if h.pass == nil {
		return
	}
	src := h.pass
	h.pass = nil
	e, ok := effect.(*Effect)
	if !ok || width == 0 || height == 0 {
		h.Skipped++
		return
	}
	h.output = e.Apply(src, int(width), int(height))
	h.Passes++
}

// Output returns the image produced by the last completed pass.
func (h *Host) Output() *image.RGBA { return h.output }

// LastMode returns the render mode requested by the last BeginFilter.
func (h *Host) LastMode() latlong.RenderMode { return h.lastMode }
