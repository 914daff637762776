package kage

import (
	"image"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/latlong"
)

// Producer is an upstream video producer that can draw its current frame.
type Producer interface {
	Size() (w, h int)
	Draw(dst *ebiten.Image)
}

// ImageSource is a Producer showing a fixed image.
type ImageSource struct {
	Image *ebiten.Image
	op    ebiten.DrawImageOptions
}

// Size returns the image size, or 0x0 for a nil image.
func (s *ImageSource) Size() (int, int) {
	if s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Draw copies the image to dst.
func (s *ImageSource) Draw(dst *ebiten.Image) {
	if s.Image == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.Blend = ebiten.BlendCopy
	dst.DrawImage(s.Image, &s.op)
}

// producerSource reports a Producer's size to the filter.
type producerSource struct {
	p Producer
}

func (s producerSource) BaseWidth() uint32 {
	w, _ := s.p.Size()
	return uint32(max(w, 0))
}

func (s producerSource) BaseHeight() uint32 {
	_, h := s.p.Size()
	return uint32(max(h, 0))
}

// Host runs filtered passes on Ebitengine. BeginFilter renders the producer
// into a pooled offscreen image; EndFilter draws it through the effect into
// the destination.
type Host struct {
	producer Producer
	dst      *ebiten.Image
	pool     texturePool

	pass       *ebiten.Image // pooled image backing the current pass
	passW      int
	passH      int
	lastMode   latlong.RenderMode
	skipped    int
	passesDone int
}

// NewHost returns a host drawing producer into dst. Either may be nil and set
// later.
func NewHost(producer Producer, dst *ebiten.Image) *Host {
	return &Host{producer: producer, dst: dst}
}

// SetProducer replaces the upstream producer.
func (h *Host) SetProducer(p Producer) { h.producer = p }

// SetDestination sets the image EndFilter draws into, usually the screen.
func (h *Host) SetDestination(dst *ebiten.Image) { h.dst = dst }

// Target returns the upstream producer, or nil when there is none.
func (h *Host) Target() latlong.Source {
	if h.producer == nil {
		return nil
	}
	return producerSource{h.producer}
}

// BeginFilter starts a pass. It fails without a destination, without a
// producer, for an empty producer, or for a non-RGBA format.
func (h *Host) BeginFilter(format gputypes.TextureFormat, mode latlong.RenderMode) bool {
	h.lastMode = mode
	if h.dst == nil || h.producer == nil || format != gputypes.TextureFormatRGBA8Unorm {
		h.skipped++
		return false
	}
	w, ht := h.producer.Size()
	if w <= 0 || ht <= 0 {
		h.skipped++
		return false
	}
	h.pass = h.pool.Acquire(w, ht)
	h.passW, h.passH = w, ht
	h.producer.Draw(h.pass)
	return true
}

// EndFilter draws the pass through effect into the destination and returns
// the offscreen image to the pool. A size that no longer matches the pass
// drops the frame.
func (h *Host) EndFilter(effect latlong.Effect, width, height uint32) {
	if h.pass == nil {
		return
	}
	pass := h.pass
	h.pass = nil
	defer h.pool.Release(pass)

	w, ht := int(width), int(height)
	e, ok := effect.(*Effect)
	if !ok || w != h.passW || ht != h.passH {
		h.skipped++
		return
	}
	src := pass.SubImage(image.Rect(0, 0, w, ht)).(*ebiten.Image)
	e.draw(h.dst, src, w, ht)
	h.passesDone++
}

// Skipped returns how many passes could not start or finish.
func (h *Host) Skipped() int { return h.skipped }

// Passes returns how many passes were drawn.
func (h *Host) Passes() int { return h.passesDone }

// LastMode returns the render mode requested by the last BeginFilter.
func (h *Host) LastMode() latlong.RenderMode { return h.lastMode }

// Close deallocates pooled offscreen images.
func (h *Host) Close() { h.pool.Drain() }
