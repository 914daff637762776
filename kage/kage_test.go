package kage

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/latlong"
)

// --- nextPowerOfTwo ---

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		input, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{129, 256},
		{1000, 1024},
		{1920, 2048},
	}
	for _, tt := range tests {
		got := nextPowerOfTwo(tt.input)
		if got != tt.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// --- Pool ---

func TestPoolAcquireReturnsPow2(t *testing.T) {
	var pool texturePool
	img := pool.Acquire(100, 50)
	defer pool.Release(img)

	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("size = %dx%d, want 128x64", b.Dx(), b.Dy())
	}
}

func TestPoolReleaseAndReacquire(t *testing.T) {
	var pool texturePool
	img1 := pool.Acquire(64, 64)
	pool.Release(img1)

	img2 := pool.Acquire(60, 33)
	if img1 != img2 {
		t.Error("expected pool to return the same image after release")
	}
	pool.Release(img2)
	if pool.live != 0 {
		t.Errorf("live = %d, want 0", pool.live)
	}
}

func TestPoolReleaseNilNoPanic(t *testing.T) {
	var pool texturePool
	pool.Release(nil)
}

// --- Device ---

func TestDeviceResolvesEmbeddedShader(t *testing.T) {
	d := NewDevice()
	src, err := d.source(latlong.EffectName)
	if err != nil {
		t.Fatalf("source(%q): %v", latlong.EffectName, err)
	}
	if !strings.Contains(string(src), "var MulVal vec2") || !strings.Contains(string(src), "var AddVal vec2") {
		t.Error("embedded shader should declare MulVal and AddVal")
	}
}

func TestDeviceUnknownEffect(t *testing.T) {
	d := NewDevice()
	d.Enter()
	_, err := d.CreateEffect("missing.effect")
	d.Leave()
	if err == nil {
		t.Error("expected error for unknown effect")
	}
}

func TestDeviceAddSourceShadowsEmbedded(t *testing.T) {
	d := NewDevice()
	d.AddSource(latlong.EffectName, []byte("custom"))
	src, err := d.source(latlong.EffectName)
	if err != nil || string(src) != "custom" {
		t.Errorf("source = %q, %v; want custom", src, err)
	}
}

func TestDeviceCompileErrorIsLoadFailure(t *testing.T) {
	d := NewDevice()
	d.AddSource(latlong.EffectName, []byte("not kage"))
	f, err := latlong.New(NewHost(nil, nil), d, nil)
	if f != nil {
		t.Error("expected no filter")
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

// --- Effect ---

func TestEffectParamsWriteUniforms(t *testing.T) {
	e := newEffect(latlong.EffectName, nil)
	if e.Param("other") != nil {
		t.Error("unknown param should be nil")
	}
	mul := e.uniforms["MulVal"].([]float32)
	if mul[0] != 1 || mul[1] != 1 {
		t.Errorf("MulVal = %v, want [1 1]", mul)
	}

	e.Param(latlong.ParamAdd).SetVec2(latlong.Vec2{X: 12, Y: 34})
	add := e.uniforms["AddVal"].([]float32)
	if add[0] != 12 || add[1] != 34 {
		t.Errorf("AddVal = %v, want [12 34]", add)
	}
	e.Destroy() // nil shader: no-op
}

// --- Host ---

func TestHostRefusesWithoutDestination(t *testing.T) {
	h := NewHost(&ImageSource{Image: ebiten.NewImage(8, 8)}, nil)
	if h.BeginFilter(gputypes.TextureFormatRGBA8Unorm, latlong.NoDirectRendering) {
		t.Error("BeginFilter should fail without a destination")
	}
	if h.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", h.Skipped())
	}
}

func TestHostRefusesEmptyProducer(t *testing.T) {
	h := NewHost(&ImageSource{}, ebiten.NewImage(8, 8))
	if h.BeginFilter(gputypes.TextureFormatRGBA8Unorm, latlong.NoDirectRendering) {
		t.Error("BeginFilter should fail for an empty producer")
	}
	if w := h.Target().BaseWidth(); w != 0 {
		t.Errorf("BaseWidth() = %d, want 0", w)
	}
}

func TestHostTargetNilWithoutProducer(t *testing.T) {
	h := NewHost(nil, nil)
	if h.Target() != nil {
		t.Error("Target() should be nil without a producer")
	}
}

func TestHostEndFilterReleasesPass(t *testing.T) {
	h := NewHost(&ImageSource{Image: ebiten.NewImage(10, 6)}, ebiten.NewImage(10, 6))
	if !h.BeginFilter(gputypes.TextureFormatRGBA8Unorm, latlong.NoDirectRendering) {
		t.Fatal("BeginFilter should succeed")
	}
	if h.pool.live != 1 {
		t.Fatalf("live = %d, want 1", h.pool.live)
	}
	// Size mismatch drops the frame but still returns the target.
	h.EndFilter(newEffect(latlong.EffectName, nil), 20, 6)
	if h.pool.live != 0 {
		t.Errorf("live = %d, want 0", h.pool.live)
	}
	if h.Passes() != 0 || h.Skipped() != 1 {
		t.Errorf("passes=%d skipped=%d, want 0 and 1", h.Passes(), h.Skipped())
	}
	h.Close()
}
