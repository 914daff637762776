package latlong

import (
	"math"

	"github.com/gogpu/gputypes"
)

// EffectName is the resource name of the GPU program the filter loads at
// construction.
const EffectName = "latlong_filter.effect"

// Shader parameter names. The effect program receives the mapping scale in
// ParamMul and the offset in ParamAdd, once per frame before the draw.
const (
	ParamMul = "mul_val"
	ParamAdd = "add_val"
)

// FormatRGBA is the pixel format declared when a filtered render pass is
// requested.
const FormatRGBA = gputypes.TextureFormatRGBA8Unorm

// RenderMode tells the host whether the filter can be skipped in favour of
// drawing the upstream source directly.
type RenderMode uint8

const (
	AllowDirectRendering RenderMode = iota // host may draw the source directly
	NoDirectRendering                      // host must render through the filter
)

// Vec2 is a 2D vector used for the texture-space scale and offset.
type Vec2 struct {
	X, Y float64
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Vec3 is a 3D direction on the viewing sphere.
type Vec3 struct {
	X, Y, Z float64
}

// Dimensions is the base size of the upstream video producer. The zero value
// means the producer is absent or not sized yet.
type Dimensions struct {
	Width, Height uint32
}

// Empty reports whether either side is zero.
func (d Dimensions) Empty() bool {
	return d.Width == 0 || d.Height == 0
}
