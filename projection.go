package latlong

import "math"

const degToRad = math.Pi / 180

// Mapping is the texture-space transform used when sampling the source:
// sampled = uv*Scale + Offset, with Offset in source pixels.
type Mapping struct {
	Scale  Vec2
	Offset Vec2
}

// IdentityMapping samples the source unchanged.
func IdentityMapping() Mapping {
	return Mapping{Scale: Vec2{1, 1}}
}

// IsIdentity reports whether m leaves the source unchanged.
func (m Mapping) IsIdentity() bool {
	return m == IdentityMapping()
}

// Box is a pixel-space rectangle in the source frame. It is an offset plus
// the full frame extent, not a centred crop.
type Box struct {
	Left, Right, Top, Bottom int
}

// normalizeDegrees wraps d into [0, 360).
func normalizeDegrees(d int) int {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}

// wrapSpan brings a negative v into [0, span). For v in [-span, 0) that is
// span + v. Non-negative values pass through unchanged.
func wrapSpan(v, span int) int {
	if v >= 0 {
		return v
	}
	if span <= 0 {
		return 0
	}
	v %= span
	if v < 0 {
		v += span
	}
	return v
}

// Direction converts the configured view angles to a point on a sphere of
// the configured radius. Phi is normalised into [0, 360) first; theta is used
// as given.
func Direction(c Config) Vec3 {
	theta := float64(c.Theta) * degToRad
	phi := float64(normalizeDegrees(c.Phi)) * degToRad
	r := float64(c.Radius)
	st := math.Sin(theta)
	return Vec3{
		X: r * st * math.Cos(phi),
		Y: r * st * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}

// PixelBox projects the view direction onto the source frame. Left and top
// are the x and y components scaled by half the frame size, truncated to
// whole pixels; right and bottom add the full frame size.
func PixelBox(c Config, d Dimensions) Box {
	dir := Direction(c)
	w, h := int(d.Width), int(d.Height)
	left := int(dir.X * float64(d.Width) / 2)
	top := int(dir.Y * float64(d.Height) / 2)
	return Box{
		Left:   left,
		Right:  left + w,
		Top:    top,
		Bottom: top + h,
	}
}

// ComputeMapping returns the sampling transform for c on a source of size d.
// A disabled configuration or an empty source gives the identity mapping.
// Otherwise the scale stays (1, 1) and the offset is the box origin, with a
// negative origin wrapped into the frame. The result depends only on its arguments.
func ComputeMapping(c Config, d Dimensions) Mapping {
	if !c.Enabled || d.Empty() {
		return IdentityMapping()
	}
	box := PixelBox(c, d)
	return Mapping{
		Scale: Vec2{1, 1},
		Offset: Vec2{
			X: float64(wrapSpan(box.Left, int(d.Width))),
			Y: float64(wrapSpan(box.Top, int(d.Height))),
		},
	}
}
