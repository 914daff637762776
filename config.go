package latlong

// Settings keys read by Update.
const (
	KeyOn     = "on"
	KeyRadius = "radius"
	KeyTheta  = "theta"
	KeyPhi    = "phi"
	KeyFOVPhi = "fov_phi"
)

// Default values installed by ApplyDefaults and DefaultConfig.
const (
	DefaultEnabled = true
	DefaultRadius  = 1
	DefaultFOVPhi  = 100
)

// Config is the validated viewing configuration. It is replaced wholesale on
// every update and never mutated in place.
//
// Range enforcement belongs to the host schema (see Properties); Config only
// applies the field-of-view derivation.
type Config struct {
	Enabled     bool // false makes the filter a pass-through
	Radius      int  // zoom factor, [1, 100]
	Theta       int  // polar angle in degrees, [0, 180]
	Phi         int  // azimuth in degrees, [0, 360]
	FOVPhiInput int  // requested azimuthal field of view in degrees, [0, 360]

	fovPhi   int
	fovTheta int
}

// NewConfig builds a Config and derives its field-of-view values.
func NewConfig(enabled bool, radius, theta, phi, fovPhiInput int) Config {
	c := Config{
		Enabled:     enabled,
		Radius:      radius,
		Theta:       theta,
		Phi:         phi,
		FOVPhiInput: fovPhiInput,
	}
	c.derive()
	return c
}

// DefaultConfig returns the configuration in effect before any explicit
// update: enabled, radius 1, field of view 100, theta and phi zero.
func DefaultConfig() Config {
	return NewConfig(DefaultEnabled, DefaultRadius, 0, 0, DefaultFOVPhi)
}

// ConfigFromSettings reads the named fields from s and derives the field of
// view. Missing keys read as their defaults layer or zero.
func ConfigFromSettings(s *Settings) Config {
	return NewConfig(
		s.Bool(KeyOn),
		s.Int(KeyRadius),
		s.Int(KeyTheta),
		s.Int(KeyPhi),
		s.Int(KeyFOVPhi),
	)
}

// ApplyDefaults installs the default value of every field into the defaults
// layer of s. Explicit values are left alone.
func ApplyDefaults(s *Settings) {
	s.SetDefaultBool(KeyOn, DefaultEnabled)
	s.SetDefaultInt(KeyRadius, DefaultRadius)
	s.SetDefaultInt(KeyFOVPhi, DefaultFOVPhi)
}

// derive halves the requested azimuthal field of view and halves it again
// for the polar one, both with integer division. Negative input clamps to
// zero so the derived values stay non-negative.
func (c *Config) derive() {
	in := max(c.FOVPhiInput, 0)
	c.fovPhi = in / 2
	c.fovTheta = c.fovPhi / 2
}

// FOVPhi returns the derived azimuthal field of view (FOVPhiInput / 2).
func (c Config) FOVPhi() int { return c.fovPhi }

// FOVTheta returns the derived polar field of view (FOVPhi / 2).
func (c Config) FOVTheta() int { return c.fovTheta }

// Window is the angular region visible around the view direction, in
// degrees. Bounds are not clamped to the sphere.
type Window struct {
	ThetaMin, ThetaMax float64
	PhiMin, PhiMax     float64
}

// Window returns theta ± FOVTheta/2 and phi ± FOVPhi/2, with phi normalised
// into [0, 360) first.
func (c Config) Window() Window {
	phi := float64(normalizeDegrees(c.Phi))
	theta := float64(c.Theta)
	ht := float64(c.fovTheta) / 2
	hp := float64(c.fovPhi) / 2
	return Window{
		ThetaMin: theta - ht,
		ThetaMax: theta + ht,
		PhiMin:   phi - hp,
		PhiMax:   phi + hp,
	}
}

// View is the snapshot of a configuration handed to a Display.
type View struct {
	Enabled  bool
	Radius   int
	Theta    int
	Phi      int
	FOVTheta int
	FOVPhi   int
}

// View returns the display snapshot of c.
func (c Config) View() View {
	return View{
		Enabled:  c.Enabled,
		Radius:   c.Radius,
		Theta:    c.Theta,
		Phi:      c.Phi,
		FOVTheta: c.fovTheta,
		FOVPhi:   c.fovPhi,
	}
}
