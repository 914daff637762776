package latlong

// PropertyKind selects the widget a host shows for a property.
type PropertyKind uint8

const (
	PropertyBool PropertyKind = iota // checkbox
	PropertyInt                      // integer slider or spin box
)

// Property describes one settings field for a host property panel.
type Property struct {
	Key   string
	Label string
	Kind  PropertyKind
	// Min, Max and Step bound integer properties. Hosts enforce them.
	Min, Max, Step int
	// VisibleWhen names a boolean property that must be true for this one to
	// be shown. Empty means always visible.
	VisibleWhen string
}

var properties = []Property{
	{Key: KeyOn, Label: "Lat Long Mode On", Kind: PropertyBool},
	{Key: KeyRadius, Label: "Radius (1 .. 100)", Kind: PropertyInt, Min: 1, Max: 100, Step: 1, VisibleWhen: KeyOn},
	{Key: KeyTheta, Label: "Theta (Z->XY: 0 .. 180)", Kind: PropertyInt, Min: 0, Max: 180, Step: 1, VisibleWhen: KeyOn},
	{Key: KeyPhi, Label: "Phi (X->Y: 0 .. 360)", Kind: PropertyInt, Min: 0, Max: 360, Step: 1, VisibleWhen: KeyOn},
	{Key: KeyFOVPhi, Label: "FOV (0 .. 360)", Kind: PropertyInt, Min: 0, Max: 360, Step: 1, VisibleWhen: KeyOn},
}

// Properties returns the filter's settings schema in panel order. The
// returned slice is a copy.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// LookupProperty returns the property with the given key.
func LookupProperty(key string) (Property, bool) {
	for _, p := range properties {
		if p.Key == key {
			return p, true
		}
	}
	return Property{}, false
}

// Visible reports whether p is shown for the given settings.
func (p Property) Visible(s *Settings) bool {
	if p.VisibleWhen == "" {
		return true
	}
	return s.Bool(p.VisibleWhen)
}

// Clamp limits v to the property's range. Boolean properties return v
// unchanged.
func (p Property) Clamp(v int) int {
	if p.Kind != PropertyInt {
		return v
	}
	return min(max(v, p.Min), p.Max)
}

// Visibility evaluates every property's visibility rule against s.
func Visibility(s *Settings) map[string]bool {
	out := make(map[string]bool, len(properties))
	for _, p := range properties {
		out[p.Key] = p.Visible(s)
	}
	return out
}

// ClampSettings rewrites every explicit integer value in s into its
// property's range. It is a host-side helper for hosts that accept values
// from outside a property panel; the filter itself never calls it.
func ClampSettings(s *Settings) {
	for _, p := range properties {
		if p.Kind != PropertyInt || !s.Has(p.Key) {
			continue
		}
		s.SetInt(p.Key, p.Clamp(s.Int(p.Key)))
	}
}
