package latlong

import (
	"fmt"
	"maps"
	"math"

	"gopkg.in/yaml.v3"
)

// Settings is the host's key/value bag handed to Update. Explicit values
// shadow a separate defaults layer; getters fall back to the default and then
// to the zero value, so a missing key is never an error.
type Settings struct {
	values   map[string]any
	defaults map[string]any
}

// NewSettings returns an empty settings bag.
func NewSettings() *Settings {
	return &Settings{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
}

// LoadSettings parses a YAML (or JSON) mapping of keys to scalar values.
// Values must be booleans or numbers; anything else is rejected with the
// offending key in the error.
func LoadSettings(data []byte) (*Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	s := NewSettings()
	for k, v := range raw {
		switch v.(type) {
		case bool, int, int64, uint64, float64:
			s.values[k] = v
		default:
			return nil, fmt.Errorf("parse settings: key %q: unsupported value %v (%T)", k, v, v)
		}
	}
	return s, nil
}

// SetBool stores an explicit boolean value.
func (s *Settings) SetBool(key string, v bool) { s.set(key, v) }

// SetInt stores an explicit integer value.
func (s *Settings) SetInt(key string, v int) { s.set(key, v) }

// SetDefaultBool stores a boolean in the defaults layer.
func (s *Settings) SetDefaultBool(key string, v bool) { s.setDefault(key, v) }

// SetDefaultInt stores an integer in the defaults layer.
func (s *Settings) SetDefaultInt(key string, v int) { s.setDefault(key, v) }

// Erase removes the explicit value for key, exposing its default again.
func (s *Settings) Erase(key string) { delete(s.values, key) }

// Has reports whether key has an explicit value.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Bool returns the value for key as a boolean. Numbers are true when non-zero.
func (s *Settings) Bool(key string) bool {
	switch v := s.lookup(key).(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// Int returns the value for key as an integer. Floating-point values are
// truncated toward zero; booleans read as 0 or 1.
func (s *Settings) Int(key string) int {
	switch v := s.lookup(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		if v > math.MaxInt {
			return math.MaxInt
		}
		return int(v)
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return int(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// Clone returns an independent copy of both layers.
func (s *Settings) Clone() *Settings {
	return &Settings{
		values:   maps.Clone(s.values),
		defaults: maps.Clone(s.defaults),
	}
}

// Merge copies every explicit value of other over s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		s.set(k, v)
	}
}

func (s *Settings) set(key string, v any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = v
}

func (s *Settings) setDefault(key string, v any) {
	if s.defaults == nil {
		s.defaults = make(map[string]any)
	}
	s.defaults[key] = v
}

func (s *Settings) lookup(key string) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.defaults[key]
}
