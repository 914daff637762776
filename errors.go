package latlong

import (
	"errors"
	"fmt"
)

// ErrResourceLoad is matched by every ResourceLoadError via errors.Is.
var ErrResourceLoad = errors.New("latlong: resource load failed")

// ErrNilCollaborator is returned by New when the host or device is missing.
var ErrNilCollaborator = errors.New("latlong: nil host or device")

// ResourceLoadError reports that the effect program could not be loaded while
// constructing a Filter. No instance is created when it is returned.
type ResourceLoadError struct {
	Name string
	Err  error
}

func (e *ResourceLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("latlong: load effect %q", e.Name)
	}
	return fmt.Sprintf("latlong: load effect %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying device error.
func (e *ResourceLoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrResourceLoad) match.
func (e *ResourceLoadError) Is(target error) bool {
	return target == ErrResourceLoad
}
