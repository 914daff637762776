// Package software runs latlong filters on the CPU over image.RGBA frames.
// It implements the same device, effect and host contracts as the GPU
// backend and is used by the render CLI and by tests.
package software
