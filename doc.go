// Package latlong reads a video frame as an equirectangular (latitude/
// longitude) image of a spherical scene and extracts a viewport from it.
//
// The view is set by two spherical angles, a field of view and a radius that
// acts as a zoom factor. A [Filter] sits in-line after an upstream producer
// and, on every frame, either passes the frame through or remaps it
// according to the current view before handing it to the renderer.
//
// # Lifecycle
//
// A host drives each filter from one goroutine:
//
//	f, err := latlong.New(host, device, settings)
//	if err != nil {
//		// the effect program failed to load; there is no filter
//	}
//	f.Update(settings)   // whenever the settings change
//	f.Tick(dt)           // once per frame, CPU only
//	f.Render()           // once per frame, GPU submission
//	f.Destroy()
//
// The [Host] supplies the upstream [Source] and the filtered render pass; the
// [Device] supplies the effect program and the process-wide graphics scope.
// Package kage implements both on Ebitengine, package software on image.RGBA.
//
// # Mapping
//
// [ComputeMapping] turns a [Config] and the source [Dimensions] into a
// [Mapping]: the scale and offset the effect applies when sampling,
// sampled = uv*Scale + Offset. It is a pure function of its inputs.
//
// # Settings
//
// [Settings] is the host's key/value bag. [Properties] describes the keys,
// their ranges and the rule that hides the view fields while "on" is false.
// Settings can be loaded from YAML with [LoadSettings].
package latlong
