package latlong

import "github.com/sirupsen/logrus"

// Render draws one frame through the effect program. It binds the current
// mapping as mul_val/add_val and closes the pass at the source dimensions.
// A disabled filter carries the identity mapping, so enabled and disabled
// frames take the same path. If the host cannot start a pass the frame is
// skipped without error.
func (f *Filter) Render() {
	if !f.usable("Render") {
		return
	}
	if !f.host.BeginFilter(FormatRGBA, NoDirectRendering) {
		f.logger().WithFields(logrus.Fields{
			"function": "Render",
			"width":    f.dims.Width,
			"height":   f.dims.Height,
		}).Debug("Render pass not started, frame skipped")
		return
	}

	m := f.mapping
	if !f.mapped {
		m = IdentityMapping()
	}
	if f.paramMul != nil {
		f.paramMul.SetVec2(m.Scale)
	}
	if f.paramAdd != nil {
		f.paramAdd.SetVec2(m.Offset)
	}

	f.host.EndFilter(f.effect, f.dims.Width, f.dims.Height)
}
