package kage

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/latlong"
)

// uniformNames maps the effect contract's parameter names to the exported
// Kage uniforms.
var uniformNames = map[string]string{
	latlong.ParamMul: "MulVal",
	latlong.ParamAdd: "AddVal",
}

// Param writes a vec2 uniform in place.
type Param struct {
	value []float32 // persistent slice stored in the uniforms map
}

// SetVec2 updates the uniform for the next draw.
func (p *Param) SetVec2(v latlong.Vec2) {
	p.value[0] = float32(v.X)
	p.value[1] = float32(v.Y)
}

// Effect is a compiled Kage program with its uniform map.
type Effect struct {
	name     string
	shader   *ebiten.Shader
	uniforms map[string]any
	params   map[string]*Param
	shaderOp ebiten.DrawRectShaderOptions
}

func newEffect(name string, s *ebiten.Shader) *Effect {
	e := &Effect{
		name:     name,
		shader:   s,
		uniforms: make(map[string]any, len(uniformNames)),
		params:   make(map[string]*Param, len(uniformNames)),
	}
	for param, uniform := range uniformNames {
		p := &Param{value: make([]float32, 2)}
		e.uniforms[uniform] = p.value
		e.params[param] = p
	}
	e.params[latlong.ParamMul].SetVec2(latlong.Vec2{X: 1, Y: 1})
	return e
}

// Param returns mul_val or add_val, and nil for any other name.
func (e *Effect) Param(name string) latlong.Param {
	if p, ok := e.params[name]; ok {
		return p
	}
	return nil
}

// Destroy deallocates the shader.
func (e *Effect) Destroy() {
	if e.shader != nil {
		e.shader.Deallocate()
		e.shader = nil
	}
}

// draw renders src through the program into dst at w x h.
func (e *Effect) draw(dst, src *ebiten.Image, w, h int) {
	if e.shader == nil {
		return
	}
	e.shaderOp.Images[0] = src
	e.shaderOp.Uniforms = e.uniforms
	dst.DrawRectShader(w, h, e.shader, &e.shaderOp)
}
