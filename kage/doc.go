// Package kage runs latlong filters on Ebitengine. The effect program is a
// Kage shader embedded under shaders/; the host renders the upstream
// producer into a pooled offscreen image and draws it through the shader.
//
// Typical use inside an ebiten.Game:
//
//	host := kage.NewHost(&kage.ImageSource{Image: panorama}, nil)
//	f, err := latlong.New(host, kage.NewDevice(), settings)
//	...
//	func (g *Game) Update() error { g.filter.Tick(1.0 / 60); return nil }
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.host.SetDestination(screen)
//		g.filter.Render()
//	}
package kage
