package latlong

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 integer settings simultaneously. Create one via
// the constructors (TweenView, TweenRadius, SweepPhi) and call Update(dt) each
// frame. Values are rounded to whole degrees and written into the target
// Settings; when Update reports a change the caller passes the Settings to
// Filter.Update.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	keys   [4]string
	wrap   [4]bool // store the value normalised into [0, 360)
	target *Settings
	// Loop restarts the tweens from their start values once they finish.
	Loop bool
	Done bool
}

func (g *TweenGroup) add(key string, to int, duration float32, fn ease.TweenFunc) {
	from := g.target.Int(key)
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.keys[g.count] = key
	g.count++
}

// Update advances all tweens by dt seconds and writes the rounded values to
// the target. It reports whether any setting changed.
func (g *TweenGroup) Update(dt float32) bool {
	if g.Done || g.target == nil {
		return false
	}

	changed := false
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		v := int(math.Round(float64(val)))
		if g.wrap[i] {
			v = normalizeDegrees(v)
		}
		if v != g.target.Int(g.keys[i]) || !g.target.Has(g.keys[i]) {
			g.target.SetInt(g.keys[i], v)
			changed = true
		}
		if !finished {
			allDone = false
		}
	}

	if allDone && g.Loop {
		for i := 0; i < g.count; i++ {
			g.tweens[i].Reset()
		}
		allDone = false
	}
	g.Done = allDone
	return changed
}

// TweenView creates a TweenGroup that moves theta and phi to the given angles
// over duration seconds.
func TweenView(s *Settings, toTheta, toPhi int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(KeyTheta, toTheta, duration, fn)
	g.add(KeyPhi, toPhi, duration, fn)
	return g
}

// TweenRadius creates a TweenGroup that zooms the radius to the given value.
func TweenRadius(s *Settings, to int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(KeyRadius, to, duration, fn)
	return g
}

// SweepPhi creates a looping TweenGroup that pans phi linearly from its
// current value through one full turn every period seconds. Written values
// stay in [0, 360).
func SweepPhi(s *Settings, period float32) *TweenGroup {
	g := &TweenGroup{target: s, Loop: true}
	g.add(KeyPhi, s.Int(KeyPhi)+360, period, ease.Linear)
	g.wrap[0] = true
	return g
}
