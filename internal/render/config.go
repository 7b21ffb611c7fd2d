// Package render draws shaded celestial bodies onto a depth-ordered cell
// canvas: procedural surfaces, eclipse shadows, rings, and atmosphere halos.
package render

import (
	"github.com/litescript/ls-orrery/internal/palette"
)

// ColorMode selects how shaded brightness reaches the terminal.
type ColorMode int

const (
	// ColorTrue shades the foreground color continuously.
	ColorTrue ColorMode = iota
	// ColorIndexed steps brightness through a small discrete ladder,
	// for terminals without truecolor support.
	ColorIndexed
)

// Config holds rendering options read at draw time. All distance-like
// values are in screen cells.
type Config struct {
	// GlyphRamp maps brightness to glyphs, darkest first.
	GlyphRamp string

	// SolidColor shades with color only; surface glyphs are replaced by a
	// full block so the cell color carries all the detail.
	SolidColor bool

	// ForceRamp replaces surface glyphs with ramp glyphs picked by
	// brightness, so the glyph carries shading alongside color.
	ForceRamp bool

	// ColorMode selects continuous or ladder-stepped brightness.
	ColorMode ColorMode

	// SunRadius is the sun's apparent radius in cells, used by the
	// penumbra model.
	SunRadius float64

	// AtmosphereWidth is the halo band width as a fraction of body radius.
	// Zero disables the halo pass.
	AtmosphereWidth float64

	// AtmosphereMax is the halo's peak intensity in [0, 1]. Zero disables
	// the halo pass.
	AtmosphereMax float64
}

// DefaultConfig returns sensible rendering defaults.
func DefaultConfig() Config {
	return Config{
		GlyphRamp:       " .:-=+*#%@",
		SunRadius:       9,
		AtmosphereWidth: 0.22,
		AtmosphereMax:   0.55,
	}
}

// BodyView is the per-frame description of a body to draw. Built from
// simulation state each frame; never persisted.
type BodyView struct {
	X, Y   float64 // screen center, cells
	Radius float64 // projected radius, cells
	Seed   int64
	Kind   palette.Kind
	Spin   float64 // spin phase, turns
	Tilt   float64 // axis tilt, radians
	Depth  float64 // paint-order depth, higher is nearer
	Ring   bool    // draw the ring pass after the disc
}

// Occluder is another body's screen disc usable as an eclipse caster.
type Occluder struct {
	X, Y   float64
	Radius float64
	Depth  float64
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep eases t between edges a and b, clamped to [0, 1].
func smoothstep(a, b, t float64) float64 {
	if a == b {
		if t < a {
			return 0
		}
		return 1
	}
	x := clamp01((t - a) / (b - a))
	return x * x * (3 - 2*x)
}
