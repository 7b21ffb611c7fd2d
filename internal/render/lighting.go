package render

import (
	"math"

	"github.com/litescript/ls-orrery/internal/canvas"
)

// Ambient floors. Solid-color mode gets a lower floor because the cell
// color is the only shading channel and needs the extra contrast range.
const (
	ambientSolid = 0.10
	ambientGlyph = 0.22
)

// fallbackLight is used when a body sits on top of the sun on screen.
// Pointing up-left keeps the terminator visible at any zoom.
var fallbackLightX, fallbackLightY = -math.Sqrt2 / 2, -math.Sqrt2 / 2

// lightBlendBand is the screen distance in cells over which the true
// light direction blends toward the fallback near the sun's position.
const lightBlendBand = 4.0

// ComputeLightDirection returns the unit light direction from a body toward
// the sun in screen space. When the body is within a few cells of the sun's
// screen position the true direction is blended toward a fixed fallback so
// the terminator does not pop as the body crosses the sun.
func ComputeLightDirection(bodyX, bodyY, sunX, sunY float64) (float64, float64) {
	dx := sunX - bodyX
	dy := sunY - bodyY
	d := math.Hypot(dx, dy)
	if d < 1e-9 {
		return fallbackLightX, fallbackLightY
	}
	lx := dx / d
	ly := dy / d
	if d < lightBlendBand {
		t := smoothstep(0, lightBlendBand, d)
		lx = fallbackLightX + t*(lx-fallbackLightX)
		ly = fallbackLightY + t*(ly-fallbackLightY)
		n := math.Hypot(lx, ly)
		if n < 1e-9 {
			return fallbackLightX, fallbackLightY
		}
		lx /= n
		ly /= n
	}
	return lx, ly
}

// LightAmount shapes the raw surface/light dot product into a shading
// factor: a soft day/night transition multiplied by limb darkening.
func LightAmount(ndotl, nz float64) float64 {
	day := smoothstep(-0.18, 0.88, ndotl)
	limb := 0.78 + 0.22*nz
	return day * limb
}

// indexedLadder steps brightness for indexed-color terminals.
var indexedLadder = []float64{0.15, 0.4, 0.7, 1.0}

// ShadeColorForLight multiplies a color by (ambient + (1-ambient)*light01).
// light01 outside [0, 1] is clamped. In indexed mode brightness snaps to a
// small discrete ladder instead of scaling continuously.
func ShadeColorForLight(c canvas.RGB, light01 float64, cfg Config) canvas.RGB {
	light01 = clamp01(light01)

	ambient := ambientGlyph
	if cfg.SolidColor {
		ambient = ambientSolid
	}
	f := ambient + (1-ambient)*light01

	if cfg.ColorMode == ColorIndexed {
		step := indexedLadder[0]
		for _, s := range indexedLadder {
			if f >= s-1e-9 {
				step = s
			}
		}
		f = step
	}
	return c.Scale(f)
}

// AddRimLift adds a warm additive boost near the limb, scaled down on the
// unlit side so the night limb stays dark.
func AddRimLift(c canvas.RGB, nz, lit float64) canvas.RGB {
	boost := math.Pow(clamp01(1-nz), 1.8) * 0.30
	boost *= 0.25 + 0.75*clamp01(lit)
	if boost <= 0 {
		return c
	}
	return c.Add(canvas.RGB{
		R: canvas.Clamp8(boost * 255),
		G: canvas.Clamp8(boost * 200),
		B: canvas.Clamp8(boost * 130),
	})
}

// cityLightThreshold is the ndotl value below which city lights fade in.
const cityLightThreshold = 0.06

// ApplyEmissive blends a night-side emissive contribution (city lights,
// molten glow) into a shaded color and returns the adjusted color together
// with the lifted lit value, so emissive terrain never renders pure black.
func ApplyEmissive(c canvas.RGB, tint canvas.RGB, emissive, ndotl, lit float64) (canvas.RGB, float64) {
	if emissive <= 0 {
		return c, lit
	}
	// Gate by how deep into the night side the cell is.
	gate := smoothstep(cityLightThreshold, cityLightThreshold-0.30, ndotl)
	glow := emissive * gate
	if glow <= 0 {
		return c, lit
	}
	out := c.Add(tint.Scale(glow))
	lifted := lit + glow*0.35
	if lifted > 1 {
		lifted = 1
	}
	return out, lifted
}
