package render

import (
	"math"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/palette"
)

// haloGlyphs map halo intensity to glyphs, faintest first.
const haloGlyphs = "░▒▓█"

// minHaloIntensity is the cutoff below which halo cells are skipped.
const minHaloIntensity = 0.06

// haloFalloff is the smoothed interpolation from the limb outward:
// 1 at the limb, 0 at the band's outer edge.
func haloFalloff(dist, width float64) float64 {
	return 1 - smoothstep(1, 1+width, dist)
}

// drawAtmosphere renders a soft glow band just outside the body limb,
// brighter on the day side and damped inside eclipse shadow. Disabled when
// the configured width or peak intensity is (near) zero, or when the kind
// has no atmosphere hue.
func (r *Renderer) drawAtmosphere(buf *canvas.Buffer, view BodyView, occs []Occluder, sunX, sunY float64) {
	width := r.cfg.AtmosphereWidth
	maxI := r.cfg.AtmosphereMax
	if width < 1e-3 || maxI < 1e-3 || view.Radius <= 0 {
		return
	}
	hue, ok := palette.Haze(view.Kind)
	if !ok {
		return
	}

	lx, ly := ComputeLightDirection(view.X, view.Y, sunX, sunY)
	outer := view.Radius * (1 + width)
	minX := int(math.Floor(view.X - outer))
	maxX := int(math.Ceil(view.X + outer))
	minY := int(math.Floor(view.Y - outer))
	maxY := int(math.Ceil(view.Y + outer))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			dx := float64(cx) + 0.5 - view.X
			dy := float64(cy) + 0.5 - view.Y
			dist := math.Hypot(dx, dy) / view.Radius
			if dist <= 1 || dist > 1+width {
				continue
			}

			f := haloFalloff(dist, width)

			// Day-side bias from the limb direction against the light.
			dlen := math.Hypot(dx, dy)
			facing := (dx*lx + dy*ly) / dlen
			f *= 0.35 + 0.65*clamp01(0.5+0.5*facing)

			// Eclipse damps the halo along with the surface.
			f *= ShadowFactor(r.cfg, float64(cx)+0.5, float64(cy)+0.5, view, occs, sunX, sunY)

			intensity := maxI * f
			if intensity < minHaloIntensity {
				continue
			}

			buf.Set(cx, cy, pickGlyph(haloGlyphs, intensity),
				hue.Scale(0.35+0.65*intensity), canvas.RGB{}, view.Depth-0.5)
		}
	}
}
