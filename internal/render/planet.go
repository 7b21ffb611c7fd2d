package render

import (
	"math"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/palette"
)

// Renderer rasterizes bodies into a canvas buffer. It owns the per-body
// LOD state; everything else it computes is derived per call.
type Renderer struct {
	cfg  Config
	lods *LodMap
}

// NewRenderer creates a renderer with the given configuration.
func NewRenderer(cfg Config) *Renderer {
	if cfg.GlyphRamp == "" {
		cfg.GlyphRamp = DefaultConfig().GlyphRamp
	}
	return &Renderer{cfg: cfg, lods: NewLodMap()}
}

// Config returns the active render configuration.
func (r *Renderer) Config() Config { return r.cfg }

// SetConfig replaces the render configuration. LOD state is preserved.
func (r *Renderer) SetConfig(cfg Config) {
	if cfg.GlyphRamp == "" {
		cfg.GlyphRamp = DefaultConfig().GlyphRamp
	}
	r.cfg = cfg
}

// DrawPlanet rasterizes a planet disc plus its ring and atmosphere passes.
// occs may include the body itself; it is never treated as its own
// occluder. allowLod enables super-sampled block shading for large discs.
func (r *Renderer) DrawPlanet(buf *canvas.Buffer, view BodyView, sunX, sunY float64, occs []Occluder, allowLod bool) {
	if view.Radius <= 0 {
		return
	}
	r.drawDisc(buf, view, sunX, sunY, occs, allowLod, false)
	if view.Ring {
		r.DrawRing(buf, view, sunX, sunY)
	}
	r.drawAtmosphere(buf, view, occs, sunX, sunY)
}

// DrawMoon rasterizes a moon. The moon's spin phase is made relative to
// its parent so tidally influenced rotation reads correctly as the pair
// orbits: the visible face drifts with the parent's own spin.
func (r *Renderer) DrawMoon(buf *canvas.Buffer, view BodyView, parent BodyView, sunX, sunY float64, occs []Occluder, allowLod bool) {
	if view.Radius <= 0 {
		return
	}
	view.Spin += parent.Spin * 0.5
	r.drawDisc(buf, view, sunX, sunY, occs, allowLod, false)
	r.drawAtmosphere(buf, view, occs, sunX, sunY)
}

// DrawSun rasterizes the sun: granulated emissive surface, no external
// lighting, no shadows, plus its own halo.
func (r *Renderer) DrawSun(buf *canvas.Buffer, view BodyView) {
	if view.Radius <= 0 {
		return
	}
	view.Kind = palette.Sun
	r.drawDisc(buf, view, view.X, view.Y, nil, false, true)
	r.drawSunHalo(buf, view)
}

// drawDisc is the main nested-loop rasterization pass over the body's
// bounding square. One surface/lighting evaluation may be reused for a
// step x step block of output cells under LOD.
func (r *Renderer) drawDisc(buf *canvas.Buffer, view BodyView, sunX, sunY float64, occs []Occluder, allowLod, emissiveBody bool) {
	lx, ly := ComputeLightDirection(view.X, view.Y, sunX, sunY)
	step := r.lods.Step(lodKey(view.Seed), view.Radius, allowLod)

	cosT := math.Cos(view.Tilt)
	sinT := math.Sin(view.Tilt)

	minX := int(math.Floor(view.X - view.Radius))
	maxX := int(math.Ceil(view.X + view.Radius))
	minY := int(math.Floor(view.Y - view.Radius))
	maxY := int(math.Ceil(view.Y + view.Radius))

	for cy := minY; cy <= maxY; cy += step {
		for cx := minX; cx <= maxX; cx += step {
			// Sample at the block center.
			half := float64(step-1) * 0.5
			sx := float64(cx) + 0.5 + half
			sy := float64(cy) + 0.5 + half

			dx := (sx - view.X) / view.Radius
			dy := (sy - view.Y) / view.Radius
			rr := dx*dx + dy*dy
			if rr > 1 {
				// The block center is off the disc; edge cells are still
				// painted individually below with a clamped sample.
				n := math.Sqrt(rr)
				dx /= n * 1.0001
				dy /= n * 1.0001
				rr = dx*dx + dy*dy
			}
			nz := math.Sqrt(1 - rr)

			// Axis tilt rotates the texture frame only; lighting stays in
			// screen space.
			ux := dx*cosT + dy*sinT
			uy := -dx*sinT + dy*cosT

			smp := SampleSurface(view.Seed, view.Kind, ux, uy, nz, view.Spin)

			var col canvas.RGB
			var lit float64
			if emissiveBody {
				lit = 1
				col = smp.Color
				if smp.Emissive > 0 {
					col = col.Add(smp.EmissiveTint.Scale(smp.Emissive * 0.25 * nz))
				}
			} else {
				ndotl := dx*lx + dy*ly
				light := LightAmount(ndotl, nz)
				shadow := 1.0
				if len(occs) > 0 {
					shadow = ShadowFactor(r.cfg, sx, sy, view, occs, sunX, sunY)
				}
				lit = light * shadow
				col, lit = ApplyEmissive(smp.Color, smp.EmissiveTint, smp.Emissive, ndotl, lit)
				col = ShadeColorForLight(col, lit, r.cfg)
				col = AddRimLift(col, nz, lit)
			}

			glyph := r.glyphFor(smp.Glyph, lit, nz)
			bg := col.Scale(0.18)

			// Paint the block, testing each cell against the disc.
			for by := 0; by < step; by++ {
				for bx := 0; bx < step; bx++ {
					px := cx + bx
					py := cy + by
					ex := float64(px) + 0.5 - view.X
					ey := float64(py) + 0.5 - view.Y
					if ex*ex+ey*ey > view.Radius*view.Radius {
						continue
					}
					buf.Set(px, py, glyph, col, bg, view.Depth)
				}
			}
		}
	}
}

// glyphFor applies the configured glyph policy to a surface glyph.
func (r *Renderer) glyphFor(surface rune, lit, nz float64) rune {
	switch {
	case r.cfg.SolidColor:
		return '█'
	case r.cfg.ForceRamp:
		bright := clamp01(lit*0.85 + nz*0.15)
		return pickGlyph(r.cfg.GlyphRamp, bright)
	default:
		return surface
	}
}

// drawSunHalo renders the corona band around the sun disc.
func (r *Renderer) drawSunHalo(buf *canvas.Buffer, view BodyView) {
	width := 0.35
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
			if f < minHaloIntensity {
				continue
			}
			col := canvas.RGB{
				R: canvas.Clamp8(255 * f),
				G: canvas.Clamp8(200 * f),
				B: canvas.Clamp8(90 * f),
			}
			buf.Set(cx, cy, pickGlyph(haloGlyphs, f*0.8), col, canvas.RGB{}, view.Depth-0.5)
		}
	}
}
