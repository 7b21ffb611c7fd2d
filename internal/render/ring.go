package render

import (
	"math"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/noise"
	"github.com/litescript/ls-orrery/internal/palette"
)

// ringGlyphs maps final brightness to density glyphs, faintest first.
const ringGlyphs = ".:=#"

// minRingGap is the guaranteed band width: outer multiplier never comes
// closer than this to the inner multiplier.
const minRingGap = 0.20

// ringParams are the seed-derived geometry of a body's ring system.
// All multipliers are relative to the planet radius.
type ringParams struct {
	rot      float64 // ring-plane rotation on screen, radians
	inner    float64 // inner radius multiplier in [1.15, 1.35]
	outer    float64 // outer radius multiplier in [1.35, 1.75]
	squash   float64 // plane-tilt vertical squash factor
	holeProb float64 // stochastic dropout probability
	minorA   float64 // minor gap band positions in (0, 1)
	minorB   float64
}

// ringParamsFor derives ring geometry from a seed. Deterministic, and the
// outer multiplier is always at least inner+minRingGap.
func ringParamsFor(seed int64) ringParams {
	p := ringParams{
		rot:      (noise.Hash01(seed, 101, 7) - 0.5) * 0.9,
		inner:    1.15 + 0.20*noise.Hash01(seed, 23, 5),
		outer:    1.35 + 0.40*noise.Hash01(seed, 57, 11),
		squash:   0.26 + 0.16*noise.Hash01(seed, 91, 3),
		holeProb: 0.12 + 0.18*noise.Hash01(seed, 17, 43),
		minorA:   0.15 + 0.18*noise.Hash01(seed, 71, 19),
		minorB:   0.68 + 0.20*noise.Hash01(seed, 83, 31),
	}
	if p.outer < p.inner+minRingGap {
		p.outer = p.inner + minRingGap
	}
	return p
}

// ringPlaneRadius maps a screen offset to ring-plane radial distance:
// unrotate by the ring rotation, then undo the plane-tilt squash.
func ringPlaneRadius(dx, dy float64, p ringParams) float64 {
	cosR := math.Cos(p.rot)
	sinR := math.Sin(p.rot)
	rx := dx*cosR + dy*sinR
	ry := (-dx*sinR + dy*cosR) / p.squash
	return math.Hypot(rx, ry)
}

// ringGap multiplicatively dims density inside a soft gap using a linear
// ease from full dimming at the gap center to none at its half-width edge.
func ringGap(density, band, center, halfWidth, depth float64) float64 {
	d := math.Abs(band - center)
	if d >= halfWidth {
		return density
	}
	ease := d / halfWidth
	return density * (1 - depth*(1-ease))
}

// DrawRing renders a planet's ring system as a peer pass after the main
// disc. Ring cells are deliberately not eclipse-shadowed; feeding the
// planet's shadow back into its own ring produces banding artifacts. The
// planet disc still hides the far half of the ring through draw order.
func (r *Renderer) DrawRing(buf *canvas.Buffer, view BodyView, sunX, sunY float64) {
	if view.Radius <= 0 {
		return
	}
	p := ringParamsFor(view.Seed)
	dust := palette.Dustify(palette.ForKind(view.Kind, palette.PickVariant(view.Seed, view.Kind)))
	lx, ly := ComputeLightDirection(view.X, view.Y, sunX, sunY)

	cosR := math.Cos(p.rot)
	sinR := math.Sin(p.rot)
	extent := view.Radius * p.outer
	minX := int(math.Floor(view.X - extent))
	maxX := int(math.Ceil(view.X + extent))
	minY := int(math.Floor(view.Y - extent*p.squash - 1))
	maxY := int(math.Ceil(view.Y + extent*p.squash + 1))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			dx := float64(cx) + 0.5 - view.X
			dy := float64(cy) + 0.5 - view.Y

			// Into ring-plane coordinates: unrotate, then unsquash.
			rx := dx*cosR + dy*sinR
			ry := (-dx*sinR + dy*cosR) / p.squash
			rad := math.Hypot(rx, ry) / view.Radius
			if rad < p.inner || rad > p.outer {
				continue
			}

			// Near half of the ring passes in front of the disc; the far
			// half stays behind it.
			inDisc := dx*dx+dy*dy <= view.Radius*view.Radius
			if inDisc && ry < 0 {
				continue
			}

			band := (rad - p.inner) / (p.outer - p.inner)

			// Inward-biased baseline plus two sinusoid layers and an FBm
			// layer breaking up the circles.
			density := 0.50 + 0.50*(1-band)
			density *= 0.72 + 0.28*math.Sin(band*34+p.rot*5)
			density *= 0.82 + 0.18*math.Sin(band*9-1.3)
			density *= 0.65 + 0.35*noise.FBm(view.Seed^0x4d1c5, rx*0.33, ry*0.33, 3, 2.0, 0.5)

			// One major gap near mid-band, two seed-placed minor gaps.
			density = ringGap(density, band, 0.5, 0.07, 0.85)
			density = ringGap(density, band, p.minorA, 0.035, 0.6)
			density = ringGap(density, band, p.minorB, 0.035, 0.6)

			// Stochastic keep test softens the cutout edges.
			keep := density*(1-p.holeProb) + 0.04
			if noise.Hash01(view.Seed^0x77e3, cx, cy) > keep {
				continue
			}

			// Directional lighting against the local radial direction.
			rlen := math.Hypot(dx, dy)
			var facing float64
			if rlen > 1e-9 {
				facing = (dx*lx + dy*ly) / rlen
			}
			lit := 0.45 + 0.55*clamp01(0.5+0.5*facing)

			tone := 0.0
			switch {
			case density > 0.66:
				tone = 1.0
			case density > 0.33:
				tone = 0.5
			}
			col := ShadeColorForLight(palette.Tone3(dust.Dark, dust.Mid, dust.Light, tone), lit, r.cfg)

			bright := clamp01(density * lit)
			buf.Set(cx, cy, pickGlyph(ringGlyphs, bright), col, canvas.RGB{}, view.Depth)
		}
	}
}
