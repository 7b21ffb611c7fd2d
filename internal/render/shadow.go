package render

import "math"

// ShadowFloor is the residual lit fraction inside a full umbra. Nothing
// renders fully black so surface texture stays legible in eclipse.
const ShadowFloor = 0.15

// analyticRadiusMin is the self radius at which the analytic penumbra
// model replaces the cheaper bounded raymarch.
const analyticRadiusMin = 14.0

// ShadowFactor returns the lit fraction in [ShadowFloor, 1] for a sample
// point, accounting for eclipse shadows cast by the occluders. An empty
// occluder list yields exactly 1. Occluders matching the body's own disc
// are skipped: a body never shadows itself.
func ShadowFactor(cfg Config, px, py float64, self BodyView, occs []Occluder, sunX, sunY float64) float64 {
	if len(occs) == 0 {
		return 1.0
	}
	if self.Radius >= analyticRadiusMin {
		return analyticShadow(cfg, px, py, self, occs, sunX, sunY)
	}
	return raymarchShadow(px, py, self, occs, sunX, sunY)
}

// isSelf reports whether an occluder is the body's own disc.
func isSelf(o Occluder, self BodyView) bool {
	return math.Abs(o.X-self.X) < 1e-6 &&
		math.Abs(o.Y-self.Y) < 1e-6 &&
		math.Abs(o.Radius-self.Radius) < 1e-6
}

// analyticShadow projects each occluder onto the light ray through the
// sample point and evaluates a soft penumbra around its disc. Multiple
// occluders combine by taking the darkest lit fraction.
func analyticShadow(cfg Config, px, py float64, self BodyView, occs []Occluder, sunX, sunY float64) float64 {
	sdx := sunX - px
	sdy := sunY - py
	distSun := math.Hypot(sdx, sdy)
	if distSun < 1e-9 {
		return 1.0
	}
	ldx := sdx / distSun
	ldy := sdy / distSun

	lit := 1.0
	for _, o := range occs {
		if isSelf(o, self) {
			continue
		}
		// Project occluder center onto the ray toward the sun.
		t := (o.X-px)*ldx + (o.Y-py)*ldy
		if t <= 0 || t >= distSun {
			continue
		}
		cx := px + ldx*t
		cy := py + ldy*t
		d := math.Hypot(o.X-cx, o.Y-cy)

		// Penumbra widens with the sun's apparent size and the fraction
		// of the ray the occluder sits at.
		pen := cfg.SunRadius * t / distSun
		umbra := o.Radius - pen
		if umbra < 0 {
			umbra = 0
		}
		outer := o.Radius + pen

		var f float64
		switch {
		case d <= umbra:
			f = ShadowFloor
		case d >= outer:
			f = 1.0
		default:
			f = ShadowFloor + (1-ShadowFloor)*smoothstep(umbra, outer, d)
		}
		if f < lit {
			lit = f
			if lit <= ShadowFloor {
				return ShadowFloor
			}
		}
	}
	return lit
}

// raymarchShadow steps from the sample point toward the sun testing each
// occluder disc. Cheap hard shadows for small bodies: the first hit
// returns the floor, otherwise fully lit.
func raymarchShadow(px, py float64, self BodyView, occs []Occluder, sunX, sunY float64) float64 {
	sdx := sunX - px
	sdy := sunY - py
	distSun := math.Hypot(sdx, sdy)
	if distSun < 1e-9 {
		return 1.0
	}
	ldx := sdx / distSun
	ldy := sdy / distSun

	steps := int(60 + self.Radius*12)
	if steps > 240 {
		steps = 240
	}

	x := px
	y := py
	for i := 0; i < steps; i++ {
		x += ldx
		y += ldy
		// Still inside our own disc: keep marching before testing.
		ddx := x - self.X
		ddy := y - self.Y
		if ddx*ddx+ddy*ddy <= self.Radius*self.Radius {
			continue
		}
		for _, o := range occs {
			if isSelf(o, self) {
				continue
			}
			ox := x - o.X
			oy := y - o.Y
			if ox*ox+oy*oy <= o.Radius*o.Radius {
				return ShadowFloor
			}
		}
	}
	return 1.0
}
