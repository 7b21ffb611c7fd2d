package render

import (
	"math"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/noise"
	"github.com/litescript/ls-orrery/internal/palette"
)

// Sample is the surface contribution at one body-local direction: base
// color, texture glyph, and an optional emissive term (city lights,
// molten glow) applied on the night side by the lighting model.
type Sample struct {
	Color        canvas.RGB
	Glyph        rune
	Emissive     float64
	EmissiveTint canvas.RGB
}

// Field seeds salting the independent noise layers of one body.
const (
	saltDetail = 0x51ab3d
	saltLand   = 0x2c9e11
	saltRelief = 0x7f40c7
	saltPop    = 0x19d2f5
	saltStorm  = 0x633af1
)

// terrainClass records which branch of the continents classifier produced
// a sample. Glyphs overlap between branches (ocean waves and drylands both
// use '~'), so downstream rules key on this, never on the glyph.
type terrainClass int

const (
	terrainNone terrainClass = iota
	terrainOcean
	terrainIce
	terrainMountain
	terrainDryland
	terrainForest
)

// surfaceCtx carries the precomputed fields a kind rule consumes.
type surfaceCtx struct {
	seed     int64
	pal      palette.Palette
	lon, lat float64 // lon in turns, lat in [-1, 1]
	macro    float64 // low-frequency tone field
	detail   float64 // high-frequency detail field
	terrain  terrainClass
}

// surfaceRule describes one texture kind: field frequencies plus the rule
// mapping fields to tone and glyph. A table of strategies, so adding a
// kind is one entry rather than a switch arm.
type surfaceRule struct {
	macroScale  float64
	detailScale float64
	macroOct    int
	detailOct   int
	sample      func(c *surfaceCtx) Sample
}

// pickGlyph indexes a glyph set by t in [0, 1].
func pickGlyph(set string, t float64) rune {
	rs := []rune(set)
	i := int(clamp01(t) * float64(len(rs)))
	if i >= len(rs) {
		i = len(rs) - 1
	}
	return rs[i]
}

// tonal builds a plain sample from a tone value and glyph set.
func (c *surfaceCtx) tonal(tone float64, glyphs string) Sample {
	return Sample{
		Color: c.pal.Tone(clamp01(tone)),
		Glyph: pickGlyph(glyphs, c.detail),
	}
}

var surfaceRules = map[palette.Kind]surfaceRule{
	palette.Rocky: {1.8, 5.5, 4, 5, func(c *surfaceCtx) Sample {
		return c.tonal(c.macro*0.8+c.detail*0.2, ".,:;o")
	}},
	palette.Cratered: {1.6, 6.5, 3, 5, sampleCratered},
	palette.Metallic: {1.4, 5.0, 3, 4, func(c *surfaceCtx) Sample {
		sheen := 0.5 + 0.5*math.Sin(c.lat*9+c.macro*4)
		return c.tonal(c.macro*0.55+sheen*0.45, "-=+*#")
	}},
	palette.Barren: {1.5, 4.5, 3, 4, func(c *surfaceCtx) Sample {
		return c.tonal(c.macro, "..,:;")
	}},
	palette.Desert: {1.7, 6.0, 4, 4, func(c *surfaceCtx) Sample {
		band := 0.5 + 0.5*math.Sin(c.lat*7+c.detail*2.5)
		return c.tonal(c.macro*0.7+band*0.3, ".~-=:")
	}},
	palette.Dune: {1.9, 8.0, 3, 5, func(c *surfaceCtx) Sample {
		ridge := math.Abs(math.Sin(c.lon*2*math.Pi*3 + c.detail*5))
		return c.tonal(c.macro*0.6+ridge*0.4, "~~-=^")
	}},
	palette.Jungle: {2.0, 6.5, 4, 5, func(c *surfaceCtx) Sample {
		return c.tonal(0.35+c.macro*0.5+c.detail*0.15, ",;*%&")
	}},
	palette.Oceanic: {1.6, 7.0, 4, 5, func(c *surfaceCtx) Sample {
		return c.tonal(c.macro*0.5+0.15, "~~-~:")
	}},
	palette.Continents: {2.2, 7.0, 5, 4, sampleContinents},
	palette.EarthLike:  {2.2, 7.0, 5, 4, sampleContinents},
	palette.IceWorld: {1.5, 5.0, 3, 4, func(c *surfaceCtx) Sample {
		return c.tonal(0.5+c.macro*0.5, ".,:o*")
	}},
	palette.IceCracked: {1.5, 6.5, 3, 5, sampleIceCracked},
	palette.Lava:       {1.8, 6.0, 4, 5, sampleLava},
	palette.Toxic: {2.1, 5.5, 4, 4, func(c *surfaceCtx) Sample {
		// Swirl: detail field shifts the macro sampling longitude.
		sw := noise.SeamlessFBm(c.seed, c.lon+c.detail*0.22, c.lat*0.85, 2.1, 4)
		return c.tonal(sw*0.7+c.detail*0.3, ".~:;%")
	}},
	palette.GasBands: {1.2, 4.0, 3, 4, func(c *surfaceCtx) Sample {
		return c.tonal(gasBandTone(c, 0.10), "-=~--")
	}},
	palette.GasSwirl: {1.2, 4.5, 3, 5, func(c *surfaceCtx) Sample {
		return c.tonal(gasBandTone(c, 0.32), "~-=~s")
	}},
	palette.GasStorm: {1.2, 4.0, 3, 4, sampleGasStorm},
	palette.Crystal: {1.6, 7.5, 3, 5, func(c *surfaceCtx) Sample {
		// Quantized facets
		facet := math.Floor(c.detail*5) / 4
		return c.tonal(c.macro*0.4+facet*0.6, "/\\<>*")
	}},
	palette.Sun: {1.3, 5.0, 3, 5, func(c *surfaceCtx) Sample {
		s := c.tonal(0.45+c.macro*0.55, ".:*%@")
		s.Emissive = 1
		s.EmissiveTint = canvas.RGB{R: 255, G: 180, B: 60}
		return s
	}},
}

// SampleSurface maps (seed, kind, post-tilt direction, spin) to a surface
// sample. Pure: identical inputs always give identical outputs.
func SampleSurface(seed int64, kind palette.Kind, nx, ny, nz, spin float64) Sample {
	rule, ok := surfaceRules[kind]
	if !ok {
		rule = surfaceRules[palette.Rocky]
	}

	lon := math.Atan2(nx, nz)/(2*math.Pi) + 0.5 + spin
	sy := ny
	if sy < -1 {
		sy = -1
	} else if sy > 1 {
		sy = 1
	}
	lat := math.Asin(sy) / (math.Pi / 2)

	c := surfaceCtx{
		seed: seed,
		pal:  palette.ForKind(kind, palette.PickVariant(seed, kind)),
		lon:  lon,
		lat:  lat,
	}
	c.macro = noise.SeamlessFBm(seed, lon, lat*0.85, rule.macroScale, rule.macroOct)
	c.detail = noise.SeamlessFBm(seed^saltDetail, lon, lat*0.85, rule.detailScale, rule.detailOct)

	s := rule.sample(&c)
	if kind == palette.EarthLike {
		addCityLights(&c, &s)
	}
	return s
}

func sampleCratered(c *surfaceCtx) Sample {
	tone := c.macro*0.75 + c.detail*0.25
	glyphs := ".,:;o"
	// Crater floors: sharp dark pockets where the detail field peaks.
	if c.detail > 0.78 {
		tone *= 0.45
		glyphs = "oO0()"
	}
	return c.tonal(tone, glyphs)
}

func sampleIceCracked(c *surfaceCtx) Sample {
	// Cracks live in a narrow band of the detail field.
	if c.detail > 0.47 && c.detail < 0.53 {
		return Sample{Color: c.pal.Dark, Glyph: '/'}
	}
	return c.tonal(0.45+c.macro*0.55, ".,:o*")
}

func sampleLava(c *surfaceCtx) Sample {
	if c.detail > 0.72 {
		// Molten channels glow through the crust.
		glow := (c.detail - 0.72) / 0.28
		return Sample{
			Color:        c.pal.Tone(0.7 + glow*0.3),
			Glyph:        pickGlyph("*%&@", glow),
			Emissive:     glow * 0.8,
			EmissiveTint: canvas.RGB{R: 255, G: 120, B: 30},
		}
	}
	return c.tonal(c.macro*0.45, ".,:;#")
}

// gasBandTone computes latitude bands distorted by the macro field.
// turbulence controls how far the bands wander.
func gasBandTone(c *surfaceCtx, turbulence float64) float64 {
	bands := 0.5 + 0.5*math.Sin(c.lat*11+(c.macro-0.5)*turbulence*22)
	return bands*0.62 + c.macro*0.28 + c.detail*0.10
}

func sampleGasStorm(c *surfaceCtx) Sample {
	tone := gasBandTone(c, 0.16)
	// One persistent storm oval per body, placed by seed.
	stormLon := noise.Hash01(c.seed^saltStorm, 3, 11)
	stormLat := noise.Hash01(c.seed^saltStorm, 7, 29)*0.9 - 0.45
	dLon := math.Mod(c.lon-stormLon, 1)
	if dLon > 0.5 {
		dLon -= 1
	} else if dLon < -0.5 {
		dLon += 1
	}
	dLat := (c.lat - stormLat) * 0.5
	d := math.Hypot(dLon*2.4, dLat*3.2)
	if d < 0.22 {
		storm := 1 - smoothstep(0.10, 0.22, d)
		return Sample{
			Color: c.pal.Tone(clamp01(tone*0.4 + 0.6 + storm*0.2)),
			Glyph: pickGlyph("oO@", storm),
		}
	}
	return c.tonal(tone, "-=~--")
}

// Land classification thresholds for continents/earth-like worlds.
const (
	seaLevel     = 0.52
	shoreBand    = 0.045
	iceLatitude  = 0.78
	mountainLine = 0.72
)

func sampleContinents(c *surfaceCtx) Sample {
	land := noise.SeamlessFBm(c.seed^saltLand, c.lon, c.lat*0.85, 2.4, 5)
	relief := noise.SeamlessFBm(c.seed^saltRelief, c.lon, c.lat*0.85, 6.5, 4)

	if land < seaLevel {
		c.terrain = terrainOcean
		// Ocean, deeper is darker; waves from the detail field.
		depth := (seaLevel - land) / seaLevel
		tone := clamp01(0.30 - depth*0.26 + c.detail*0.06)
		g := '~'
		if c.detail > 0.62 {
			g = '-'
		}
		if land > seaLevel-shoreBand {
			tone += 0.10 // shallows
		}
		return Sample{Color: c.pal.Tone(tone), Glyph: g}
	}

	absLat := math.Abs(c.lat)
	switch {
	case absLat > iceLatitude+(relief-0.5)*0.08:
		// Polar caps
		c.terrain = terrainIce
		t := 0.85 + c.detail*0.15
		return Sample{Color: canvas.RGB{
			R: canvas.Clamp8(200 + t*40),
			G: canvas.Clamp8(210 + t*40),
			B: canvas.Clamp8(225 + t*30),
		}, Glyph: pickGlyph("*o.", c.detail)}
	case relief > mountainLine:
		c.terrain = terrainMountain
		h := (relief - mountainLine) / (1 - mountainLine)
		return Sample{Color: c.pal.Tone(0.55 + h*0.40), Glyph: pickGlyph("^^A", h)}
	case absLat < 0.28 && relief < 0.38:
		// Equatorial drylands
		c.terrain = terrainDryland
		return Sample{Color: c.pal.Tone(0.72 + c.detail*0.12), Glyph: pickGlyph(".,~", c.detail)}
	default:
		// Forest and plains
		c.terrain = terrainForest
		green := 0.42 + c.detail*0.18 + (land-seaLevel)*0.5
		return Sample{Color: c.pal.Tone(clamp01(green)), Glyph: pickGlyph(",;*", c.detail)}
	}
}

// addCityLights adds the earth-like emissive term on temperate land.
// Population clusters come from their own noise field; intensity grows
// with population squared so only dense clusters glow.
func addCityLights(c *surfaceCtx, s *Sample) {
	// Ocean, ice, and mountain carry no population.
	if c.terrain != terrainDryland && c.terrain != terrainForest {
		return
	}
	pop := noise.SeamlessFBm(c.seed^saltPop, c.lon, c.lat*0.85, 3.4, 4)
	if pop <= 0.55 {
		return
	}
	p := (pop - 0.55) / 0.45
	s.Emissive = clamp01(p * p)
	if noise.Hash01(c.seed^saltPop, 13, 37) < 0.7 {
		s.EmissiveTint = canvas.RGB{R: 255, G: 214, B: 150} // sodium warm
	} else {
		s.EmissiveTint = canvas.RGB{R: 190, G: 210, B: 255} // led cool
	}
}
