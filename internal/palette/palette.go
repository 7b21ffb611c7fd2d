// Package palette defines surface texture kinds and their deterministic
// three-tone color palettes.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/noise"
)

// Kind identifies a procedural surface texture family.
type Kind int

const (
	Rocky Kind = iota
	Cratered
	Metallic
	Barren
	Desert
	Dune
	Jungle
	Oceanic
	Continents
	EarthLike
	IceWorld
	IceCracked
	Lava
	Toxic
	GasBands
	GasSwirl
	GasStorm
	Crystal
	Sun

	kindCount
)

// String returns a human-readable kind name for HUD display.
func (k Kind) String() string {
	names := [...]string{
		"rocky", "cratered", "metallic", "barren", "desert", "dune",
		"jungle", "oceanic", "continents", "earth-like", "ice world",
		"ice cracked", "lava", "toxic", "gas bands", "gas swirl",
		"gas storm", "crystal", "sun",
	}
	if k < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// IsGas reports whether the kind is a gas giant texture.
func (k Kind) IsGas() bool {
	return k == GasBands || k == GasSwirl || k == GasStorm
}

// Count returns the number of texture kinds, excluding Sun.
func Count() int { return int(kindCount) - 1 }

// Palette holds the three tones driving surface shading.
type Palette struct {
	Dark, Mid, Light canvas.RGB
}

// variants lists the selectable palettes per kind, darkest tone first.
var variants = map[Kind][]Palette{
	Rocky: {
		{canvas.RGB{R: 58, G: 48, B: 42}, canvas.RGB{R: 124, G: 108, B: 92}, canvas.RGB{R: 190, G: 176, B: 158}},
		{canvas.RGB{R: 52, G: 44, B: 52}, canvas.RGB{R: 110, G: 98, B: 112}, canvas.RGB{R: 174, G: 162, B: 178}},
		{canvas.RGB{R: 70, G: 52, B: 38}, canvas.RGB{R: 140, G: 110, B: 84}, canvas.RGB{R: 204, G: 176, B: 146}},
	},
	Cratered: {
		{canvas.RGB{R: 48, G: 46, B: 44}, canvas.RGB{R: 108, G: 104, B: 100}, canvas.RGB{R: 176, G: 172, B: 166}},
		{canvas.RGB{R: 56, G: 50, B: 40}, canvas.RGB{R: 118, G: 106, B: 88}, canvas.RGB{R: 182, G: 168, B: 148}},
	},
	Metallic: {
		{canvas.RGB{R: 60, G: 62, B: 70}, canvas.RGB{R: 128, G: 132, B: 144}, canvas.RGB{R: 200, G: 206, B: 218}},
		{canvas.RGB{R: 70, G: 60, B: 50}, canvas.RGB{R: 150, G: 128, B: 104}, canvas.RGB{R: 224, G: 198, B: 164}},
	},
	Barren: {
		{canvas.RGB{R: 64, G: 58, B: 54}, canvas.RGB{R: 118, G: 110, B: 104}, canvas.RGB{R: 168, G: 160, B: 152}},
		{canvas.RGB{R: 54, G: 60, B: 58}, canvas.RGB{R: 104, G: 114, B: 110}, canvas.RGB{R: 156, G: 166, B: 160}},
	},
	Desert: {
		{canvas.RGB{R: 122, G: 82, B: 40}, canvas.RGB{R: 194, G: 150, B: 88}, canvas.RGB{R: 240, G: 210, B: 150}},
		{canvas.RGB{R: 130, G: 68, B: 42}, canvas.RGB{R: 200, G: 128, B: 82}, canvas.RGB{R: 244, G: 190, B: 140}},
	},
	Dune: {
		{canvas.RGB{R: 140, G: 92, B: 48}, canvas.RGB{R: 208, G: 160, B: 96}, canvas.RGB{R: 246, G: 218, B: 160}},
		{canvas.RGB{R: 112, G: 74, B: 58}, canvas.RGB{R: 184, G: 134, B: 100}, canvas.RGB{R: 232, G: 196, B: 158}},
	},
	Jungle: {
		{canvas.RGB{R: 22, G: 64, B: 30}, canvas.RGB{R: 52, G: 124, B: 58}, canvas.RGB{R: 120, G: 190, B: 110}},
		{canvas.RGB{R: 28, G: 58, B: 44}, canvas.RGB{R: 56, G: 116, B: 84}, canvas.RGB{R: 124, G: 182, B: 142}},
	},
	Oceanic: {
		{canvas.RGB{R: 14, G: 36, B: 84}, canvas.RGB{R: 28, G: 84, B: 150}, canvas.RGB{R: 96, G: 160, B: 214}},
		{canvas.RGB{R: 12, G: 48, B: 70}, canvas.RGB{R: 24, G: 104, B: 130}, canvas.RGB{R: 92, G: 178, B: 192}},
	},
	Continents: {
		{canvas.RGB{R: 18, G: 44, B: 96}, canvas.RGB{R: 70, G: 124, B: 62}, canvas.RGB{R: 188, G: 176, B: 140}},
		{canvas.RGB{R: 22, G: 52, B: 78}, canvas.RGB{R: 96, G: 118, B: 62}, canvas.RGB{R: 196, G: 186, B: 148}},
	},
	EarthLike: {
		{canvas.RGB{R: 16, G: 42, B: 98}, canvas.RGB{R: 62, G: 120, B: 58}, canvas.RGB{R: 196, G: 188, B: 158}},
	},
	IceWorld: {
		{canvas.RGB{R: 120, G: 144, B: 168}, canvas.RGB{R: 182, G: 202, B: 220}, canvas.RGB{R: 236, G: 246, B: 252}},
		{canvas.RGB{R: 110, G: 130, B: 178}, canvas.RGB{R: 170, G: 190, B: 226}, canvas.RGB{R: 228, G: 240, B: 252}},
	},
	IceCracked: {
		{canvas.RGB{R: 84, G: 110, B: 140}, canvas.RGB{R: 160, G: 186, B: 210}, canvas.RGB{R: 226, G: 240, B: 250}},
	},
	Lava: {
		{canvas.RGB{R: 44, G: 24, B: 20}, canvas.RGB{R: 140, G: 52, B: 24}, canvas.RGB{R: 244, G: 150, B: 48}},
		{canvas.RGB{R: 38, G: 22, B: 28}, canvas.RGB{R: 122, G: 40, B: 40}, canvas.RGB{R: 236, G: 120, B: 60}},
	},
	Toxic: {
		{canvas.RGB{R: 38, G: 66, B: 28}, canvas.RGB{R: 96, G: 138, B: 44}, canvas.RGB{R: 178, G: 206, B: 88}},
		{canvas.RGB{R: 58, G: 52, B: 20}, canvas.RGB{R: 128, G: 122, B: 38}, canvas.RGB{R: 198, G: 192, B: 92}},
	},
	GasBands: {
		{canvas.RGB{R: 120, G: 84, B: 58}, canvas.RGB{R: 190, G: 152, B: 110}, canvas.RGB{R: 238, G: 214, B: 172}},
		{canvas.RGB{R: 64, G: 84, B: 120}, canvas.RGB{R: 120, G: 148, B: 190}, canvas.RGB{R: 188, G: 210, B: 238}},
		{canvas.RGB{R: 110, G: 72, B: 96}, canvas.RGB{R: 172, G: 128, B: 154}, canvas.RGB{R: 226, G: 192, B: 214}},
	},
	GasSwirl: {
		{canvas.RGB{R: 90, G: 70, B: 110}, canvas.RGB{R: 150, G: 124, B: 178}, canvas.RGB{R: 212, G: 190, B: 234}},
		{canvas.RGB{R: 58, G: 96, B: 104}, canvas.RGB{R: 108, G: 158, B: 166}, canvas.RGB{R: 176, G: 218, B: 224}},
	},
	GasStorm: {
		{canvas.RGB{R: 124, G: 76, B: 48}, canvas.RGB{R: 196, G: 140, B: 92}, canvas.RGB{R: 244, G: 204, B: 150}},
		{canvas.RGB{R: 76, G: 60, B: 110}, canvas.RGB{R: 134, G: 114, B: 178}, canvas.RGB{R: 200, G: 184, B: 236}},
	},
	Crystal: {
		{canvas.RGB{R: 60, G: 90, B: 120}, canvas.RGB{R: 120, G: 170, B: 200}, canvas.RGB{R: 200, G: 236, B: 250}},
		{canvas.RGB{R: 96, G: 60, B: 114}, canvas.RGB{R: 164, G: 116, B: 186}, canvas.RGB{R: 226, G: 190, B: 242}},
	},
	Sun: {
		{canvas.RGB{R: 200, G: 90, B: 20}, canvas.RGB{R: 250, G: 170, B: 40}, canvas.RGB{R: 255, G: 240, B: 180}},
	},
}

// PickVariant deterministically selects a palette variant for a body.
// Pure: no state, same (seed, kind) always yields the same variant.
func PickVariant(seed int64, kind Kind) int {
	n := len(variants[kind])
	if n <= 1 {
		return 0
	}
	return int(noise.Hash01(seed^0x70a1, int(kind), 5179) * float64(n))
}

// ForKind returns the palette for a kind and variant, clamping the variant.
func ForKind(kind Kind, variant int) Palette {
	vs, ok := variants[kind]
	if !ok || len(vs) == 0 {
		return Palette{
			Dark:  canvas.RGB{R: 60, G: 60, B: 60},
			Mid:   canvas.RGB{R: 128, G: 128, B: 128},
			Light: canvas.RGB{R: 200, G: 200, B: 200},
		}
	}
	if variant < 0 {
		variant = 0
	}
	if variant >= len(vs) {
		variant = len(vs) - 1
	}
	return vs[variant]
}

// Tone3 maps tone in [0, 1] onto the three-point ramp: [0, 0.5] lerps
// dark to mid, (0.5, 1] lerps mid to light. Continuous at 0.5.
func Tone3(dark, mid, light canvas.RGB, tone float64) canvas.RGB {
	if tone <= 0 {
		return dark
	}
	if tone >= 1 {
		return light
	}
	if tone <= 0.5 {
		return dark.Lerp(mid, tone*2)
	}
	return mid.Lerp(light, (tone-0.5)*2)
}

// Tone samples the palette's own ramp at tone.
func (p Palette) Tone(tone float64) canvas.RGB {
	return Tone3(p.Dark, p.Mid, p.Light, tone)
}

// Dustify derives the dusty ring palette from a planet's own tones:
// each tone is desaturated and lightened toward its luminance.
func Dustify(p Palette) Palette {
	return Palette{
		Dark:  dustTone(p.Dark),
		Mid:   dustTone(p.Mid),
		Light: dustTone(p.Light),
	}
}

func dustTone(c canvas.RGB) canvas.RGB {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := col.Hsl()
	s *= 0.35
	l = l*0.55 + 0.38
	out := colorful.Hsl(h, s, l).Clamped()
	return canvas.RGB{
		R: canvas.Clamp8(out.R * 255),
		G: canvas.Clamp8(out.G * 255),
		B: canvas.Clamp8(out.B * 255),
	}
}

// Haze returns the atmosphere tint for a kind. Kinds without a meaningful
// atmosphere return ok=false and skip the halo pass entirely.
func Haze(kind Kind) (canvas.RGB, bool) {
	switch kind {
	case EarthLike, Continents, Oceanic:
		return canvas.RGB{R: 110, G: 170, B: 235}, true
	case Jungle:
		return canvas.RGB{R: 120, G: 200, B: 160}, true
	case Toxic:
		return canvas.RGB{R: 160, G: 210, B: 90}, true
	case Lava:
		return canvas.RGB{R: 235, G: 130, B: 60}, true
	case IceWorld, IceCracked:
		return canvas.RGB{R: 190, G: 220, B: 245}, true
	case GasBands, GasSwirl, GasStorm:
		return canvas.RGB{R: 210, G: 190, B: 160}, true
	case Desert, Dune:
		return canvas.RGB{R: 220, G: 180, B: 120}, true
	default:
		return canvas.RGB{}, false
	}
}
