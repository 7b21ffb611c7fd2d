// Package scene generates the deterministic star system the renderer
// draws: a sun, planets with moons and rings, and a background starfield.
// All of it derives from a single master seed; nothing is persisted.
package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/ls-orrery/internal/noise"
	"github.com/litescript/ls-orrery/internal/palette"
)

// Body is a planet or moon in the system. Positions are computed per
// frame from sim time; the struct itself is immutable after generation.
type Body struct {
	Name        string
	Seed        int64
	Kind        palette.Kind
	Radius      float64 // world radius, cells at zoom 1
	OrbitRadius float64 // world units from the parent center
	OrbitPeriod float64 // seconds per revolution
	Phase0      float64 // initial orbit angle, turns
	SpinRate    float64 // turns per second
	Tilt        float64 // axis tilt, radians
	Ring        bool
	Moons       []Body
}

// Star is one background starfield point in unit screen space.
type Star struct {
	X, Y   float64 // [0, 1) fractions of the viewport
	Bright float64 // [0, 1], drives the glyph choice
}

// System is a generated star system.
type System struct {
	Seed      int64
	Name      string
	SunSeed   int64
	SunRadius float64
	Planets   []Body
	Stars     []Star
}

// Orbital spacing in world units. The first planet clears the sun's disc
// comfortably; later ones spread outward with seed jitter.
const (
	firstOrbit   = 34.0
	orbitSpacing = 24.0
	starCount    = 160
)

// planetKinds are the texture kinds a generated planet can take.
var planetKinds = []palette.Kind{
	palette.Rocky, palette.Cratered, palette.Metallic, palette.Barren,
	palette.Desert, palette.Dune, palette.Jungle, palette.Oceanic,
	palette.Continents, palette.EarthLike, palette.IceWorld,
	palette.IceCracked, palette.Lava, palette.Toxic, palette.GasBands,
	palette.GasSwirl, palette.GasStorm, palette.Crystal,
}

// moonKinds are the smaller airless kinds moons draw from.
var moonKinds = []palette.Kind{
	palette.Rocky, palette.Cratered, palette.Barren, palette.IceWorld,
	palette.IceCracked, palette.Metallic,
}

// Generate builds the system for a master seed. Deterministic: the same
// seed always yields the same system.
func Generate(seed int64) *System {
	s := &System{
		Seed:      seed,
		Name:      systemName(seed),
		SunSeed:   seed*31 + 17,
		SunRadius: 10 + 4*noise.Hash01(seed, 2, 91),
	}

	n := 4 + int(noise.Hash01(seed, 1, 3)*6) // 4..9 planets
	for i := 0; i < n; i++ {
		s.Planets = append(s.Planets, generatePlanet(seed, i, s.Name))
	}

	for i := 0; i < starCount; i++ {
		s.Stars = append(s.Stars, Star{
			X:      noise.Hash01(seed^0x57a2, i, 0),
			Y:      noise.Hash01(seed^0x57a2, i, 1),
			Bright: noise.Hash01(seed^0x57a2, i, 2),
		})
	}
	return s
}

func generatePlanet(seed int64, i int, sysName string) Body {
	pseed := seed ^ int64(i+1)*0x9e3779b9

	kind := planetKinds[int(noise.Hash01(pseed, 5, 2)*float64(len(planetKinds)))]

	var radius float64
	if kind.IsGas() {
		radius = 4.5 + 3.0*noise.Hash01(pseed, 9, 4)
	} else {
		radius = 1.8 + 2.4*noise.Hash01(pseed, 9, 4)
	}

	orbit := firstOrbit + float64(i)*orbitSpacing +
		(noise.Hash01(pseed, 11, 6)-0.5)*orbitSpacing*0.4
	// Roughly Keplerian: farther orbits run slower.
	period := 40 * math.Pow(orbit/firstOrbit, 1.5)

	p := Body{
		Name:        fmt.Sprintf("%s %c", sysName, 'b'+i),
		Seed:        pseed,
		Kind:        kind,
		Radius:      radius,
		OrbitRadius: orbit,
		OrbitPeriod: period,
		Phase0:      noise.Hash01(pseed, 13, 8),
		SpinRate:    0.01 + 0.04*noise.Hash01(pseed, 15, 10),
		Tilt:        (noise.Hash01(pseed, 17, 12) - 0.5) * 0.9,
		Ring:        kind.IsGas() && noise.Hash01(pseed, 19, 14) < 0.45,
	}

	nMoons := moonCountFor(p)
	for j := 0; j < nMoons; j++ {
		p.Moons = append(p.Moons, generateMoon(p, j))
	}
	return p
}

// moonCountFor returns 0..3 moons; giants hold more.
func moonCountFor(p Body) int {
	h := noise.Hash01(p.Seed, 23, 16)
	if p.Kind.IsGas() {
		return 1 + int(h*3) // 1..3
	}
	return int(h * 2.4) // 0..2
}

func generateMoon(p Body, j int) Body {
	mseed := p.Seed ^ int64(j+1)*0x7f4a7c15
	return Body{
		Name:        fmt.Sprintf("%s %s", p.Name, roman(j+1)),
		Seed:        mseed,
		Kind:        moonKinds[int(noise.Hash01(mseed, 3, 1)*float64(len(moonKinds)))],
		Radius:      0.8 + 0.9*noise.Hash01(mseed, 5, 3),
		OrbitRadius: p.Radius + 4.5 + float64(j)*3.5,
		OrbitPeriod: 10 + 8*float64(j+1)*noise.Hash01(mseed, 7, 5),
		Phase0:      noise.Hash01(mseed, 9, 7),
		SpinRate:    0.02 + 0.05*noise.Hash01(mseed, 11, 9),
		Tilt:        (noise.Hash01(mseed, 13, 11) - 0.5) * 0.5,
	}
}

func roman(n int) string {
	switch n {
	case 1:
		return "I"
	case 2:
		return "II"
	case 3:
		return "III"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Name syllables for generated systems.
var nameSyllables = []string{
	"ve", "sha", "ra", "tor", "ul", "ik", "an", "os", "eth", "mir",
	"ka", "dro", "lun", "pex", "ari", "zen", "qua", "bel", "nox", "ty",
}

// systemName builds a pronounceable two-or-three syllable name from the seed.
func systemName(seed int64) string {
	n := 2 + int(noise.Hash01(seed, 31, 1)*2)
	var b strings.Builder
	for i := 0; i < n; i++ {
		syl := nameSyllables[int(noise.Hash01(seed, 37, i+2)*float64(len(nameSyllables)))]
		b.WriteString(syl)
	}
	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// orbitAngle returns a body's orbit angle in radians at a sim time.
func orbitAngle(b Body, simTime float64) float64 {
	return (b.Phase0 + simTime/b.OrbitPeriod) * 2 * math.Pi
}

// WorldPos returns a body's world position around a parent center.
// Orbits are squashed vertically so the system reads as a tilted plane
// in character cells.
func WorldPos(b Body, px, py, simTime float64) (float64, float64) {
	a := orbitAngle(b, simTime)
	return px + b.OrbitRadius*math.Cos(a), py + b.OrbitRadius*math.Sin(a)*0.55
}
