package render

import (
	"math"
	"testing"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/noise"
	"github.com/litescript/ls-orrery/internal/palette"
)

// chanDelta returns the largest per-channel difference between two colors.
func chanDelta(a, b canvas.RGB) int {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	m := d(a.R, b.R)
	if g := d(a.G, b.G); g > m {
		m = g
	}
	if bb := d(a.B, b.B); bb > m {
		m = bb
	}
	return m
}

func TestSampleSurfacePure(t *testing.T) {
	dirs := [][3]float64{
		{0, 0, 1},
		{0.5, 0.3, math.Sqrt(1 - 0.25 - 0.09)},
		{-0.7, 0.1, math.Sqrt(1 - 0.49 - 0.01)},
	}
	for kind := palette.Kind(0); kind <= palette.Sun; kind++ {
		for _, d := range dirs {
			a := SampleSurface(1234, kind, d[0], d[1], d[2], 0.37)
			b := SampleSurface(1234, kind, d[0], d[1], d[2], 0.37)
			if a != b {
				t.Fatalf("kind %v: repeated call differed: %+v vs %+v", kind, a, b)
			}
		}
	}
}

func TestSampleSurfaceAllKindsProduceGlyphs(t *testing.T) {
	for kind := palette.Kind(0); kind <= palette.Sun; kind++ {
		for i := 0; i < 200; i++ {
			u := float64(i%20)/20 - 0.5
			v := float64(i/20)/20 - 0.25
			nz := 1 - u*u - v*v
			if nz <= 0 {
				continue
			}
			s := SampleSurface(int64(i)*7+1, kind, u, v, math.Sqrt(nz), 0)
			if s.Glyph == 0 {
				t.Fatalf("kind %v produced zero glyph at sample %d", kind, i)
			}
			if s.Emissive < 0 || s.Emissive > 1 {
				t.Fatalf("kind %v emissive %v outside [0,1]", kind, s.Emissive)
			}
		}
	}
}

func TestSampleSurfaceSpinShiftsLongitude(t *testing.T) {
	// The same direction at different spin phases should generally sample
	// different terrain; a full turn must come back exactly.
	a := SampleSurface(99, palette.Rocky, 0.3, 0.2, 0.93, 0.0)
	half := SampleSurface(99, palette.Rocky, 0.3, 0.2, 0.93, 0.5)
	full := SampleSurface(99, palette.Rocky, 0.3, 0.2, 0.93, 1.0)

	// A full turn revisits the same terrain up to float rounding.
	if chanDelta(a.Color, full.Color) > 2 {
		t.Errorf("full turn should repeat the surface: %+v vs %+v", a, full)
	}
	if a == half {
		t.Error("half turn landed on identical sample; spin not applied")
	}
}

func TestEarthLikeCityLights(t *testing.T) {
	const seed = 1234

	var emissiveCells int
	var maxEmissive float64
	for i := 0; i < 4000; i++ {
		u := (float64(i%80)/80)*1.8 - 0.9
		v := (float64(i/80)/50)*1.6 - 0.8
		nzsq := 1 - u*u - v*v
		if nzsq <= 0 {
			continue
		}
		s := SampleSurface(seed, palette.EarthLike, u, v, math.Sqrt(nzsq), 0)
		if s.Emissive > 0 {
			emissiveCells++
			if s.Emissive > maxEmissive {
				maxEmissive = s.Emissive
			}
			if s.EmissiveTint == (canvas.RGB{}) {
				t.Fatal("emissive sample without a tint")
			}
			// City tint is either warm or cool but never gray.
			if s.EmissiveTint.R == s.EmissiveTint.B {
				t.Fatalf("city tint should be tinted, got %+v", s.EmissiveTint)
			}
		}
	}

	if emissiveCells == 0 {
		t.Fatal("earth-like surface produced no city lights at all")
	}
	if maxEmissive > 1 {
		t.Errorf("emissive exceeded 1: %v", maxEmissive)
	}
}

func TestCityLightsKeyOnTerrainNotGlyph(t *testing.T) {
	const seed = 4242

	// Find a spot where the population field is dense enough to glow.
	var lon, lat float64
	found := false
	for i := 0; i < 2000 && !found; i++ {
		lo := float64(i%50) / 50
		la := float64(i/50)/20 - 1
		if noise.SeamlessFBm(seed^saltPop, lo, la*0.85, 3.4, 4) > 0.58 {
			lon, lat = lo, la
			found = true
		}
	}
	if !found {
		t.Fatal("scan found no dense population spot")
	}

	cases := []struct {
		terrain terrainClass
		glyph   rune
		want    bool
	}{
		// Drylands and forest glow even with glyphs the ocean and ice
		// branches also emit.
		{terrainDryland, '~', true},
		{terrainForest, '*', true},
		{terrainOcean, '~', false},
		{terrainIce, '.', false},
		{terrainMountain, '^', false},
	}
	for _, tc := range cases {
		c := surfaceCtx{seed: seed, lon: lon, lat: lat, terrain: tc.terrain}
		s := Sample{Glyph: tc.glyph}
		addCityLights(&c, &s)
		if got := s.Emissive > 0; got != tc.want {
			t.Errorf("terrain %d glyph %q: emissive=%v, want %v", tc.terrain, tc.glyph, got, tc.want)
		}
	}
}

func TestCityLightsNeverOnPolarIce(t *testing.T) {
	// Polar-cap cells use a near-white color no land palette tone reaches,
	// so a bright blue channel identifies them.
	for seed := int64(1); seed <= 12; seed++ {
		for i := 0; i < 2400; i++ {
			u := (float64(i%60)/60)*1.8 - 0.9
			v := (float64(i/60)/40)*1.8 - 0.9
			nzsq := 1 - u*u - v*v
			if nzsq <= 0 {
				continue
			}
			s := SampleSurface(seed*101, palette.EarthLike, u, v, math.Sqrt(nzsq), 0)
			if s.Emissive > 0 && s.Color.B >= 200 {
				t.Fatalf("seed %d: city lights on a polar ice cell: %+v", seed*101, s)
			}
		}
	}
}

func TestNonEarthLikeHasNoCityLights(t *testing.T) {
	for _, kind := range []palette.Kind{palette.Continents, palette.Oceanic, palette.Rocky} {
		for i := 0; i < 500; i++ {
			u := (float64(i%25)/25)*1.6 - 0.8
			v := (float64(i/25)/20)*1.6 - 0.8
			nzsq := 1 - u*u - v*v
			if nzsq <= 0 {
				continue
			}
			s := SampleSurface(777, kind, u, v, math.Sqrt(nzsq), 0)
			if s.Emissive > 0 {
				t.Fatalf("kind %v unexpectedly emissive", kind)
			}
		}
	}
}

func TestContinentsSeparateLandAndOcean(t *testing.T) {
	var ocean, land int
	for i := 0; i < 2000; i++ {
		u := (float64(i%50)/50)*1.8 - 0.9
		v := (float64(i/50)/40)*1.6 - 0.8
		nzsq := 1 - u*u - v*v
		if nzsq <= 0 {
			continue
		}
		s := SampleSurface(31415, palette.Continents, u, v, math.Sqrt(nzsq), 0)
		if s.Glyph == '~' || s.Glyph == '-' {
			ocean++
		} else {
			land++
		}
	}
	if ocean == 0 || land == 0 {
		t.Errorf("expected both ocean and land, got ocean=%d land=%d", ocean, land)
	}
}
