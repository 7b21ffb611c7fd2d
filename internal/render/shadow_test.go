package render

import "testing"

func TestShadowFactorEmptyOccluders(t *testing.T) {
	cfg := DefaultConfig()
	self := BodyView{X: 0, Y: 0, Radius: 20}
	if got := ShadowFactor(cfg, 5, 5, self, nil, 100, 0); got != 1.0 {
		t.Errorf("empty occluder list: got %v, want exactly 1.0", got)
	}
}

func TestShadowFactorRange(t *testing.T) {
	cfg := DefaultConfig()
	occs := []Occluder{
		{X: 40, Y: 0, Radius: 10},
		{X: 60, Y: 5, Radius: 6},
	}
	for _, radius := range []float64{5, 20} { // raymarch and analytic paths
		self := BodyView{X: 0, Y: 0, Radius: radius}
		for y := -25.0; y <= 25; y += 2.5 {
			got := ShadowFactor(cfg, 0, y, self, occs, 200, 0)
			if got < ShadowFloor || got > 1.0 {
				t.Fatalf("radius=%v y=%v: factor %v outside [%v, 1]",
					radius, y, got, ShadowFloor)
			}
		}
	}
}

func TestAnalyticUmbraCenterHitsFloor(t *testing.T) {
	cfg := DefaultConfig()
	// Large body sampled dead behind a big occluder on the ray to the sun.
	self := BodyView{X: 0, Y: 0, Radius: 20}
	occs := []Occluder{{X: 50, Y: 0, Radius: 15}}
	got := ShadowFactor(cfg, 0, 0, self, occs, 200, 0)
	if got != ShadowFloor {
		t.Errorf("umbra center: got %v, want floor %v", got, ShadowFloor)
	}
}

func TestAnalyticOccluderBehindSampleIgnored(t *testing.T) {
	cfg := DefaultConfig()
	self := BodyView{X: 0, Y: 0, Radius: 20}
	// Occluder on the far side of the sample, away from the sun.
	occs := []Occluder{{X: -50, Y: 0, Radius: 15}}
	if got := ShadowFactor(cfg, 0, 0, self, occs, 200, 0); got != 1.0 {
		t.Errorf("occluder behind sample: got %v, want 1.0", got)
	}
	// Occluder beyond the sun casts nothing either.
	occs = []Occluder{{X: 300, Y: 0, Radius: 15}}
	if got := ShadowFactor(cfg, 0, 0, self, occs, 200, 0); got != 1.0 {
		t.Errorf("occluder beyond sun: got %v, want 1.0", got)
	}
}

func TestSelfNeverOccludes(t *testing.T) {
	cfg := DefaultConfig()
	for _, radius := range []float64{5, 20} {
		self := BodyView{X: 0, Y: 0, Radius: radius}
		occs := []Occluder{{X: 0, Y: 0, Radius: radius}}
		// Sample on the night-side edge: the ray to the sun crosses the
		// body's own disc, which must not count.
		if got := ShadowFactor(cfg, -radius+1, 0, self, occs, 200, 0); got != 1.0 {
			t.Errorf("radius=%v: self-occlusion produced %v, want 1.0", radius, got)
		}
	}
}

func TestRaymarchHitReturnsFloor(t *testing.T) {
	cfg := DefaultConfig()
	self := BodyView{X: 0, Y: 0, Radius: 5} // below analytic threshold
	occs := []Occluder{{X: 20, Y: 0, Radius: 8}}
	got := ShadowFactor(cfg, 0, 0, self, occs, 200, 0)
	if got != ShadowFloor {
		t.Errorf("raymarch through occluder: got %v, want %v", got, ShadowFloor)
	}
}

func TestPenumbraGradient(t *testing.T) {
	cfg := DefaultConfig()
	self := BodyView{X: 0, Y: 0, Radius: 20}
	occs := []Occluder{{X: 50, Y: 0, Radius: 10}}

	// Moving the sample perpendicular to the ray, the lit fraction should
	// rise monotonically out of the shadow.
	prev := -1.0
	for y := 0.0; y <= 30; y += 1.5 {
		got := ShadowFactor(cfg, 0, y, self, occs, 200, 0)
		if got < prev-1e-9 {
			t.Fatalf("lit fraction decreased leaving shadow at y=%v: %v < %v", y, got, prev)
		}
		prev = got
	}
	if prev != 1.0 {
		t.Errorf("fully clear sample should reach 1.0, got %v", prev)
	}
}
