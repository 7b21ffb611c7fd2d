package render

// Super-sampling thresholds in cells of projected radius. A body entering
// step 2 reuses one shading computation per 2x2 block, step 3 per 3x3.
const (
	lodThreshold2 = 24.0
	lodThreshold3 = 56.0
	lodMargin     = 2.0
)

// LodMap holds the per-body super-sampling step, the only state that
// outlives a frame. It is owned by whoever drives the renderer and passed
// into each draw; there is no package-level cache.
type LodMap struct {
	steps map[int64]int
}

// NewLodMap creates an empty LOD state map.
func NewLodMap() *LodMap {
	return &LodMap{steps: make(map[int64]int)}
}

// Step evaluates the hysteresis state machine for a body and returns the
// block size in {1, 2, 3}. A transition only happens once the radius
// crosses a threshold by more than the margin, so flicker near a zoom
// boundary cannot toggle the block size. When allow is false the step is
// forced to 1 without touching stored state.
func (m *LodMap) Step(key int64, radius float64, allow bool) int {
	if !allow {
		return 1
	}
	s := m.steps[key]
	if s == 0 {
		s = 1
	}
	switch s {
	case 1:
		if radius >= lodThreshold2+lodMargin {
			s = 2
		}
	case 2:
		if radius >= lodThreshold3+lodMargin {
			s = 3
		} else if radius <= lodThreshold2-lodMargin {
			s = 1
		}
	case 3:
		if radius <= lodThreshold3-lodMargin {
			s = 2
		}
	}
	m.steps[key] = s
	return s
}

// lodKey derives the map key from a body seed. Keeps moons distinct from
// their parents even when seeds are related.
func lodKey(seed int64) int64 {
	return seed*0x2545f491 + 0x9e37
}
