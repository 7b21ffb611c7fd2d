// Package noise implements deterministic hash-based value noise, fractal
// sums, and a longitude-periodic variant used for spherical surfaces.
package noise

import "math"

// Mixing constants from the splitmix64 finalizer.
const (
	mixA = 0xbf58476d1ce4e5b9
	mixB = 0x94d049bb133111eb
)

// Hash01 returns a uniform value in [0, 1) derived from (seed, x, y).
// Deterministic for all inputs.
func Hash01(seed int64, x, y int) float64 {
	h := uint64(seed)
	h ^= uint64(int64(x)) * 0xc2b2ae3d27d4eb4f
	h = (h ^ (h >> 29)) * mixA
	h ^= uint64(int64(y)) * 0x165667b19e3779f9
	h = (h ^ (h >> 27)) * mixB
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}

// smoothstep is the cubic Hermite ease 3t^2 - 2t^3 on t in [0, 1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// ValueNoise samples bilinear value noise at (x, y). The four surrounding
// lattice hashes are blended with smoothstep easing. Result is in [0, 1).
func ValueNoise(seed int64, x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	ix := int(fx)
	iy := int(fy)

	tx := smoothstep(x - fx)
	ty := smoothstep(y - fy)

	v00 := Hash01(seed, ix, iy)
	v10 := Hash01(seed, ix+1, iy)
	v01 := Hash01(seed, ix, iy+1)
	v11 := Hash01(seed, ix+1, iy+1)

	top := v00 + tx*(v10-v00)
	bot := v01 + tx*(v11-v01)
	return top + ty*(bot-top)
}

// FBm sums octaves of value noise with the given lacunarity and gain,
// normalized by total amplitude so the result stays in [0, 1).
func FBm(seed int64, x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum := 0.0
	amp := 1.0
	total := 0.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += ValueNoise(seed+int64(i)*1013, x*freq, y*freq) * amp
		total += amp
		amp *= gain
		freq *= lacunarity
	}
	return sum / total
}

// SeamlessFBm samples FBm along a circle of radius scale so that u and u+1
// land on the same point, guaranteeing exact periodicity in u. v offsets the
// sample off the circle's plane. Two independently-seeded fields are averaged
// to avoid the radial symmetry a single circle sweep would show.
func SeamlessFBm(seed int64, u, v, scale float64, octaves int) float64 {
	ang := u * 2 * math.Pi
	cx := math.Cos(ang) * scale
	cy := math.Sin(ang) * scale
	ov := v * scale

	n1 := FBm(seed, cx, cy+ov, octaves, 2.0, 0.5)
	n2 := FBm(seed^0x5deece66d, cx+ov, cy, octaves, 2.0, 0.5)
	return (n1 + n2) * 0.5
}
