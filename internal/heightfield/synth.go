// Package heightfield combines octaves of 2D noise into terrain elevations.
package heightfield

import (
	"ridgeline/internal/noise"
)

const (
	// Octaves and their falloff: frequency doubles, amplitude halves.
	octaveCount = 3
	// Base frequency applied before the per-octave multiplier.
	baseFrequency = 0.5
)

// Sum evaluates the layered height value at (x, y). Three octaves of noise at
// increasing frequency and decreasing amplitude are summed without
// normalization, so results span roughly [-1.75, 1.75] for a [-1,1] sampler.
// The seed offsets the sampled coordinates on both axes: re-seeding shifts the
// noise window rather than changing the noise function.
func Sum(s noise.Sampler, x, y, seed float64) float64 {
	sum := 0.0
	frequency := baseFrequency
	amplitude := 1.0
	for i := 0; i < octaveCount; i++ {
		sum += s.Sample(x*frequency+seed, y*frequency+seed) * amplitude
		frequency *= 2.0
		amplitude *= 0.5
	}
	return sum
}

// Synthesizer binds a sampler and a seed so callers can evaluate heights
// without threading both through every call.
type Synthesizer struct {
	sampler noise.Sampler
	seed    float64
}

// New returns a synthesizer over the given sampler and seed.
func New(s noise.Sampler, seed float64) *Synthesizer {
	return &Synthesizer{sampler: s, seed: seed}
}

// Height returns the layered height value at (x, y).
func (s *Synthesizer) Height(x, y float64) float64 {
	return Sum(s.sampler, x, y, s.seed)
}
