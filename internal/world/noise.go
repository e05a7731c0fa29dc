package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField is a deterministic multi-octave coherent noise sampler.
// A field is a pure function of its seed: the same (seed, x, y, params)
// always yields the same value regardless of call order. Safe for
// concurrent use once constructed.
type NoiseField struct {
	noise opensimplex.Noise
}

// NewNoiseField creates a noise field seeded for one generation layer.
// Layers that must be independent (elevation, regional, detail) use
// distinct seed offsets.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{noise: opensimplex.New(seed)}
}

// Sample returns fractal noise in [-1, 1] at the given position.
// Octaves are layered at doubling frequency and amplitude decaying by
// persistence; the sum is renormalized by the total amplitude.
func (f *NoiseField) Sample(x, y float64, octaves int, persistence, scale float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := scale

	for i := 0; i < octaves; i++ {
		total += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
