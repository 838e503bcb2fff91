// Package noise provides the trigonometric pseudo-noise used by terrain
// generation. These are deliberately cheap sine/cosine approximations, not
// gradient noise: the generated terrain depends on their exact shape, so they
// must not be swapped for a proper noise library.
package noise

import "math"

// Wave returns macro-scale fractal noise at (x, y): each octave averages a
// sine along x and a cosine along y, phase-shifted by the world seed.
// With unit amplitudes the result lies in [-1, 1] per octave.
func Wave(x, y, phase float64, scales, amplitudes []float64) float64 {
	total := 0.0
	for i, scale := range scales {
		nx := x * scale
		ny := y * scale
		v := (math.Sin(nx*2*math.Pi+phase) + math.Cos(ny*2*math.Pi+phase)) * 0.5
		total += v * amplitudes[i]
	}
	return total
}

// Detail returns micro-scale elevation noise layered on top of blended macro
// values. Each octave combines a base product wave with a half-amplitude
// doubled-frequency wave; the sum is scaled down to keep the detail subtle.
func Detail(x, y float64, scales, amplitudes []float64) float64 {
	total := 0.0
	for i, scale := range scales {
		nx := x * scale
		ny := y * scale
		v := math.Sin(nx*2*math.Pi)*math.Cos(ny*2*math.Pi) +
			math.Sin(nx*4*math.Pi+1.5)*math.Cos(ny*4*math.Pi+1.5)*0.5
		total += v * amplitudes[i]
	}
	return total * 0.1
}

// Moisture returns single-frequency moisture variation at (x, y).
func Moisture(x, y, scale float64) float64 {
	nx := x * scale
	ny := y * scale
	return (math.Sin(nx*2*math.Pi+2.1) + math.Cos(ny*2*math.Pi+3.7)) * 0.25
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
