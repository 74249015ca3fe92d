package vmath

import "github.com/chewxy/math32"

// Clamp01 clamps x to [0, 1]
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp clamps x to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Wave returns sin(2π f t)
func Wave(freq, t float32) float32 {
	return math32.Sin(2 * math32.Pi * freq * t)
}
