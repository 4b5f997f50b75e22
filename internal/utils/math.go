// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PulseScale — масштаб "пульсации" после события: 1+amp в момент события,
// затухает к 1 по экспоненте.
func PulseScale(elapsedSeconds, amp, decay float64) float64 {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return 1.0 + amp*math.Exp(-elapsedSeconds*decay)
}
