package metar

import "math"

// Fixed conversion factors used throughout the decoder.
const (
	knotsToKmh = 1.852
	mpsToKmh   = 3.6
	milesToKm  = 1.60934
	inHgToHpa  = 33.8639
)

// KnotsToKmh converts a speed in knots to km/h, rounded to 1 decimal.
func KnotsToKmh(kt float64) float64 { return round1(kt * knotsToKmh) }

// MpsToKmh converts a speed in m/s to km/h, rounded to 1 decimal.
func MpsToKmh(ms float64) float64 { return round1(ms * mpsToKmh) }

// MilesToKm converts statute miles to kilometers, rounded to 1 decimal.
func MilesToKm(mi float64) float64 { return round1(mi * milesToKm) }

// MetersToKm converts meters to kilometers, rounded to 1 decimal.
func MetersToKm(m float64) float64 { return round1(m / 1000) }

// InHgToHpa converts inches of mercury to hectopascals, rounded to 1 decimal.
func InHgToHpa(inHg float64) float64 { return round1(inHg * inHgToHpa) }

// HundredsFeet converts an encoded cloud-base value (hundreds of feet, as
// reported) to feet.
func HundredsFeet(encoded int) int { return encoded * 100 }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
