package metar

import (
	"math"

	"k8s.io/utils/ptr"
)

const magnusDenominatorFloor = 0.1

// relativeHumidity derives relative humidity from temperature and dew point
// using the Magnus approximation. Returns nil when either input is missing
// or a Magnus denominator degenerates near -237.7 C. The result is clamped
// to 0-100 and rounded to one decimal.
func relativeHumidity(tempC, dewC *float64) *float64 {
	if tempC == nil || dewC == nil {
		return nil
	}
	t, d := *tempC, *dewC
	if 237.7+t <= magnusDenominatorFloor || 237.7+d <= magnusDenominatorFloor {
		return nil
	}
	es := 6.11 * math.Pow(10, 7.5*t/(237.7+t))
	e := 6.11 * math.Pow(10, 7.5*d/(237.7+d))
	rh := 100 * e / es
	rh = math.Max(0, math.Min(100, rh))
	return ptr.To(round1(rh))
}
