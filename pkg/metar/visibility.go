package metar

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// visibilityFallbackOffset is where the visibility scan starts when no wind
// group was matched. Offset 1 skips whatever occupies the usual wind slot.
const visibilityFallbackOffset = 1

// excellentVisibilityKm is the sentinel for "9999" and CAVOK: 10 km or more.
const excellentVisibilityKm = 10.0

// parseVisibility scans a bounded window of body tokens for the first
// recognizable visibility group. The window starts just after the wind
// group(s) — or at a fixed fallback offset when no wind matched — and stops
// at the first cloud-, temperature-, or pressure-shaped token so a malformed
// report cannot send the scan through the whole body.
func parseVisibility(body []string, afterWind int) *float64 {
	start := afterWind
	if start < 0 {
		start = visibilityFallbackOffset
	}
	if start > len(body) {
		start = len(body)
	}

	for i := start; i < len(body); i++ {
		tok := body[i]
		if isCloudShaped(tok) || isTempShaped(tok) || pressureRegex.MatchString(tok) {
			break
		}
		// The wind variable-range token may trail the wind group inside the
		// window; it is not a visibility candidate.
		if windVarRegex.MatchString(tok) {
			continue
		}

		if v, ok := parseVisibilityMeters(tok); ok {
			return ptr.To(v)
		}
		if v, ok := parseVisibilityMiles(body, i); ok {
			return ptr.To(v)
		}
	}
	return nil
}

// parseVisibilityMeters decodes the 4-digit meters form, with or without an
// NDV or compass-direction suffix. "9999" means 10 km or more.
func parseVisibilityMeters(tok string) (float64, bool) {
	m := visMetersRegex.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	meters, _ := strconv.Atoi(m[1])
	if meters == 9999 {
		return excellentVisibilityKm, true
	}
	return MetersToKm(float64(meters)), true
}

// parseVisibilityMiles decodes statute-mile forms at body index i: plain
// ("6SM"), "at least" ("P6SM", the numeric part is a lower bound), fractional
// ("1/2SM"), and mixed fractional ("1 1/2SM") where the whole-number part is
// the immediately preceding token. That preceding token must itself look like
// a standalone 1-2 digit number so a runway or wind token is never absorbed.
func parseVisibilityMiles(body []string, i int) (float64, bool) {
	m := visMilesRegex.FindStringSubmatch(body[i])
	if m == nil {
		return 0, false
	}

	miles, _ := strconv.ParseFloat(m[2], 64)
	if m[4] != "" {
		den, _ := strconv.ParseFloat(m[4], 64)
		if den == 0 {
			return 0, false
		}
		miles /= den
		if i > 0 && visWholeRegex.MatchString(body[i-1]) {
			whole, _ := strconv.ParseFloat(body[i-1], 64)
			miles += whole
		}
	}
	return MilesToKm(miles), true
}

func isCloudShaped(tok string) bool {
	return cloudRegex.MatchString(tok) || vertVisRegex.MatchString(tok) || clearSkySentinels[tok]
}

// isTempShaped reports whether tok looks like a temperature/dew-point pair.
// The slash distinguishes it from 4-digit visibility-in-meters tokens.
func isTempShaped(tok string) bool {
	return tempRegex.MatchString(tok)
}
