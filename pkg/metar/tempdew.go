package metar

import (
	"fmt"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// parseTempDew scans body tokens for the [M]dd/[M]dd temperature/dew-point
// group. Candidates with more than 3 digits per side are not temperature
// groups at all and are skipped; a candidate whose values fall outside
// [-100,60] °C is discarded as a unit — both values become absent — with an
// anomaly, since a pair with one corrupt half cannot be trusted.
func parseTempDew(body []string) (temp, dew *float64, anomalies []Anomaly) {
	for _, tok := range body {
		m := tempRegex.FindStringSubmatch(tok)
		if m == nil {
			continue
		}

		t, okT := parseSignedCelsius(m[1])
		d, okD := parseSignedCelsius(m[2])
		if !okT || !okD {
			continue
		}

		if !inCelsiusRange(t) || !inCelsiusRange(d) {
			anomalies = append(anomalies, Anomaly{
				Field:  "temperature",
				Token:  tok,
				Reason: fmt.Sprintf("pair %.0f/%.0f outside [-100,60] °C, discarded as a unit", t, d),
			})
			return nil, nil, anomalies
		}
		return ptr.To(roundTo(t, 1)), ptr.To(roundTo(d, 1)), anomalies
	}
	return nil, nil, anomalies
}

// parseSignedCelsius decodes one side of the group; the M prefix denotes a
// negative value.
func parseSignedCelsius(s string) (float64, bool) {
	neg := strings.HasPrefix(s, "M")
	if neg {
		s = s[1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func inCelsiusRange(v float64) bool {
	r := valueRanges["temperature"]
	return v >= r.Min && v <= r.Max
}
