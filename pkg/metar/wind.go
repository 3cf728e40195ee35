package metar

import (
	"fmt"
	"strconv"

	"k8s.io/utils/ptr"
)

// Conservative per-unit ceilings. A reported speed above these is treated as
// a transmission error, not a record-breaking storm.
const (
	maxSpeedKT  = 200
	maxSpeedMPS = 100
	maxGustKT   = 300
	maxGustMPS  = 150
)

// parseWind scans body tokens for the main wind group and, independently, a
// standalone variable-direction-range token. The first syntactically valid
// wind group wins; a group that matches but fails range validation is
// discarded with an anomaly and the scan continues. Returns the decoded
// observation, the body index just past the main wind group (-1 when none
// matched), and any anomalies.
func parseWind(body []string) (WindObservation, int, []Anomaly) {
	var (
		wind      WindObservation
		anomalies []Anomaly
		after     = -1
	)

	for i, tok := range body {
		if after >= 0 {
			break
		}
		m := windRegex.FindStringSubmatch(tok)
		if m == nil {
			continue
		}

		unit := m[5]
		speed, _ := strconv.Atoi(m[2])

		maxSpeed, maxGust := maxSpeedKT, maxGustKT
		toKmh := KnotsToKmh
		if unit == "MPS" {
			maxSpeed, maxGust = maxSpeedMPS, maxGustMPS
			toKmh = MpsToKmh
		}

		if speed > maxSpeed {
			anomalies = append(anomalies, Anomaly{
				Field:  "wind_speed",
				Token:  tok,
				Reason: fmt.Sprintf("speed %d %s above ceiling %d", speed, unit, maxSpeed),
			})
			continue
		}

		var w WindObservation
		switch dir := m[1]; {
		case dir == "VRB":
			w.IsVariable = true
		default:
			deg, _ := strconv.Atoi(dir)
			if deg > 360 {
				anomalies = append(anomalies, Anomaly{
					Field:  "wind_direction",
					Token:  tok,
					Reason: fmt.Sprintf("direction %d outside 0-360", deg),
				})
				continue
			}
			// Calm wind reports direction 000 with speed 0; a direction is
			// only meaningful when air is actually moving.
			if speed > 0 {
				w.DirectionDegrees = ptr.To(float64(deg))
			}
		}

		w.SpeedKmh = ptr.To(toKmh(float64(speed)))

		if m[4] != "" {
			gust, _ := strconv.Atoi(m[4])
			if gust > maxGust {
				anomalies = append(anomalies, Anomaly{
					Field:  "wind_gust",
					Token:  tok,
					Reason: fmt.Sprintf("gust %d %s above ceiling %d", gust, unit, maxGust),
				})
			} else {
				w.GustKmh = ptr.To(toKmh(float64(gust)))
			}
		}

		wind = w
		after = i + 1
	}

	// The variable-range token updates the observation independently of the
	// main group; it may appear even when the main group failed validation.
	for _, tok := range body {
		m := windVarRegex.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		if from > 360 || to > 360 {
			anomalies = append(anomalies, Anomaly{
				Field:  "wind_variable_range",
				Token:  tok,
				Reason: "direction outside 0-360",
			})
			continue
		}
		wind.VariableRange = &DirectionRange{
			FromDegrees: float64(from),
			ToDegrees:   float64(to),
		}
		break
	}

	return wind, after, anomalies
}
