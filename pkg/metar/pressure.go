package metar

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// parsePressure scans body tokens for the altimeter group: European QNH
// (Qdddd, already hPa) or American altimeter (Adddd, hundredths of inHg,
// converted to hPa). The first match wins; absent when neither form appears.
func parsePressure(body []string) *float64 {
	for _, tok := range body {
		m := pressureRegex.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		v, _ := strconv.Atoi(m[2])
		switch m[1] {
		case "Q":
			return ptr.To(float64(v))
		case "A":
			return ptr.To(InHgToHpa(float64(v) / 100))
		}
	}
	return nil
}
