package metar

import (
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// parseRunwayStates collects runway state groups from body tokens, keyed by
// runway identifier. Four condition encodings are recognized after the
// runway designator:
//
//	SNOCLO                 runway closed due to snow
//	CLRDff                 cleared and dry, ff = friction code or //
//	AAAAff                 4-letter regional surface code + friction
//	SCDDFF                 standard digits: surface, coverage, depth, friction
//
// In the standard form a / in any subfield means "not reported" and maps to
// the field's neutral value, never to a decode failure. Friction codes are
// divided by 100 to yield a 0-1 coefficient.
func parseRunwayStates(body []string) map[string]RunwayState {
	states := map[string]RunwayState{}
	for _, tok := range body {
		m := runwayRegex.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		runway, cond := m[1], m[2]

		state := RunwayState{Runway: runway, Raw: cond}
		switch {
		case cond == "SNOCLO":
			state.Surface = "Closed due to snow"
			state.Coverage = "100%"

		case strings.HasPrefix(cond, "CLRD"):
			state.Surface = "Clear and dry"
			state.Coverage = "0%"
			state.Friction = parseFriction(cond[4:6])

		case cond[0] >= 'A' && cond[0] <= 'Z':
			// Regional extension: a 4-letter surface word, e.g. SNOW55.
			state.Surface = cond[:1] + strings.ToLower(cond[1:4])
			state.Coverage = "Unknown"
			state.Friction = parseFriction(cond[4:6])

		default:
			state.Surface = lookupByte(runwaySurfaceCodes, cond[0])
			state.Coverage = lookupByte(runwayCoverageCodes, cond[1])
			state.DepthMm = parseDepth(cond[2:4])
			state.Friction = parseFriction(cond[4:6])
		}

		states[runway] = state
	}
	if len(states) == 0 {
		return nil
	}
	return states
}

func parseFriction(code string) *float64 {
	if code == "//" {
		return nil
	}
	v, err := strconv.Atoi(code)
	if err != nil {
		return nil
	}
	return ptr.To(float64(v) / 100)
}

func parseDepth(code string) int {
	if code == "//" {
		return 0
	}
	v, err := strconv.Atoi(code)
	if err != nil {
		return 0
	}
	return v
}

func lookupByte(table map[byte]string, b byte) string {
	if desc, ok := table[b]; ok {
		return desc
	}
	return "Unknown"
}
