package metar

import "strings"

// parseWeather assembles the present-weather description from body tokens.
// Each candidate token is an optional intensity (-/+) or vicinity (VC)
// prefix, descriptor pairs from the fixed descriptor set, and phenomenon
// pairs, consumed greedily left-to-right; an unrecognized pair halts
// consumption of that token. Tokens that are structurally wind, runway,
// pressure, trend, or sky-condition groups are never candidates. Standalone
// recent-phenomenon codes (RESN/RETS/RERA) anywhere in the body are additive.
// Identical assembled descriptions are deduplicated. No phenomena means
// "Clear".
func parseWeather(body []string) string {
	var (
		parts []string
		seen  = map[string]bool{}
	)
	add := func(desc string) {
		if !seen[desc] {
			seen[desc] = true
			parts = append(parts, desc)
		}
	}

	for _, tok := range body {
		if desc, ok := recentWeather[tok]; ok {
			add(desc)
			continue
		}
		if isStructuralToken(tok) {
			continue
		}
		if desc, ok := decodeWeatherToken(tok); ok {
			add(desc)
		}
	}

	if len(parts) == 0 {
		return "Clear"
	}
	return strings.Join(parts, ", ")
}

// decodeWeatherToken decodes one candidate token into a human-readable
// description. A token counts as weather when it yields at least one
// phenomenon, or when it was consumed completely and yielded at least one
// descriptor (bare descriptor groups like TS are reported by some stations).
func decodeWeatherToken(tok string) (string, bool) {
	rest := tok
	var words []string

	switch {
	case strings.HasPrefix(rest, "VC"):
		words = append(words, weatherIntensity["VC"])
		rest = rest[2:]
	case strings.HasPrefix(rest, "-"), strings.HasPrefix(rest, "+"):
		words = append(words, weatherIntensity[rest[:1]])
		rest = rest[1:]
	}

	descriptors, phenomena := 0, 0
	for len(rest) >= 2 {
		pair := rest[:2]
		if d, ok := weatherDescriptors[pair]; ok && phenomena == 0 {
			words = append(words, d)
			descriptors++
			rest = rest[2:]
			continue
		}
		if p, ok := weatherPhenomena[pair]; ok {
			words = append(words, p)
			phenomena++
			rest = rest[2:]
			continue
		}
		break
	}

	if phenomena == 0 && (rest != "" || descriptors == 0) {
		return "", false
	}
	return strings.Join(words, " "), true
}

// isStructuralToken reports whether tok belongs to another field's grammar
// and must not be considered present weather.
func isStructuralToken(tok string) bool {
	return windRegex.MatchString(tok) ||
		windVarRegex.MatchString(tok) ||
		runwayRegex.MatchString(tok) ||
		pressureRegex.MatchString(tok) ||
		trendRegex.MatchString(tok) ||
		isCloudShaped(tok) ||
		isTempShaped(tok) ||
		timeRegex.MatchString(tok)
}
