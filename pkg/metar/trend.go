package metar

import "strings"

var trendDescriptions = map[string]string{
	"NOSIG": "No significant changes expected",
	"TEMPO": "Temporary changes expected",
	"BECMG": "Becoming",
}

// parseTrend renders the trend section of a report: each marker's
// description, followed by the forecast groups that belong to it, in order
// of appearance. Returns nil when the section is empty.
func parseTrend(section []string) *string {
	var parts []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		part := trendDescriptions[current[0]]
		if len(current) > 1 {
			part += ": " + strings.Join(current[1:], " ")
		}
		parts = append(parts, part)
		current = nil
	}
	for _, tok := range section {
		if _, ok := trendDescriptions[tok]; ok {
			flush()
			current = []string{tok}
			continue
		}
		if len(current) > 0 {
			current = append(current, tok)
		}
	}
	flush()
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " | ")
	return &joined
}
