package metar

// Reconcile chooses between two decoded reports for the same station,
// returning the one with the more complete observation. Selection is
// wholesale: fields from the two reports are never mixed.
//
// Preference order: a report carrying pressure, temperature, and wind speed
// together beats one that lacks any of the three; otherwise the report with
// fewer absent fields wins; a tie goes to a. Either argument may be nil, in
// which case the other is returned unchanged.
func Reconcile(a, b *DecodedReport) *DecodedReport {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	coreA, coreB := hasCoreTriple(a), hasCoreTriple(b)
	if coreA != coreB {
		if coreA {
			return a
		}
		return b
	}

	if absentFields(b) < absentFields(a) {
		return b
	}
	return a
}

func hasCoreTriple(r *DecodedReport) bool {
	return r.PressureHpa != nil && r.TemperatureC != nil && r.Wind.SpeedKmh != nil
}

// absentFields counts missing optional observation fields. Derived fields
// (humidity, primary cloud summary) are excluded so they cannot double-count
// their inputs.
func absentFields(r *DecodedReport) int {
	n := 0
	if r.TemperatureC == nil {
		n++
	}
	if r.DewPointC == nil {
		n++
	}
	if r.VisibilityKm == nil {
		n++
	}
	if r.PressureHpa == nil {
		n++
	}
	if r.Wind.SpeedKmh == nil {
		n++
	}
	if r.Wind.DirectionDegrees == nil && !r.Wind.IsVariable {
		n++
	}
	if len(r.CloudLayers) == 0 && !r.CAVOK {
		n++
	}
	return n
}
