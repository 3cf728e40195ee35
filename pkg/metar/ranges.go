package metar

import "fmt"

// valueRange bounds a decoded numeric field. Values outside the bounds are
// treated as sensor or transmission noise and dropped rather than reported.
type valueRange struct {
	Min float64
	Max float64
}

var valueRanges = map[string]valueRange{
	"temperature":    {-100, 60},
	"dew_point":      {-100, 60},
	"humidity":       {0, 100},
	"wind_speed":     {0, 400},
	"wind_gust":      {0, 500},
	"wind_direction": {0, 360},
	"visibility":     {0, 100},
	"pressure":       {900, 1100},
}

// validateRanges runs a final plausibility pass over the assembled report.
// Out-of-range fields are cleared to absent with an anomaly appended;
// humidity is clamped inside its bounds instead, since it is derived rather
// than decoded.
func validateRanges(r *DecodedReport) []Anomaly {
	var anomalies []Anomaly

	check := func(field string, v **float64) {
		if *v == nil {
			return
		}
		rng := valueRanges[field]
		if **v < rng.Min || **v > rng.Max {
			anomalies = append(anomalies, Anomaly{
				Field:  field,
				Token:  "",
				Reason: fmt.Sprintf("value %.1f outside [%g,%g]", **v, rng.Min, rng.Max),
			})
			*v = nil
		}
	}

	check("temperature", &r.TemperatureC)
	check("dew_point", &r.DewPointC)
	check("visibility", &r.VisibilityKm)
	check("pressure", &r.PressureHpa)
	check("wind_speed", &r.Wind.SpeedKmh)
	check("wind_gust", &r.Wind.GustKmh)
	check("wind_direction", &r.Wind.DirectionDegrees)

	if r.HumidityPct != nil {
		rng := valueRanges["humidity"]
		if *r.HumidityPct < rng.Min {
			r.HumidityPct = &rng.Min
		} else if *r.HumidityPct > rng.Max {
			r.HumidityPct = &rng.Max
		}
	}
	return anomalies
}
