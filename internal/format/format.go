// Package format renders decoded reports for terminal output.
package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/aerowx/metar/pkg/metar"
)

var (
	labelColor = color.New(color.FgCyan)
	dateColor  = color.New(color.FgGreen)

	// Age-based colors
	freshColor   = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	expiredColor = color.New(color.FgRed)
)

// Report renders one decoded report as a multi-line human-readable block.
// now anchors the report-age annotation.
func Report(r *metar.DecodedReport, now time.Time) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, "Station: ")
	sb.WriteString(r.Station)
	if r.StationName != "" && r.StationName != r.Station {
		sb.WriteString(" (" + r.StationName + ")")
	}
	sb.WriteString("\n")

	if !r.ObservationTime.IsZero() {
		labelColor.Fprint(&sb, "Time: ")
		dateColor.Fprint(&sb, r.ObservationTime.Format("2006-01-02 15:04 UTC"))
		sb.WriteString(" ")
		age := now.Sub(r.ObservationTime)
		ageColor(age).Fprint(&sb, relativeAge(age))
		sb.WriteString("\n")
	}

	if wind := formatWind(r.Wind); wind != "" {
		labelColor.Fprint(&sb, "Wind: ")
		sb.WriteString(wind + "\n")
	}

	if r.VisibilityKm != nil {
		labelColor.Fprint(&sb, "Visibility: ")
		if r.CAVOK || *r.VisibilityKm >= 10 {
			sb.WriteString("10 km or more\n")
		} else {
			sb.WriteString(fmt.Sprintf("%.1f km\n", *r.VisibilityKm))
		}
	}

	labelColor.Fprint(&sb, "Weather: ")
	sb.WriteString(capitalizeFirst(r.Weather) + "\n")

	if clouds := formatClouds(r.CloudLayers); clouds != "" {
		labelColor.Fprint(&sb, "Clouds: ")
		sb.WriteString(capitalizeFirst(clouds) + "\n")
	}

	if r.TemperatureC != nil {
		labelColor.Fprint(&sb, "Temperature: ")
		sb.WriteString(fmt.Sprintf("%.1f°C\n", *r.TemperatureC))
	}
	if r.DewPointC != nil {
		labelColor.Fprint(&sb, "Dew Point: ")
		sb.WriteString(fmt.Sprintf("%.1f°C\n", *r.DewPointC))
	}
	if r.HumidityPct != nil {
		labelColor.Fprint(&sb, "Humidity: ")
		sb.WriteString(fmt.Sprintf("%.1f%%\n", *r.HumidityPct))
	}
	if r.PressureHpa != nil {
		labelColor.Fprint(&sb, "Pressure: ")
		sb.WriteString(fmt.Sprintf("%.1f hPa\n", *r.PressureHpa))
	}

	if states := formatRunways(r.RunwayStates); states != "" {
		labelColor.Fprint(&sb, "Runways: ")
		sb.WriteString(states + "\n")
	}

	if r.Trend != nil {
		labelColor.Fprint(&sb, "Trend: ")
		sb.WriteString(*r.Trend + "\n")
	}

	return sb.String()
}

func formatWind(w metar.WindObservation) string {
	if w.SpeedKmh == nil {
		return ""
	}
	if *w.SpeedKmh == 0 && w.DirectionDegrees == nil && !w.IsVariable {
		return "Calm"
	}

	var parts []string
	switch {
	case w.IsVariable:
		parts = append(parts, "Variable")
	case w.DirectionDegrees != nil:
		parts = append(parts, fmt.Sprintf("From %.0f°", *w.DirectionDegrees))
	}

	parts = append(parts, fmt.Sprintf("at %.1f km/h", *w.SpeedKmh))
	if w.GustKmh != nil {
		parts = append(parts, fmt.Sprintf("gusting to %.1f km/h", *w.GustKmh))
	}

	s := strings.Join(parts, " ")
	if w.VariableRange != nil {
		s += fmt.Sprintf(" (varying between %.0f° and %.0f°)",
			w.VariableRange.FromDegrees, w.VariableRange.ToDegrees)
	}
	return s
}

func formatClouds(layers []metar.CloudLayer) string {
	if len(layers) == 0 {
		return ""
	}

	var parts []string
	for _, layer := range layers {
		desc := metar.CoverageDescription(layer.Coverage)
		if layer.HeightFeet != nil {
			desc = fmt.Sprintf("%s at %s feet", desc, withCommas(*layer.HeightFeet))
		}
		if tn := metar.CloudTypeDescription(layer.Type); tn != "" {
			desc += " (" + tn + ")"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, ", ")
}

func formatRunways(states map[string]metar.RunwayState) string {
	if len(states) == 0 {
		return ""
	}

	runways := make([]string, 0, len(states))
	for runway := range states {
		runways = append(runways, runway)
	}
	sort.Strings(runways)

	var parts []string
	for _, runway := range runways {
		state := states[runway]
		desc := fmt.Sprintf("%s %s", runway, state.Surface)
		if state.Friction != nil {
			desc += fmt.Sprintf(" (friction %.2f)", *state.Friction)
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "; ")
}

func ageColor(age time.Duration) *color.Color {
	switch {
	case age < time.Hour:
		return freshColor
	case age < 3*time.Hour:
		return warningColor
	default:
		return expiredColor
	}
}

func relativeAge(age time.Duration) string {
	if age < 0 {
		age = 0
	}
	switch {
	case age < time.Minute:
		return "(just now)"
	case age < time.Hour:
		return fmt.Sprintf("(%d min ago)", int(age.Minutes()))
	default:
		return fmt.Sprintf("(%.1f hours ago)", age.Hours())
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func withCommas(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []string
	for len(s) > 3 {
		out = append([]string{s[len(s)-3:]}, out...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(out, ",")
}
