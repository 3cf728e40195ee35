package metar

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	// ErrEmptyReport is returned for input with no tokens at all.
	ErrEmptyReport = errors.New("empty report")
	// ErrNoHeader is returned when the report does not open with a station
	// identifier followed by an observation time.
	ErrNoHeader = errors.New("report missing station/time header")
)

// ValidStation reports whether s is a well-formed ICAO station identifier:
// exactly four uppercase alphanumerics.
func ValidStation(s string) bool {
	return stationRegex.MatchString(s)
}

// Decoder turns raw report text into DecodedReports. The zero value is not
// usable; construct with NewDecoder. A Decoder is safe for concurrent use.
type Decoder struct {
	clock  clockwork.Clock
	logger *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithClock injects the clock used to resolve the two-digit observation day
// into a full timestamp. Tests pass a fake clock for stable output.
func WithClock(c clockwork.Clock) Option {
	return func(d *Decoder) { d.clock = c }
}

// WithLogger sets the logger used for per-field decode diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) { d.logger = l }
}

// NewDecoder returns a Decoder using the real clock and the default slog
// logger unless overridden.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		clock:  clockwork.NewRealClock(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses one raw report. The returned anomalies describe tokens that
// resembled a known field but failed a sub-check; they accompany a
// successful decode. An error is returned only for structural failures:
// empty input, or a missing station/time header.
//
// Decoding is deterministic for a fixed clock: the same text always yields
// the same report.
func (d *Decoder) Decode(raw RawReport) (*DecodedReport, []Anomaly, error) {
	ts := tokenize(raw.Text)
	if ts.empty() {
		return nil, nil, ErrEmptyReport
	}

	idx := 0
	// Reports delivered over some channels repeat the type word or a
	// correction marker before the station.
	for idx < len(ts.tokens) {
		t := ts.tokens[idx]
		if t == "METAR" || t == "SPECI" || t == "COR" {
			idx++
			continue
		}
		break
	}

	if idx >= len(ts.tokens) || !stationRegex.MatchString(ts.tokens[idx]) {
		return nil, nil, ErrNoHeader
	}
	station := ts.tokens[idx]
	idx++

	if idx >= len(ts.tokens) || !timeRegex.MatchString(ts.tokens[idx]) {
		return nil, nil, ErrNoHeader
	}
	obsTime := d.resolveTime(ts.tokens[idx])
	idx++

	body := ts.body(idx)

	report := &DecodedReport{
		Raw:             raw.Text,
		Station:         station,
		Source:          raw.Source,
		ObservationTime: obsTime,
	}

	var anomalies []Anomaly

	wind, afterWind, windAnomalies := parseWind(body)
	report.Wind = wind
	anomalies = append(anomalies, windAnomalies...)

	report.VisibilityKm = parseVisibility(body, afterWind)

	temp, dew, tempAnomalies := parseTempDew(body)
	report.TemperatureC = temp
	report.DewPointC = dew
	anomalies = append(anomalies, tempAnomalies...)

	report.PressureHpa = parsePressure(body)
	report.CloudLayers = parseClouds(body)
	report.Weather = parseWeather(body)
	report.Trend = parseTrend(ts.trendSection())
	report.RunwayStates = parseRunwayStates(body)

	for _, tok := range body {
		switch tok {
		case "AUTO":
			report.Auto = true
		case "CAVOK":
			report.CAVOK = true
		}
	}
	if report.CAVOK {
		vis := excellentVisibilityKm
		report.VisibilityKm = &vis
	}

	report.HumidityPct = relativeHumidity(report.TemperatureC, report.DewPointC)

	if len(report.CloudLayers) > 0 {
		primary := report.CloudLayers[0]
		report.PrimaryCoverage = primary.Coverage
		report.PrimaryHeightFeet = primary.HeightFeet
		if primary.Type != "" {
			report.PrimaryCloudType = primary.Type
		} else {
			report.PrimaryCloudType = "N/A"
		}
	} else {
		report.PrimaryCoverage = "Clear"
		report.PrimaryCloudType = "N/A"
	}

	anomalies = append(anomalies, validateRanges(report)...)
	// Humidity depends on the validated inputs, so rederive if either was
	// dropped by the range pass.
	if report.TemperatureC == nil || report.DewPointC == nil {
		report.HumidityPct = nil
	}

	for _, a := range anomalies {
		d.logger.Debug("decode anomaly",
			"station", station,
			"field", a.Field,
			"token", a.Token,
			"reason", a.Reason,
		)
	}

	return report, anomalies, nil
}

// resolveTime expands a ddhhmmZ group into a full UTC timestamp against the
// decoder clock. A day-of-month ahead of today means the report belongs to
// the previous month.
func (d *Decoder) resolveTime(tok string) time.Time {
	matches := timeRegex.FindStringSubmatch(tok)
	day, _ := strconv.Atoi(matches[1])
	hour, _ := strconv.Atoi(matches[2])
	minute, _ := strconv.Atoi(matches[3])

	now := d.clock.Now().UTC()
	result := time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, time.UTC)
	if now.Day() < day {
		result = result.AddDate(0, -1, 0)
	}
	return result
}
