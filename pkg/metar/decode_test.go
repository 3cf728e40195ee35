package metar

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerowx/metar/pkg/metar/testdata"
)

// A fixed clock keeps day-of-month resolution stable: every corpus report
// carries day 15, which must resolve within the clock's month.
var testClock = clockwork.NewFakeClockAt(time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC))

func newTestDecoder() *Decoder {
	return NewDecoder(WithClock(testClock))
}

func decodeCorpus(t *testing.T) func(yield func(string, *DecodedReport) bool) {
	d := newTestDecoder()
	return func(yield func(string, *DecodedReport) bool) {
		for _, line := range testdata.Reports(t) {
			report, _, err := d.Decode(RawReport{Text: line})
			require.NoError(t, err, line)
			if !yield(line, report) {
				return
			}
		}
	}
}

func TestDecode_corpusStation(t *testing.T) {
	t.Parallel()
	for line, report := range decodeCorpus(t) {
		fields := strings.Fields(line)
		assert.Equal(t, fields[0], report.Station, line)
	}
}

func TestDecode_corpusTime(t *testing.T) {
	t.Parallel()
	for line, report := range decodeCorpus(t) {
		fields := strings.Fields(line)
		got := report.ObservationTime.Format("021504") + "Z"
		assert.Equal(t, fields[1], got, line)
	}
}

func TestDecode_corpusNoAnomalies(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()
	for _, line := range testdata.Reports(t) {
		_, anomalies, err := d.Decode(RawReport{Text: line})
		require.NoError(t, err, line)
		assert.Empty(t, anomalies, line)
	}
}

func TestDecode_corpusFieldBounds(t *testing.T) {
	t.Parallel()
	for line, report := range decodeCorpus(t) {
		if report.VisibilityKm != nil {
			assert.GreaterOrEqual(t, *report.VisibilityKm, 0.0, line)
			assert.LessOrEqual(t, *report.VisibilityKm, 100.0, line)
		}
		if report.HumidityPct != nil {
			assert.GreaterOrEqual(t, *report.HumidityPct, 0.0, line)
			assert.LessOrEqual(t, *report.HumidityPct, 100.0, line)
		}
		if report.PressureHpa != nil {
			assert.GreaterOrEqual(t, *report.PressureHpa, 900.0, line)
			assert.LessOrEqual(t, *report.PressureHpa, 1100.0, line)
		}
	}
}

func TestDecode_corpusDeterministic(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()
	for _, line := range testdata.Reports(t) {
		first, firstAnomalies, err := d.Decode(RawReport{Text: line})
		require.NoError(t, err)
		second, secondAnomalies, err := d.Decode(RawReport{Text: line})
		require.NoError(t, err)
		assert.Equal(t, first, second, line)
		assert.Equal(t, firstAnomalies, secondAnomalies, line)
	}
}

func TestDecode_fullReport(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	report, anomalies, err := d.Decode(RawReport{
		Text:   "KJFK 151251Z 24016G24KT 10SM FEW055 SCT250 28/17 A3012 RMK AO2 SLP198",
		Source: "primary-rest",
	})
	require.NoError(t, err)
	assert.Empty(t, anomalies)

	assert.Equal(t, "KJFK", report.Station)
	assert.Equal(t, "primary-rest", report.Source)
	assert.Equal(t, time.Date(2025, time.March, 15, 12, 51, 0, 0, time.UTC), report.ObservationTime)

	require.NotNil(t, report.Wind.DirectionDegrees)
	assert.Equal(t, 240.0, *report.Wind.DirectionDegrees)
	require.NotNil(t, report.Wind.SpeedKmh)
	assert.Equal(t, 29.6, *report.Wind.SpeedKmh)
	require.NotNil(t, report.Wind.GustKmh)
	assert.Equal(t, 44.4, *report.Wind.GustKmh)

	require.NotNil(t, report.VisibilityKm)
	assert.Equal(t, 16.1, *report.VisibilityKm)

	require.NotNil(t, report.TemperatureC)
	assert.Equal(t, 28.0, *report.TemperatureC)
	require.NotNil(t, report.DewPointC)
	assert.Equal(t, 17.0, *report.DewPointC)
	require.NotNil(t, report.HumidityPct)
	assert.Equal(t, 51.3, *report.HumidityPct)

	require.NotNil(t, report.PressureHpa)
	assert.Equal(t, 1020.0, *report.PressureHpa)

	require.Len(t, report.CloudLayers, 2)
	assert.Equal(t, "FEW", report.PrimaryCoverage)
	require.NotNil(t, report.PrimaryHeightFeet)
	assert.Equal(t, 5500, *report.PrimaryHeightFeet)
	assert.Equal(t, "N/A", report.PrimaryCloudType)

	assert.Equal(t, "Clear", report.Weather)
	assert.Nil(t, report.Trend)
	assert.False(t, report.CAVOK)
	assert.False(t, report.Auto)
}

func TestDecode_structuralErrors(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty input", "", ErrEmptyReport},
		{"whitespace only", "   \t  ", ErrEmptyReport},
		{"no time after station", "KJFK 27010KT 10SM", ErrNoHeader},
		{"no station", "151251Z 27010KT", ErrNoHeader},
		{"type word only", "METAR", ErrNoHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report, anomalies, err := d.Decode(RawReport{Text: tt.text})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, report)
			assert.Empty(t, anomalies)
		})
	}
}

func TestDecode_headerPrefixes(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	for _, text := range []string{
		"METAR EGLL 151250Z 25012KT 9999 19/12 Q1017",
		"SPECI EGLL 151250Z 25012KT 9999 19/12 Q1017",
		"METAR COR EGLL 151250Z 25012KT 9999 19/12 Q1017",
	} {
		report, _, err := d.Decode(RawReport{Text: text})
		require.NoError(t, err, text)
		assert.Equal(t, "EGLL", report.Station, text)
	}
}

func TestDecode_cavok(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	report, anomalies, err := d.Decode(RawReport{Text: "EDDF 151250Z VRB03KT CAVOK 24/13 Q1019 NOSIG"})
	require.NoError(t, err)
	assert.Empty(t, anomalies)

	assert.True(t, report.CAVOK)
	require.NotNil(t, report.VisibilityKm)
	assert.Equal(t, 10.0, *report.VisibilityKm)
	assert.Empty(t, report.CloudLayers)
	assert.Equal(t, "Clear", report.PrimaryCoverage)
	assert.True(t, report.Wind.IsVariable)
	assert.Nil(t, report.Wind.DirectionDegrees)
	require.NotNil(t, report.Trend)
	assert.Equal(t, "No significant changes expected", *report.Trend)
}

func TestDecode_trendGroupsAreForecastOnly(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	// The groups after a trend marker describe a forecast; they must not
	// surface as present weather, cloud layers, or visibility.
	report, anomalies, err := d.Decode(RawReport{
		Text: "EGLL 151250Z 25012KT 9999 SCT035 19/12 Q1013 TEMPO 3000 RA BKN010",
	})
	require.NoError(t, err)
	assert.Empty(t, anomalies)

	assert.Equal(t, "Clear", report.Weather)
	require.Len(t, report.CloudLayers, 1)
	assert.Equal(t, "SCT", report.CloudLayers[0].Coverage)
	require.NotNil(t, report.VisibilityKm)
	assert.Equal(t, 10.0, *report.VisibilityKm)
	require.NotNil(t, report.Trend)
	assert.Equal(t, "Temporary changes expected: 3000 RA BKN010", *report.Trend)
}

func TestDecode_autoFlag(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	report, _, err := d.Decode(RawReport{Text: "NZAA 151230Z AUTO 21010KT 9999 NCD 15/09 Q1015"})
	require.NoError(t, err)
	assert.True(t, report.Auto)
	require.NotNil(t, report.VisibilityKm)
	assert.Equal(t, 10.0, *report.VisibilityKm)
}

func TestDecode_monthRollover(t *testing.T) {
	t.Parallel()
	// Clock day 5, report day 25: the observation belongs to the previous
	// month.
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC))
	d := NewDecoder(WithClock(clock))

	report, _, err := d.Decode(RawReport{Text: "EGLL 250600Z 25012KT 9999 19/12 Q1017"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 25, 6, 0, 0, 0, time.UTC), report.ObservationTime)
}

func TestDecode_remarksIgnored(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	// The Q group after RMK must not be read as pressure.
	report, _, err := d.Decode(RawReport{Text: "KSFO 151256Z 28018KT 10SM FEW008 17/11 RMK AO2 Q1044"})
	require.NoError(t, err)
	assert.Nil(t, report.PressureHpa)
}

func TestDecode_outOfRangeTemperaturePair(t *testing.T) {
	t.Parallel()
	d := newTestDecoder()

	report, anomalies, err := d.Decode(RawReport{Text: "KJFK 151251Z 24016KT 10SM M999/M01 A3012"})
	require.NoError(t, err)

	assert.Nil(t, report.TemperatureC)
	assert.Nil(t, report.DewPointC)
	assert.Nil(t, report.HumidityPct)
	require.NotEmpty(t, anomalies)
	assert.Equal(t, "temperature", anomalies[0].Field)
	assert.Equal(t, "M999/M01", anomalies[0].Token)

	// The rest of the report decodes normally.
	require.NotNil(t, report.PressureHpa)
	assert.Equal(t, 1020.0, *report.PressureHpa)
	require.NotNil(t, report.Wind.SpeedKmh)
}
