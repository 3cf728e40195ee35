package metar

import (
	"time"
)

// RawReport is one undecoded report as delivered by a provider.
type RawReport struct {
	// Text is the raw report line, e.g. "KJFK 151200Z 27010KT 10SM ...".
	Text string
	// Source identifies the provider that produced the text, e.g.
	// "primary-rest" or "ftp-fallback". Empty for ad-hoc input.
	Source string
	// FetchedAt is when the provider retrieved the text, if known.
	FetchedAt time.Time
}

// DirectionRange is a reported span of variable wind directions (dddVddd).
type DirectionRange struct {
	FromDegrees float64
	ToDegrees   float64
}

// WindObservation holds the decoded wind group.
//
// Invariant: when IsVariable is true DirectionDegrees is nil — a single
// direction is meaningless for variable wind. Calm wind (00000KT) yields
// SpeedKmh of 0 with no direction.
type WindObservation struct {
	DirectionDegrees *float64
	IsVariable       bool
	SpeedKmh         *float64
	GustKmh          *float64
	VariableRange    *DirectionRange
}

// CloudLayer is one reported cloud group, in report order.
type CloudLayer struct {
	// Coverage is the reported code: FEW, SCT, BKN, OVC, or VV for an
	// obscured ceiling reported as vertical visibility.
	Coverage string
	// HeightFeet is the layer base in feet. Nil for indeterminate height
	// (VV///).
	HeightFeet *int
	// Type is CB or TCU when reported, otherwise empty.
	Type string
}

// RunwayState is the decoded state of a single runway surface.
type RunwayState struct {
	Runway   string
	Surface  string
	Coverage string
	DepthMm  int
	// Friction is the braking coefficient in [0,1], nil when reported as //.
	Friction *float64
	Raw      string
}

// DecodedReport is the assembled, validated output of one decode call.
//
// Every numeric pointer field either carries a value inside its declared
// valid range or is nil; out-of-range values never survive assembly. The
// struct is freshly allocated per decode and never mutated afterwards.
type DecodedReport struct {
	Raw             string
	Station         string
	StationName     string
	Source          string
	ObservationTime time.Time

	TemperatureC *float64
	DewPointC    *float64
	// HumidityPct is derived from temperature and dew point via the Magnus
	// formula; it is an estimate and is clamped into [0,100] rather than
	// discarded when the formula strays outside.
	HumidityPct *float64

	Wind         WindObservation
	VisibilityKm *float64
	PressureHpa  *float64

	// CloudLayers preserves report order; the first layer is the primary
	// ceiling-relevant layer by convention.
	CloudLayers []CloudLayer
	// PrimaryCoverage is the first layer's coverage code, or "Clear" when
	// no layer was reported.
	PrimaryCoverage   string
	PrimaryHeightFeet *int
	// PrimaryCloudType is the first layer's type, or "N/A".
	PrimaryCloudType string

	// Weather is the assembled present-weather description, "Clear" when
	// no phenomena were reported.
	Weather string
	// Trend is the decoded trend group (NOSIG / TEMPO ... / BECMG ...),
	// nil when the report carries none.
	Trend *string

	RunwayStates map[string]RunwayState

	CAVOK bool
	Auto  bool
}

// Anomaly records a field that failed validation during decoding. Anomalies
// accompany a successful decode; they are observability data, not errors.
type Anomaly struct {
	Field  string
	Token  string
	Reason string
}
