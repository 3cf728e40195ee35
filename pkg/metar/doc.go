// Package metar decodes raw METAR aviation weather reports into structured,
// unit-normalized, range-validated records.
//
// # Report Format
//
// A METAR is a single line of space-delimited groups in conventional order:
//
//	KJFK 151200Z 27010G15KT 10SM FEW250 05/02 A3012 RMK AO2 SLP198
//	^    ^       ^          ^    ^      ^     ^     ^
//	stn  time    wind       vis  cloud  t/dew press remarks
//
// Ordering is conventional, not guaranteed: station output varies across
// countries and decades. The decoder therefore runs independent per-field
// recognizers over the token list instead of a strict sequential grammar,
// which keeps one malformed group from poisoning the rest of the report.
//
// # Units
//
// All output is metric: wind in km/h, visibility in km, pressure in hPa,
// temperature in °C, cloud heights in feet (the one aviation convention kept
// as-is). Source units (KT, MPS, SM, inHg) are converted during decoding.
//
// # Failure Model
//
// Only a structurally unusable input (empty string, no recognizable
// station/time header) is a hard error. Every other divergence — an
// out-of-range value, a half-matching token — leaves that one field absent
// and records an [Anomaly]; the rest of the report decodes normally. Absent
// numeric fields are nil pointers, never sentinel values.
//
// Decoding is pure: no I/O, no shared mutable state. A [Decoder] is safe for
// concurrent use. The only injected dependency is a clock, needed because
// METAR timestamps carry day/hour/minute only and the year and month must be
// resolved against a reference instant.
package metar
