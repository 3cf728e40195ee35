// Package history keeps a bounded in-memory record of decoded reports per
// station.
package history

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aerowx/metar/pkg/metar"
)

// Store retains decoded reports per station for a fixed duration. Records
// older than the retention window are pruned on every append. Safe for
// concurrent use.
type Store struct {
	mu        sync.RWMutex
	retention time.Duration
	clock     clockwork.Clock
	records   map[string][]*metar.DecodedReport
}

// New returns a Store retaining records for the given duration.
func New(retention time.Duration, clock clockwork.Clock) *Store {
	return &Store{
		retention: retention,
		clock:     clock,
		records:   map[string][]*metar.DecodedReport{},
	}
}

// Append stores one decoded report under its station and prunes that
// station's expired records. Reports are appended in arrival order;
// observation times are not reordered.
func (s *Store) Append(report *metar.DecodedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station := report.Station
	s.records[station] = append(s.prune(s.records[station]), report)
}

// Latest returns the most recently appended report for station, or nil.
func (s *Store) Latest(station string) *metar.DecodedReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[station]
	for i := len(recs) - 1; i >= 0; i-- {
		if !s.expired(recs[i]) {
			return recs[i]
		}
	}
	return nil
}

// Records returns all retained reports for station, oldest first.
func (s *Store) Records(station string) []*metar.DecodedReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*metar.DecodedReport
	for _, r := range s.records[station] {
		if !s.expired(r) {
			out = append(out, r)
		}
	}
	return out
}

// Recent returns the retained values of one numeric field for station,
// oldest first. Recognized fields: temperature, dew_point, humidity,
// wind_speed, visibility, pressure. Absent values are skipped.
func (s *Store) Recent(station, field string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []float64
	for _, r := range s.records[station] {
		if s.expired(r) {
			continue
		}
		if v := fieldValue(r, field); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func fieldValue(r *metar.DecodedReport, field string) *float64 {
	switch field {
	case "temperature":
		return r.TemperatureC
	case "dew_point":
		return r.DewPointC
	case "humidity":
		return r.HumidityPct
	case "wind_speed":
		return r.Wind.SpeedKmh
	case "visibility":
		return r.VisibilityKm
	case "pressure":
		return r.PressureHpa
	default:
		return nil
	}
}

// Stations returns the stations that have at least one retained report.
func (s *Store) Stations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for station, recs := range s.records {
		for _, r := range recs {
			if !s.expired(r) {
				out = append(out, station)
				break
			}
		}
	}
	return out
}

// Len reports the total number of retained records across all stations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, recs := range s.records {
		for _, r := range recs {
			if !s.expired(r) {
				n++
			}
		}
	}
	return n
}

// Clear drops all records for station.
func (s *Store) Clear(station string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, station)
}

// ClearAll drops every record.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = map[string][]*metar.DecodedReport{}
}

func (s *Store) prune(recs []*metar.DecodedReport) []*metar.DecodedReport {
	kept := recs[:0]
	for _, r := range recs {
		if !s.expired(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (s *Store) expired(r *metar.DecodedReport) bool {
	return s.clock.Now().Sub(r.ObservationTime) > s.retention
}
