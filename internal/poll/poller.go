// Package poll drives the periodic fetch-decode-store cycle for a set of
// stations.
package poll

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aerowx/metar/internal/fetch"
	"github.com/aerowx/metar/internal/history"
	"github.com/aerowx/metar/internal/observability"
	"github.com/aerowx/metar/pkg/metar"
)

// retrySchedule is the escalating wait applied after cycles in which every
// station failed, so an upstream outage is probed gently.
var retrySchedule = []time.Duration{
	3 * time.Minute,
	6 * time.Minute,
	12 * time.Minute,
	60 * time.Minute,
}

// Poller fetches raw reports for each configured station, decodes them, and
// appends the reconciled result to history.
type Poller struct {
	stations []string
	primary  fetch.Client
	fallback fetch.Client
	decoder  *metar.Decoder
	store    *history.Store
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock

	interval  time.Duration
	jitterMin time.Duration
	jitterMax time.Duration

	ready    atomic.Bool
	failures int
}

// Options bundles the Poller dependencies.
type Options struct {
	Stations  []string
	Primary   fetch.Client
	Fallback  fetch.Client
	Decoder   *metar.Decoder
	Store     *history.Store
	Logger    *slog.Logger
	Metrics   *observability.Metrics
	Clock     clockwork.Clock
	Interval  time.Duration
	JitterMin time.Duration
	JitterMax time.Duration
}

// New builds a Poller. A nil Clock falls back to the real clock.
func New(opts Options) *Poller {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		stations:  opts.Stations,
		primary:   opts.Primary,
		fallback:  opts.Fallback,
		decoder:   opts.Decoder,
		store:     opts.Store,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		clock:     clock,
		interval:  opts.Interval,
		jitterMin: opts.JitterMin,
		jitterMax: opts.JitterMax,
	}
}

// CheckReadiness returns nil once at least one poll cycle has stored a
// report.
func (p *Poller) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no reports stored yet")
	}
	return nil
}

// Run executes poll cycles until the context is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started",
		"stations", len(p.stations),
		"interval", p.interval,
	)
	p.metrics.StationsTracked.Set(float64(len(p.stations)))

	for {
		p.PollOnce(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping", "reason", ctx.Err())
			return nil
		case <-p.clock.After(p.nextDelay()):
		}
	}
}

// PollOnce runs a single cycle over all stations.
func (p *Poller) PollOnce(ctx context.Context) {
	start := p.clock.Now()
	succeeded := 0

	for _, station := range p.stations {
		if ctx.Err() != nil {
			return
		}
		if err := p.pollStation(ctx, station); err != nil {
			p.logger.Error("station poll failed", "station", station, "error", err)
			continue
		}
		succeeded++
	}

	if succeeded > 0 {
		p.ready.Store(true)
		p.failures = 0
	} else {
		p.failures++
	}

	p.metrics.PollDuration.Observe(p.clock.Since(start).Seconds())
	p.metrics.HistoryRecords.Set(float64(p.store.Len()))
}

// pollStation fetches and decodes one station. The fallback source is
// consulted when the primary fails or yields an observation missing any of
// pressure, temperature, or wind; the more complete decode wins.
func (p *Poller) pollStation(ctx context.Context, station string) error {
	primary, primaryErr := p.decodeFrom(ctx, p.primary, fetch.SourcePrimary, station)

	var secondary *metar.DecodedReport
	if primaryErr != nil || missingCore(primary) {
		if primaryErr != nil {
			p.logger.Warn("primary source failed, trying fallback",
				"station", station,
				"error", primaryErr,
			)
		}
		var fallbackErr error
		secondary, fallbackErr = p.decodeFrom(ctx, p.fallback, fetch.SourceFallback, station)
		if primaryErr != nil && fallbackErr != nil {
			return errors.Join(primaryErr, fallbackErr)
		}
		if fallbackErr == nil && primaryErr != nil {
			p.metrics.FallbackUsed.Inc()
		}
	}

	report := metar.Reconcile(primary, secondary)
	if report == nil {
		return primaryErr
	}

	p.store.Append(report)
	p.logger.Debug("report stored",
		"station", station,
		"source", report.Source,
		"observed", report.ObservationTime,
	)
	return nil
}

func (p *Poller) decodeFrom(ctx context.Context, client fetch.Client, source, station string) (*metar.DecodedReport, error) {
	raw, err := client.Fetch(ctx, station)
	if err != nil {
		p.metrics.FetchRequests.WithLabelValues(source, "error").Inc()
		return nil, err
	}
	p.metrics.FetchRequests.WithLabelValues(source, "success").Inc()

	report, anomalies, err := p.decoder.Decode(raw)
	if err != nil {
		p.metrics.DecodeErrors.Inc()
		return nil, err
	}

	p.metrics.ReportsDecoded.Inc()
	for _, a := range anomalies {
		p.metrics.DecodeAnomalies.WithLabelValues(a.Field).Inc()
	}
	return report, nil
}

// nextDelay returns the wait before the next cycle: the configured interval
// plus jitter, or a rung of the retry schedule after all-failed cycles.
func (p *Poller) nextDelay() time.Duration {
	if p.failures > 0 {
		rung := p.failures - 1
		if rung >= len(retrySchedule) {
			rung = len(retrySchedule) - 1
		}
		return retrySchedule[rung]
	}

	jitter := p.jitterMin
	if span := p.jitterMax - p.jitterMin; span > 0 {
		jitter += time.Duration(rand.Int63n(int64(span)))
	}
	return p.interval + jitter
}

func missingCore(r *metar.DecodedReport) bool {
	if r == nil {
		return true
	}
	return r.PressureHpa == nil || r.TemperatureC == nil || r.Wind.SpeedKmh == nil
}
