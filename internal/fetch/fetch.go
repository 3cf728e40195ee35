// Package fetch retrieves raw reports from the upstream weather services.
//
// Two providers are wired: the Aviation Weather Center REST endpoint as the
// primary source and the NWS tgftp file server as the fallback. The
// Failover client tries them in that order.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aerowx/metar/pkg/metar"
)

// Source tags recorded on fetched reports.
const (
	SourcePrimary  = "primary-rest"
	SourceFallback = "ftp-fallback"
)

// ErrNotAvailable is returned when a provider answered but has no current
// report for the station.
var ErrNotAvailable = errors.New("no report available for station")

// Client fetches the latest raw report for one station.
type Client interface {
	Fetch(ctx context.Context, station string) (metar.RawReport, error)
}

// AWCClient fetches reports from the Aviation Weather Center REST API.
type AWCClient struct {
	baseURL string
	client  *http.Client
}

// NewAWCClient returns a primary-source client against baseURL.
func NewAWCClient(baseURL string, timeout time.Duration) *AWCClient {
	return &AWCClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the latest report for station. The endpoint returns one
// report per line; only the first line is used.
func (c *AWCClient) Fetch(ctx context.Context, station string) (metar.RawReport, error) {
	url := fmt.Sprintf("%s?ids=%s", c.baseURL, station)
	body, err := get(ctx, c.client, url)
	if err != nil {
		return metar.RawReport{}, fmt.Errorf("awc fetch for %s: %w", station, err)
	}

	line := firstLine(body)
	if line == "" {
		return metar.RawReport{}, fmt.Errorf("awc fetch for %s: %w", station, ErrNotAvailable)
	}
	return metar.RawReport{
		Text:      line,
		Source:    SourcePrimary,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// TGFTPClient fetches reports from the NWS tgftp station files.
type TGFTPClient struct {
	baseURL string
	client  *http.Client
}

// NewTGFTPClient returns a fallback-source client against baseURL.
func NewTGFTPClient(baseURL string, timeout time.Duration) *TGFTPClient {
	return &TGFTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the station file. Its first line is a timestamp; the
// report text follows on the second line.
func (c *TGFTPClient) Fetch(ctx context.Context, station string) (metar.RawReport, error) {
	url := fmt.Sprintf("%s/%s.TXT", c.baseURL, station)
	body, err := get(ctx, c.client, url)
	if err != nil {
		return metar.RawReport{}, fmt.Errorf("tgftp fetch for %s: %w", station, err)
	}

	lines := strings.SplitN(body, "\n", 3)
	if len(lines) < 2 || strings.TrimSpace(lines[1]) == "" {
		return metar.RawReport{}, fmt.Errorf("tgftp fetch for %s: %w", station, ErrNotAvailable)
	}
	return metar.RawReport{
		Text:      strings.TrimSpace(lines[1]),
		Source:    SourceFallback,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Failover tries the primary client first and falls back to the secondary
// when the primary fails for any reason.
type Failover struct {
	primary  Client
	fallback Client
	logger   *slog.Logger
	// FellBack is called when a fetch is served by the fallback source.
	FellBack func()
}

// NewFailover wires a primary and fallback client together.
func NewFailover(primary, fallback Client, logger *slog.Logger) *Failover {
	return &Failover{primary: primary, fallback: fallback, logger: logger}
}

// Fetch returns the primary result when it succeeds, otherwise the fallback
// result. When both fail the errors are joined.
func (f *Failover) Fetch(ctx context.Context, station string) (metar.RawReport, error) {
	report, primaryErr := f.primary.Fetch(ctx, station)
	if primaryErr == nil {
		return report, nil
	}
	f.logger.Warn("primary source failed, trying fallback",
		"station", station,
		"error", primaryErr,
	)

	report, fallbackErr := f.fallback.Fetch(ctx, station)
	if fallbackErr != nil {
		return metar.RawReport{}, errors.Join(primaryErr, fallbackErr)
	}
	if f.FellBack != nil {
		f.FellBack()
	}
	return report, nil
}

func get(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
