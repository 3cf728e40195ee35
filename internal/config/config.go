// Package config loads daemon settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aerowx/metar/pkg/metar"
)

// Config holds all daemon settings, populated from environment variables.
type Config struct {
	Stations []string
	HTTPAddr string

	LogLevel  string
	LogFormat string

	// PollInterval is the base polling period; each cycle adds a random
	// jitter in [JitterMin, JitterMax] so stations are not hammered on a
	// fixed schedule.
	PollInterval time.Duration
	JitterMin    time.Duration
	JitterMax    time.Duration

	FetchTimeout     time.Duration
	HistoryRetention time.Duration
	ShutdownTimeout  time.Duration

	AWCBaseURL   string
	TGFTPBaseURL string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first,
// without overriding variables already present in the environment.
func Load() (*Config, error) {
	// Best effort: a missing .env file is the normal production case.
	_ = godotenv.Load()

	pollInterval, err := envDuration("POLL_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	jitterMin, err := envDuration("POLL_JITTER_MIN", 0)
	if err != nil {
		return nil, err
	}
	jitterMax, err := envDuration("POLL_JITTER_MAX", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := envDuration("FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	retention, err := envDuration("HISTORY_RETENTION", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Stations: parseStations(envOrDefault("STATIONS", "")),
		HTTPAddr: envOrDefault("HTTP_ADDR", ":8080"),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),

		PollInterval:     pollInterval,
		JitterMin:        jitterMin,
		JitterMax:        jitterMax,
		FetchTimeout:     fetchTimeout,
		HistoryRetention: retention,
		ShutdownTimeout:  shutdownTimeout,

		AWCBaseURL:   envOrDefault("AWC_BASE_URL", "https://aviationweather.gov/api/data/metar"),
		TGFTPBaseURL: envOrDefault("TGFTP_BASE_URL", "https://tgftp.nws.noaa.gov/data/observations/metar/stations"),
	}

	if len(cfg.Stations) == 0 {
		return nil, errors.New("STATIONS is required (comma-separated ICAO codes)")
	}
	for _, s := range cfg.Stations {
		if !metar.ValidStation(s) {
			return nil, fmt.Errorf("invalid station code %q: must be 4 uppercase alphanumerics", s)
		}
	}
	if cfg.JitterMax < cfg.JitterMin {
		return nil, errors.New("POLL_JITTER_MAX must be >= POLL_JITTER_MIN")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("POLL_INTERVAL must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseStations(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
