package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STATIONS", "KJFK")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"KJFK"}, cfg.Stations)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Minute, cfg.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.JitterMin)
	assert.Equal(t, 5*time.Minute, cfg.JitterMax)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 24*time.Hour, cfg.HistoryRetention)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://aviationweather.gov/api/data/metar", cfg.AWCBaseURL)
	assert.Equal(t, "https://tgftp.nws.noaa.gov/data/observations/metar/stations", cfg.TGFTPBaseURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("STATIONS", "kjfk, egll ,EDDF")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("POLL_INTERVAL", "15m")
	t.Setenv("POLL_JITTER_MIN", "1m")
	t.Setenv("POLL_JITTER_MAX", "3m")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("HISTORY_RETENTION", "12h")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"KJFK", "EGLL", "EDDF"}, cfg.Stations)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 15*time.Minute, cfg.PollInterval)
	assert.Equal(t, 1*time.Minute, cfg.JitterMin)
	assert.Equal(t, 3*time.Minute, cfg.JitterMax)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 12*time.Hour, cfg.HistoryRetention)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_MissingStations(t *testing.T) {
	t.Setenv("STATIONS", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STATIONS")
}

func TestLoad_InvalidStationCode(t *testing.T) {
	t.Setenv("STATIONS", "KJFK,LAX")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAX")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	t.Setenv("STATIONS", "KJFK")
	t.Setenv("POLL_INTERVAL", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL")
}

func TestLoad_JitterRangeInverted(t *testing.T) {
	t.Setenv("STATIONS", "KJFK")
	t.Setenv("POLL_JITTER_MIN", "5m")
	t.Setenv("POLL_JITTER_MAX", "1m")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_JITTER_MAX")
}
