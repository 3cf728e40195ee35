package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerowx/metar/pkg/metar"
)

const testReport = "KJFK 151251Z 24016G24KT 10SM FEW055 28/17 A3012"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAWCClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KJFK", r.URL.Query().Get("ids"))
		io.WriteString(w, testReport+"\n")
	}))
	t.Cleanup(srv.Close)

	client := NewAWCClient(srv.URL, time.Second)
	report, err := client.Fetch(context.Background(), "KJFK")
	require.NoError(t, err)
	assert.Equal(t, testReport, report.Text)
	assert.Equal(t, SourcePrimary, report.Source)
	assert.False(t, report.FetchedAt.IsZero())
}

func TestAWCClient_EmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "\n")
	}))
	t.Cleanup(srv.Close)

	client := NewAWCClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "KJFK")
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestAWCClient_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewAWCClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "KJFK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTGFTPClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/KJFK.TXT", r.URL.Path)
		io.WriteString(w, "2025/03/15 12:51\n"+testReport+"\n")
	}))
	t.Cleanup(srv.Close)

	client := NewTGFTPClient(srv.URL, time.Second)
	report, err := client.Fetch(context.Background(), "KJFK")
	require.NoError(t, err)
	assert.Equal(t, testReport, report.Text)
	assert.Equal(t, SourceFallback, report.Source)
}

func TestTGFTPClient_MissingReportLine(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "2025/03/15 12:51")
	}))
	t.Cleanup(srv.Close)

	client := NewTGFTPClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "KJFK")
	assert.ErrorIs(t, err, ErrNotAvailable)
}

type stubClient struct {
	report metar.RawReport
	err    error
	calls  int
}

func (s *stubClient) Fetch(context.Context, string) (metar.RawReport, error) {
	s.calls++
	return s.report, s.err
}

func TestFailover(t *testing.T) {
	t.Parallel()

	t.Run("primary succeeds", func(t *testing.T) {
		t.Parallel()
		primary := &stubClient{report: metar.RawReport{Text: testReport, Source: SourcePrimary}}
		fallback := &stubClient{}
		f := NewFailover(primary, fallback, discardLogger())

		report, err := f.Fetch(context.Background(), "KJFK")
		require.NoError(t, err)
		assert.Equal(t, SourcePrimary, report.Source)
		assert.Zero(t, fallback.calls)
	})

	t.Run("fallback covers primary failure", func(t *testing.T) {
		t.Parallel()
		primary := &stubClient{err: errors.New("boom")}
		fallback := &stubClient{report: metar.RawReport{Text: testReport, Source: SourceFallback}}
		f := NewFailover(primary, fallback, discardLogger())

		var fellBack bool
		f.FellBack = func() { fellBack = true }

		report, err := f.Fetch(context.Background(), "KJFK")
		require.NoError(t, err)
		assert.Equal(t, SourceFallback, report.Source)
		assert.True(t, fellBack)
	})

	t.Run("both fail", func(t *testing.T) {
		t.Parallel()
		primaryErr := errors.New("primary down")
		fallbackErr := errors.New("fallback down")
		f := NewFailover(&stubClient{err: primaryErr}, &stubClient{err: fallbackErr}, discardLogger())

		_, err := f.Fetch(context.Background(), "KJFK")
		require.Error(t, err)
		assert.ErrorIs(t, err, primaryErr)
		assert.ErrorIs(t, err, fallbackErr)
	})
}
