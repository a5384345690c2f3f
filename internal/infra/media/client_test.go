package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-desk/internal/domain/entity"
	"article-desk/internal/handler/http/requestid"
	"article-desk/internal/resilience/circuitbreaker"
	"article-desk/internal/resilience/retry"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig(baseURL)
	cfg.Timeout = time.Second
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000
	cfg.Retry = retry.Config{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	cfg.Breaker = circuitbreaker.Config{
		Name:             "media-test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      2,
	}
	return cfg
}

func TestClient_Files(t *testing.T) {
	want := []entity.FileInfo{{Name: "chart.png", Path: "/media/7/chart.png", Size: 2048, MimeType: "image/png"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/7/files", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL+"/"), srv.Client())
	got, err := c.Files(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_Files_PropagatesRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.Header.Get(requestid.RequestIDHeader))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	assert.Equal(t, "closed", c.CircuitState())

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	got, err := c.Files(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_Files_NotFoundMeansNoFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	got, err := c.Files(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_Files_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"name":"a.pdf","path":"/a.pdf","size":1,"mime_type":"application/pdf"}]`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	got, err := c.Files(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Files_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	_, err := c.Files(context.Background(), 1)
	require.Error(t, err)

	var httpErr *retry.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Files_FailureIsLeftToCaller(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	_, err := c.Files(context.Background(), 1)

	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestClient_Files_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	_, err := c.Files(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode files")
}

func TestClient_Files_CircuitOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	for i := 0; i < 2; i++ {
		_, err := c.Files(context.Background(), 1)
		require.Error(t, err)
	}
	before := calls.Load()

	_, err := c.Files(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, before, calls.Load(), "open circuit must not reach the server")
	assert.Equal(t, "open", c.CircuitState())
}

func TestClient_Files_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(testConfig(srv.URL), srv.Client())
	_, err := c.Files(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoop(t *testing.T) {
	var l Lookup = NewNoop()
	files, err := l.Files(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, files)
}
