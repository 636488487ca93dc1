package networker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"textstat/internal/domain/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSettings() config.Fetch {
	settings := config.DefaultFetch()
	settings.RetryDelay = 0
	return settings
}

func newTestWorker(notify Notifier) *NetworkWorker {
	return NewNetworker(zap.NewNop().Sugar(), testSettings(), notify)
}

func collectWarnings(warnings *[]string) Notifier {
	return func(message string) {
		*warnings = append(*warnings, message)
	}
}

// flakyTransport fails the first n round trips, then delegates.
type flakyTransport struct {
	failures int
	next     http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.failures > 0 {
		t.failures--
		return nil, errors.New("connection reset")
	}
	return t.next.RoundTrip(req)
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello world"))
	}))
	defer server.Close()

	var warnings []string
	worker := newTestWorker(collectWarnings(&warnings))

	result, err := worker.Fetch(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Content)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Empty(t, warnings)
}

func TestFetchErrorStatusWithoutForce(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	defer server.Close()

	worker := newTestWorker(nil)

	result, err := worker.Fetch(context.Background(), server.URL, false)

	require.ErrorIs(t, err, ErrUnacceptableStatus)
	assert.Contains(t, err.Error(), "404")
	assert.Nil(t, result)
	assert.Equal(t, 1, hits, "status failures must not be retried")
}

func TestFetchErrorStatusWithForce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	defer server.Close()

	var warnings []string
	worker := newTestWorker(collectWarnings(&warnings))

	result, err := worker.Fetch(context.Background(), server.URL, true)

	require.NoError(t, err)
	assert.Equal(t, "not found", result.Content)
	assert.Equal(t, http.StatusNotFound, result.Status)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "404")
}

func TestFetchEmptyOrNonTextBody(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		force  bool
	}{
		{name: "empty body", body: "", status: http.StatusOK},
		{name: "control bytes only", body: "\x00\x01\x02", status: http.StatusOK},
		{name: "binary on error status with force", body: "\x00\x01", status: http.StatusInternalServerError, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			worker := newTestWorker(nil)

			result, err := worker.Fetch(context.Background(), server.URL, tt.force)

			require.ErrorIs(t, err, ErrEmptyOrNonText)
			assert.Nil(t, result)
		})
	}
}

func TestFetchWeakTextCheckPasses(t *testing.T) {
	// A single printable byte among control bytes is enough.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\x00a\x01"))
	}))
	defer server.Close()

	worker := newTestWorker(nil)

	result, err := worker.Fetch(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Equal(t, "\x00a\x01", result.Content)
}

func TestFetchRetriesTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("made it"))
	}))
	defer server.Close()

	var warnings []string
	worker := newTestWorker(collectWarnings(&warnings))
	worker.Client = &http.Client{Transport: &flakyTransport{failures: 4, next: http.DefaultTransport}}

	result, err := worker.Fetch(context.Background(), server.URL, false)

	require.NoError(t, err)
	assert.Equal(t, "made it", result.Content)
	assert.Len(t, warnings, 4, "one warning per failed attempt")
	for _, warning := range warnings {
		assert.Contains(t, warning, "retrying")
	}
}

func TestFetchExhaustsAttempts(t *testing.T) {
	var warnings []string
	worker := newTestWorker(collectWarnings(&warnings))
	worker.Client = &http.Client{Transport: &flakyTransport{failures: 100, next: http.DefaultTransport}}

	result, err := worker.Fetch(context.Background(), "http://example.invalid/", false)

	require.ErrorIs(t, err, ErrNetworkExhausted)
	assert.Nil(t, result)
	assert.Len(t, warnings, 4, "final failure is terminal, not a retry warning")
}

func TestLooksLikeText(t *testing.T) {
	assert.False(t, looksLikeText(""))
	assert.False(t, looksLikeText("\x00\x01\x02"))
	assert.True(t, looksLikeText("a"))
	assert.True(t, looksLikeText("\x00a\x01"))
}
