package scale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(endpoint string) *sampler {
	return &sampler{
		endpoint:   endpoint,
		interval:   10 * time.Millisecond,
		httpClient: &http.Client{Timeout: time.Second},
		done:       make(chan struct{}),
	}
}

func TestSampler_Current_NoReadingYet(t *testing.T) {
	s := newTestSampler("http://127.0.0.1:0")

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSampler_SampleOnce_StoresReading(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weight_kg": 2.35}`))
	}))
	defer server.Close()

	s := newTestSampler(server.URL)

	require.NoError(t, s.sampleOnce(context.Background()))

	reading, ok := s.Current()
	require.True(t, ok)
	assert.InDelta(t, 2.35, reading.WeightKg, 1e-9)
	assert.False(t, reading.SampledAt.IsZero())
}

func TestSampler_SampleOnce_OverwritesPreviousReading(t *testing.T) {
	payloads := []string{`{"weight_kg": 1.0}`, `{"weight_kg": 3.5}`}
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payloads[calls]))
		calls++
	}))
	defer server.Close()

	s := newTestSampler(server.URL)

	require.NoError(t, s.sampleOnce(context.Background()))
	require.NoError(t, s.sampleOnce(context.Background()))

	reading, ok := s.Current()
	require.True(t, ok)
	assert.InDelta(t, 3.5, reading.WeightKg, 1e-9)
}

func TestSampler_SampleOnce_GatewayErrorKeepsPreviousReading(t *testing.T) {
	var fail bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weight_kg": 1.2}`))
	}))
	defer server.Close()

	s := newTestSampler(server.URL)

	require.NoError(t, s.sampleOnce(context.Background()))

	fail = true
	assert.Error(t, s.sampleOnce(context.Background()))

	reading, ok := s.Current()
	require.True(t, ok)
	assert.InDelta(t, 1.2, reading.WeightKg, 1e-9)
}

func TestSampler_SampleOnce_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	s := newTestSampler(server.URL)

	err := s.sampleOnce(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode gateway response")
}
