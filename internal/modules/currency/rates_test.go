package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_FetchesAndForcesUSD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.9,"SAR":3.75,"USD":42}}`))
	}))
	defer server.Close()

	p := NewProvider(server.URL)
	table := p.Rates(context.Background())

	assert.InDelta(t, 0.9, table["EUR"], 1e-9)
	assert.InDelta(t, 3.75, table["SAR"], 1e-9)
	// The base currency is pinned to 1 regardless of what the API says.
	assert.Equal(t, 1.0, table["USD"])
}

func TestProvider_CachesUntilTTL(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.9}}`))
	}))
	defer server.Close()

	p := NewProvider(server.URL)
	p.Rates(context.Background())
	p.Rates(context.Background())
	p.Rates(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestProvider_RefetchesAfterTTL(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"rates":{"EUR":0.9}}`))
	}))
	defer server.Close()

	now := time.Now()
	p := NewProvider(server.URL)
	p.now = func() time.Time { return now }

	p.Rates(context.Background())
	now = now.Add(2 * time.Hour)
	p.Rates(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProvider_FallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewProvider(server.URL)
	table := p.Rates(context.Background())

	require.NotNil(t, table)
	assert.Equal(t, Fallback(), table)
}

func TestProvider_FallsBackOnBadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	p := NewProvider(server.URL)
	assert.Equal(t, Fallback(), p.Rates(context.Background()))
}

func TestProvider_FallsBackOnEmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{}}`))
	}))
	defer server.Close()

	p := NewProvider(server.URL)
	assert.Equal(t, Fallback(), p.Rates(context.Background()))
}

func TestProvider_FallsBackWithoutURL(t *testing.T) {
	p := NewProvider("")
	assert.Equal(t, Fallback(), p.Rates(context.Background()))
}

func TestProvider_FallsBackOnUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	p := NewProvider(server.URL)
	assert.Equal(t, Fallback(), p.Rates(context.Background()))
}
