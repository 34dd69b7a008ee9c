package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hits *int64, price string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"` + r.URL.Query().Get("symbol") + `","price":"` + price + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRateFetchesAndCaches(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits, "79.50")

	o := New(srv.URL, time.Hour)

	rate, err := o.Rate(context.Background(), "RUB", "USDT")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("79.50")))

	// Second read within the TTL comes from cache.
	rate, err = o.Rate(context.Background(), "RUB", "USDT")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("79.50")))
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits))
}

func TestRateRefreshesAfterTTL(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits, "80.00")

	o := New(srv.URL, time.Hour)
	current := time.Now()
	o.now = func() time.Time { return current }

	_, err := o.Rate(context.Background(), "RUB", "USDT")
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)
	_, err = o.Rate(context.Background(), "RUB", "USDT")
	require.NoError(t, err)

	assert.EqualValues(t, 2, atomic.LoadInt64(&hits))
}

func TestRateCachesPerPair(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits, "1.00")

	o := New(srv.URL, time.Hour)

	_, err := o.Rate(context.Background(), "RUB", "USDT")
	require.NoError(t, err)
	_, err = o.Rate(context.Background(), "EUR", "USDT")
	require.NoError(t, err)

	assert.EqualValues(t, 2, atomic.LoadInt64(&hits))
}

func TestRateUnavailableOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	o := New(srv.URL, time.Hour)

	_, err := o.Rate(context.Background(), "RUB", "USDT")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRateUnavailableOnBadPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"USDTRUB","price":"-1"}`))
	}))
	t.Cleanup(srv.Close)

	o := New(srv.URL, time.Hour)

	_, err := o.Rate(context.Background(), "RUB", "USDT")
	assert.ErrorIs(t, err, ErrUnavailable)
}
