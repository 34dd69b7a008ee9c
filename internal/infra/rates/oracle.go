package rates

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// ErrUnavailable means the price source could not produce a fresh rate.
// Callers must propagate it; a stale or default rate is never returned
// in its place.
var ErrUnavailable = errors.New("exchange rate unavailable")

type cachedRate struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// Oracle caches one rate per currency pair with a fixed TTL. It is the
// only long-lived shared mutable state in the process: construct once
// and pass by reference. Concurrent misses may each trigger a fetch;
// last writer wins, which is fine for an idempotent refresh.
type Oracle struct {
	client *resty.Client
	url    string
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]cachedRate

	now func() time.Time
}

func New(apiURL string, ttl time.Duration) *Oracle {
	client := resty.New()
	client.SetTimeout(10 * time.Second)

	return &Oracle{
		client: client,
		url:    apiURL,
		ttl:    ttl,
		cache:  make(map[string]cachedRate),
		now:    time.Now,
	}
}

// Rate returns how many units of base buy one unit of quote, e.g.
// Rate(ctx, "RUB", "USDT") -> 79.50.
func (o *Oracle) Rate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	pair := quote + base // ticker symbol convention, e.g. USDTRUB

	o.mu.RLock()
	entry, ok := o.cache[pair]
	o.mu.RUnlock()
	if ok && o.now().Sub(entry.fetchedAt) < o.ttl {
		return entry.rate, nil
	}

	rate, err := o.fetch(ctx, pair)
	if err != nil {
		return decimal.Decimal{}, err
	}

	o.mu.Lock()
	o.cache[pair] = cachedRate{rate: rate, fetchedAt: o.now()}
	o.mu.Unlock()

	return rate, nil
}

func (o *Oracle) fetch(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var body struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetResult(&body).
		Get(o.url)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return decimal.Decimal{}, fmt.Errorf("%w: price source returned %d", ErrUnavailable, resp.StatusCode())
	}

	rate, err := decimal.NewFromString(body.Price)
	if err != nil || !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: bad price %q for %s", ErrUnavailable, body.Price, symbol)
	}

	return rate, nil
}
